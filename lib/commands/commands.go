// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bureau-foundation/jump/lib/clock"
	"github.com/bureau-foundation/jump/lib/proc"
	"github.com/bureau-foundation/jump/lib/project"
	"github.com/bureau-foundation/jump/lib/registry"
	"github.com/bureau-foundation/jump/lib/svn"
)

// Callback names, as written after "commands." in configuration.
const (
	RunPath               = "run_path"
	Kill                  = "kill"
	Processes             = "processes"
	SVNUpdate             = "svn_update"
	GetLastReleaseVersion = "get_last_release_version"
	FindReleaseVersions   = "find_release_versions"
	FindVersions          = "find_versions"
	GetAge                = "get_age"
	ManagerUp             = "manager_up"
	ManagerClean          = "manager_clean"
)

// Launcher starts files.
type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// Shell runs a command line in a directory.
type Shell interface {
	Run(ctx context.Context, dir, command string) error
}

// Lister enumerates running processes.
type Lister interface {
	List() ([]proc.Process, error)
}

// BuildChecker reports whether the last CI build of a version is
// green. See jenkins.Client.Check.
type BuildChecker interface {
	Check(ctx context.Context, urlTemplate, version string, vars map[string]string) error
}

// Deps are the collaborators the callbacks act through.
type Deps struct {
	Launcher Launcher
	Shell    Shell
	Lister   Lister
	Killer   proc.Killer
	SVN      svn.Runner
	Builds   BuildChecker

	// Clock defaults to clock.Real().
	Clock clock.Clock
}

// Handles returns every callback bound to deps.
func Handles(deps Deps) registry.Handles {
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	return registry.Handles{
		RunPath:               deps.runPath,
		Kill:                  deps.kill,
		Processes:             deps.processes,
		SVNUpdate:             deps.svnUpdate,
		GetLastReleaseVersion: deps.lastReleaseVersion,
		FindReleaseVersions:   deps.findReleaseVersions,
		FindVersions:          deps.findVersions,
		GetAge:                deps.age,
		ManagerUp:             deps.managerUp,
		ManagerClean:          deps.managerClean,
	}
}

// ErrNoSearchText is returned by the searches when no text was given.
var ErrNoSearchText = errors.New("search text not specified")

// versionOf returns the command's version, which is trunk when the
// command names none.
func versionOf(run *project.RunContext) string {
	if run.Command.Version == "" {
		return svn.Trunk
	}
	return run.Command.Version
}

func loggerOf(run *project.RunContext) *slog.Logger {
	if run.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return run.Logger
}

// daysArg parses args[index] as a day count when it is all digits.
func daysArg(args []string, index int) int {
	if index >= len(args) {
		return svn.DefaultDays
	}
	days, err := strconv.Atoi(args[index])
	if err != nil || days < 0 || args[index][0] == '+' {
		return svn.DefaultDays
	}
	return days
}

func (d Deps) svnClient(run *project.RunContext) (*svn.Client, error) {
	if run.Project == nil || run.Project.SVNDevURL == "" {
		return nil, &project.ConfigError{Project: run.Command.Name, Field: "svn_dev_url", Err: errors.New("not set")}
	}
	if d.SVN == nil {
		return nil, fmt.Errorf("no svn runner configured")
	}
	return svn.NewClient(d.SVN, d.Clock, run.Project.SVNDevURL), nil
}
