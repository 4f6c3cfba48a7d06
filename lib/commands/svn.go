// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bureau-foundation/jump/lib/jenkins"
	"github.com/bureau-foundation/jump/lib/project"
	"github.com/bureau-foundation/jump/lib/svn"
)

// DefaultUpdateCommand is run by svn_update unless the project sets
// vars.svn_update.
const DefaultUpdateCommand = `svn update "{path}"`

// updateVar names the project variable overriding the update command.
const updateVar = "svn_update"

// lastReleaseVersion prints the newest release of the version. An
// all-digit first argument sets the search window in days.
func (d Deps) lastReleaseVersion(ctx context.Context, run *project.RunContext) error {
	client, err := d.svnClient(run)
	if err != nil {
		return err
	}
	version := versionOf(run)

	result, err := client.LastReleaseVersion(ctx, version, "", daysArg(run.Args, 0))
	fmt.Fprintf(run.Out, "Last release version for %s: %s\n\n", version, orError(result, err))
	return nil
}

// findReleaseVersions prints the release that shipped the newest commit
// matching the first argument. The second argument, when all digits,
// sets the search window.
func (d Deps) findReleaseVersions(ctx context.Context, run *project.RunContext) error {
	version := versionOf(run)
	if version == svn.Trunk {
		return svn.ErrTrunk
	}
	if len(run.Args) == 0 {
		return ErrNoSearchText
	}
	client, err := d.svnClient(run)
	if err != nil {
		return err
	}
	text := run.Args[0]

	result, err := client.FindReleaseVersion(ctx, text, version, daysArg(run.Args, 1))
	fmt.Fprintf(run.Out, "Commit with %q in %s landed in version: %s\n\n", text, version, orError(result, err))
	return nil
}

// findVersions prints the branches touched by commits matching the
// first argument.
func (d Deps) findVersions(ctx context.Context, run *project.RunContext) error {
	if len(run.Args) == 0 {
		return ErrNoSearchText
	}
	client, err := d.svnClient(run)
	if err != nil {
		return err
	}
	text := run.Args[0]

	versions, err := client.SearchVersions(ctx, text, daysArg(run.Args, 1))
	fmt.Fprintf(run.Out, "String %q occurs in versions: %s\n", text, orError(strings.Join(versions, ", "), err))
	return nil
}

// age prints how long ago the version branch was created.
func (d Deps) age(ctx context.Context, run *project.RunContext) error {
	client, err := d.svnClient(run)
	if err != nil {
		return err
	}
	version := versionOf(run)

	branch, err := client.Age(ctx, version)
	var result string
	if err != nil {
		result = err.Error()
	} else {
		days := int(branch.Age / (24 * time.Hour))
		result = fmt.Sprintf("%d days (r%d by %s, %s)", days, branch.First.Number, branch.First.Author,
			branch.First.Date.Format(time.DateOnly))
	}
	fmt.Fprintf(run.Out, "Age of %s: %s\n", version, result)
	return nil
}

// svnUpdate updates the working copy unless the last CI build of the
// version is running or broken. The force flag skips that check.
func (d Deps) svnUpdate(ctx context.Context, run *project.RunContext) error {
	version := versionOf(run)

	if run.Project != nil && run.Project.JenkinsURL != "" && d.Builds != nil {
		err := d.Builds.Check(ctx, run.Project.JenkinsURL, version, run.Project.Vars)
		var checkErr *jenkins.CheckError
		switch {
		case err == nil:
		case errors.Is(err, jenkins.ErrNoBuild):
			fmt.Fprintf(run.Out, "[!] no build for version %s\n", version)
		case errors.As(err, &checkErr) && run.Force():
			loggerOf(run).Warn("updating despite failed build check", "version", version, "error", err)
		case errors.As(err, &checkErr):
			fmt.Fprintf(run.Out, "%v\n\nTo update anyway repeat with %s\n", err, project.ForceFlag)
			return nil
		default:
			return err
		}
	}

	template := DefaultUpdateCommand
	if run.Project != nil && run.Project.Vars[updateVar] != "" {
		template = run.Project.Vars[updateVar]
	}
	command := project.ShellTemplate{Template: template}.Format(run.Path, nil)

	description := run.Description
	if description == "" {
		description = "svn update"
	}
	fmt.Fprintf(run.Out, "Run: %s in %s\n", description, run.Path)
	return d.Shell.Run(ctx, run.Path, command)
}

func orError(result string, err error) string {
	if err != nil {
		return err.Error()
	}
	return result
}
