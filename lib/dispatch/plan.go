// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bureau-foundation/jump/lib/alias"
	"github.com/bureau-foundation/jump/lib/project"
)

// StepKind identifies what a [Step] does.
type StepKind int

const (
	// StepChdir changes the process working directory to Path.
	StepChdir StepKind = iota

	// StepLaunch opens the file at Path with its associated program.
	StepLaunch

	// StepOpen opens the directory at Path in the file manager.
	StepOpen

	// StepShell runs Shell through the system shell in Path.
	StepShell

	// StepCallback invokes Callback with Path and Args.
	StepCallback
)

func (k StepKind) String() string {
	switch k {
	case StepChdir:
		return "chdir"
	case StepLaunch:
		return "launch"
	case StepOpen:
		return "open"
	case StepShell:
		return "shell"
	case StepCallback:
		return "callback"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one planned side effect.
type Step struct {
	Kind    StepKind
	Command project.Command
	Project *project.Project

	// Action is the canonical action the step belongs to; empty for
	// shortcut launches and directory opens.
	Action string

	// Path is the directory (chdir, open, shell), the file (launch), or
	// the resolved version path (callback).
	Path string

	// Shell is the formatted command line of a StepShell.
	Shell string

	// Description labels shell templates and callbacks.
	Description string

	Callback project.Callback

	// Args are the command arguments left after action-table
	// selection.
	Args []string
}

func (s Step) String() string {
	switch s.Kind {
	case StepShell:
		return fmt.Sprintf("shell %q in %s", s.Shell, s.Path)
	case StepCallback:
		return fmt.Sprintf("callback %s %s %v", s.Callback.Handle, s.Path, s.Args)
	default:
		return fmt.Sprintf("%s %s", s.Kind, s.Path)
	}
}

// Plan validates commands against registry and returns the steps that
// carry them out, in order. Nothing is executed.
func Plan(registry *project.Registry, commands []project.Command) ([]Step, error) {
	var steps []Step
	for _, command := range commands {
		planned, err := planCommand(registry, command)
		if err != nil {
			return nil, err
		}
		steps = append(steps, planned...)
	}
	return steps, nil
}

func planCommand(registry *project.Registry, command project.Command) ([]Step, error) {
	p, exists := registry.Project(command.Name)
	if !exists {
		return nil, fmt.Errorf("%s: no project named %q", command, command.Name)
	}
	if err := checkAvailability(p, command); err != nil {
		return nil, err
	}

	root, err := p.Root()
	if err != nil {
		return nil, err
	}

	// A project whose path is a file launches it when nothing else was
	// asked for; a project that accepts nothing always does.
	if (isFile(root) && command.Action == "" && len(command.Args) == 0) || p.Options.AllProhibited() {
		return []Step{{Kind: StepLaunch, Command: command, Project: p, Path: root}}, nil
	}

	base := root
	if command.Version != "" {
		path, found := p.Versions.Lookup(command.Version)
		if !found {
			return nil, &alias.UnknownError{Kind: alias.KindVersion, Token: command.Version, Supported: sortedNames(p)}
		}
		base = path
	}
	dir := base
	if isFile(base) {
		dir = filepath.Dir(base)
	}

	steps := []Step{{Kind: StepChdir, Command: command, Project: p, Path: dir}}
	if command.Action == "" {
		return append(steps, Step{Kind: StepOpen, Command: command, Project: p, Path: dir}), nil
	}

	value, exists := p.Actions[command.Action]
	if !exists {
		return nil, &alias.UnknownError{Kind: alias.KindAction, Token: command.Action, Supported: p.ActionNames()}
	}
	step, err := planValue(value, stepTarget{command: command, project: p, base: base, dir: dir}, slices.Clone(command.Args))
	if err != nil {
		return nil, err
	}
	return append(steps, step), nil
}

type stepTarget struct {
	command project.Command
	project *project.Project
	base    string
	dir     string
}

func planValue(value project.ActionValue, target stepTarget, args []string) (Step, error) {
	step := Step{Command: target.command, Project: target.project, Action: target.command.Action, Args: args}

	switch value := value.(type) {
	case project.ActionTable:
		key := value.DefaultKey
		if len(args) > 0 {
			key = args[0]
			args = args[1:]
		}
		selected, err := alias.Resolve(alias.KindArg, key, value.Keys())
		if err != nil {
			return Step{}, err
		}
		return planValue(value.Entries[selected], target, args)

	case project.FileReference:
		step.Kind = StepLaunch
		step.Path = value.Path
		if !filepath.IsAbs(step.Path) {
			step.Path = filepath.Join(target.dir, step.Path)
		}
		return step, nil

	case project.ShellTemplate:
		step.Kind = StepShell
		step.Path = target.dir
		step.Shell = value.Format(target.dir, args)
		step.Description = value.Description
		return step, nil

	case project.Callback:
		if value.Handle.Func == nil {
			return Step{}, fmt.Errorf("%s: callback %s is not registered", target.command, value.Handle)
		}
		step.Kind = StepCallback
		step.Path = target.base
		step.Callback = value
		step.Description = value.Description
		return step, nil

	default:
		return Step{}, fmt.Errorf("%s: unsupported action value %T", target.command, value)
	}
}

func checkAvailability(p *project.Project, command project.Command) error {
	for _, field := range project.Fields {
		availability := p.Options.Of(field)
		present := command.Has(field)
		if (availability == project.Required && !present) || (availability == project.Prohibited && present) {
			return &AvailabilityError{Command: command, Field: field, Availability: availability}
		}
	}
	return nil
}

func sortedNames(p *project.Project) []string {
	names := p.Versions.Names()
	slices.Sort(names)
	return names
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
