// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/jump/lib/project"
)

// Launcher opens files and directories with the desktop's associated
// programs.
type Launcher interface {
	// Launch starts the file at path.
	Launch(ctx context.Context, path string) error

	// Open shows the directory at path.
	Open(ctx context.Context, path string) error
}

// Shell runs a command line through the system shell.
type Shell interface {
	Run(ctx context.Context, dir, command string) error
}

// Dispatcher runs planned steps against its collaborators.
type Dispatcher struct {
	Launcher Launcher
	Shell    Shell

	// Chdir changes the working directory. Defaults to os.Chdir.
	Chdir func(dir string) error

	// Out receives the user-facing status lines.
	Out io.Writer

	Logger *slog.Logger
}

// Dispatch plans commands and, when every one of them is valid, runs
// the resulting steps.
func (d *Dispatcher) Dispatch(ctx context.Context, registry *project.Registry, commands []project.Command) error {
	steps, err := Plan(registry, commands)
	if err != nil {
		return err
	}
	return d.Run(ctx, steps)
}

// Run executes steps in order and stops at the first failure, which is
// returned as an [*ActionError].
func (d *Dispatcher) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.logger().Debug("dispatch step", "command", step.Command.String(), "step", step.String())
		if err := d.runStep(ctx, step); err != nil {
			return &ActionError{Command: step.Command, Action: step.Action, Err: err}
		}
	}
	return nil
}

func (d *Dispatcher) runStep(ctx context.Context, step Step) error {
	switch step.Kind {
	case StepChdir:
		chdir := d.Chdir
		if chdir == nil {
			chdir = os.Chdir
		}
		return chdir(step.Path)

	case StepLaunch:
		fmt.Fprintf(d.out(), "Run: %s\n", step.Path)
		return d.Launcher.Launch(ctx, step.Path)

	case StepOpen:
		fmt.Fprintf(d.out(), "Open: %s\n", step.Path)
		return d.Launcher.Open(ctx, step.Path)

	case StepShell:
		fmt.Fprintf(d.out(), "Run: %s in %s\n", step.Description, step.Path)
		return d.Shell.Run(ctx, step.Path, step.Shell)

	case StepCallback:
		line := fmt.Sprintf("Run: %s call %q", step.Command.Name, step.Action)
		if len(step.Args) > 0 {
			line += " (" + strings.Join(step.Args, ", ") + ")"
		}
		fmt.Fprintln(d.out(), line)
		return step.Callback.Handle.Func(ctx, &project.RunContext{
			Command:     step.Command,
			Project:     step.Project,
			Path:        step.Path,
			Args:        step.Args,
			Description: step.Description,
			Out:         d.out(),
			Logger:      d.logger(),
		})

	default:
		return fmt.Errorf("unknown step kind %s", step.Kind)
	}
}

func (d *Dispatcher) out() io.Writer {
	if d.Out == nil {
		return io.Discard
	}
	return d.Out
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
