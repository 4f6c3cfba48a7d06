// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the jump command: flag definitions, help,
// the configuration dump, and the run path from CLI tokens through
// resolution to dispatch. main wires it to the real environment with
// [DefaultOptions]; tests substitute recorders for the launcher, the
// shell, and the callbacks.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/jump/cmd/jump/cli"
	"github.com/bureau-foundation/jump/lib/buildinfo"
	"github.com/bureau-foundation/jump/lib/clock"
	callbacks "github.com/bureau-foundation/jump/lib/commands"
	"github.com/bureau-foundation/jump/lib/config"
	"github.com/bureau-foundation/jump/lib/dispatch"
	"github.com/bureau-foundation/jump/lib/jenkins"
	"github.com/bureau-foundation/jump/lib/opener"
	"github.com/bureau-foundation/jump/lib/proc"
	"github.com/bureau-foundation/jump/lib/registry"
	"github.com/bureau-foundation/jump/lib/resolve"
	"github.com/bureau-foundation/jump/lib/shell"
	"github.com/bureau-foundation/jump/lib/svn"
)

// TraceFlag, as the last argument, prints failures with their whole
// error chain and raises the log level to debug. Any token starting
// with it counts.
const TraceFlag = "-e"

// Options are the process-level inputs of the jump command.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// Env holds the JUMP_* settings.
	Env config.Env

	// Executable is the binary path; configuration beside it is found
	// without JUMP_CONFIG.
	Executable string

	Launcher dispatch.Launcher
	Shell    dispatch.Shell

	// Chdir defaults to os.Chdir.
	Chdir func(dir string) error

	// Handles builds the callbacks for a logger. Defaults to the
	// lib/commands callbacks over real collaborators.
	Handles func(env config.Env, logger *slog.Logger) registry.Handles
}

// DefaultOptions returns options bound to the real process environment.
func DefaultOptions() (Options, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return Options{}, err
	}
	executable, err := os.Executable()
	if err != nil {
		executable = ""
	}
	runner := shell.Runner{}
	return Options{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Env:        env,
		Executable: executable,
		Launcher:   opener.Opener{},
		Shell:      runner,
		Handles: func(env config.Env, logger *slog.Logger) registry.Handles {
			return callbacks.Handles(callbacks.Deps{
				Launcher: opener.Opener{},
				Shell:    runner,
				Lister:   proc.Table{},
				Killer:   proc.Signal{},
				SVN:      svn.CLI{},
				Builds: jenkins.NewClient(jenkins.Config{
					HTTPClient: &http.Client{Timeout: env.HTTPTimeout},
					Logger:     logger,
				}),
				Clock: clock.Real(),
			})
		},
	}, nil
}

// params are the parsed flags of one run.
type params struct {
	config   string
	logLevel string
	dump     bool
	format   string
	version  bool
}

// Root builds the jump command.
func Root(options Options) *cli.Command {
	var flags params
	// PrintHelp rebuilds the flag set, which resets flags to their
	// defaults, so the footer reads the --config value captured at run.
	var helpConfig string
	command := &cli.Command{
		Name:        "jump",
		Description: description,
		Usage:       usage,
		Examples:    examples,
		Stdout:      options.Stdout,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("jump", pflag.ContinueOnError)
			// Arguments after the project name belong to the command,
			// including callback flags such as -f and -se.
			flagSet.SetInterspersed(false)
			flagSet.StringVar(&flags.config, "config", "", "configuration file (default: $JUMP_CONFIG, then jump.json beside the binary, then the XDG config dir)")
			flagSet.StringVar(&flags.logLevel, "log-level", options.Env.LogLevel, "log level: debug, info, warn, error")
			flagSet.BoolVarP(&flags.dump, "dump", "d", false, "print the configuration path and the resolved registry")
			flagSet.StringVar(&flags.format, "format", formatJSON, "dump format: json, yaml, cbor")
			flagSet.BoolVar(&flags.version, "version", false, "print version information")
			return flagSet
		},
	}
	command.Footer = func() string {
		return supportedNames(options, helpConfig)
	}
	command.Run = func(ctx context.Context, args []string) error {
		parsed := flags
		helpConfig = parsed.config
		return run(ctx, options, parsed, command, args)
	}
	return command
}

func run(ctx context.Context, options Options, flags params, command *cli.Command, args []string) error {
	if flags.version {
		fmt.Fprintf(options.Stdout, "jump %s\n", buildinfo.Full())
		return nil
	}
	if len(args) == 0 && !flags.dump {
		command.PrintHelp(options.Stdout)
		return nil
	}

	trace := wantsTrace(args)
	level, err := cli.ParseLevel(flags.logLevel)
	if err != nil {
		return err
	}
	if trace {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(options.Stderr, level).With("command", "jump")
	styles := cli.NewStyles(options.Stdout)

	path, err := config.Locate(flags.config, options.Env.Config, options.Executable)
	if err != nil {
		return err
	}
	projects, err := registry.Load(path, options.handles(logger), logger)
	if err != nil {
		return report(options.Stdout, styles, nil, err, trace)
	}

	if flags.dump {
		return dump(options.Stdout, path, projects, flags.format, styles.Color(), cli.IsTerminal(options.Stdout))
	}

	commands, err := resolve.Commands(projects, args)
	if err != nil {
		return report(options.Stdout, styles, projects, err, trace)
	}
	for _, resolved := range commands {
		logger.Debug("resolved command", "command", resolved.String())
	}

	dispatcher := &dispatch.Dispatcher{
		Launcher: options.Launcher,
		Shell:    options.Shell,
		Chdir:    options.Chdir,
		Out:      options.Stdout,
		Logger:   logger,
	}
	if err := dispatcher.Dispatch(ctx, projects, commands); err != nil {
		return report(options.Stdout, styles, projects, err, trace)
	}
	return nil
}

func (o Options) handles(logger *slog.Logger) registry.Handles {
	if o.Handles == nil {
		return nil
	}
	return o.Handles(o.Env, logger)
}

// wantsTrace reports whether the last argument is a trace token. The
// token stays in the arguments: kill reads -e as "explorers".
func wantsTrace(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return strings.HasPrefix(strings.ToLower(args[len(args)-1]), TraceFlag)
}

// supportedNames lists the configured project names for the help
// footer, or nothing when the configuration cannot be loaded.
func supportedNames(options Options, explicit string) string {
	path, err := config.Locate(explicit, options.Env.Config, options.Executable)
	if err != nil {
		return ""
	}
	projects, err := registry.Load(path, options.handles(slog.New(slog.DiscardHandler)), nil)
	if err != nil {
		return ""
	}
	return "Supported names:\n" + cli.WrapList(projects.Names(), "  ", 80)
}
