// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Command is a flag-parsing entry point with structured help.
type Command struct {
	// Name is the binary name shown in usage lines.
	Name string

	// Description is shown at the top of the help output.
	Description string

	// Usage lines, shown verbatim under "Usage:".
	Usage []string

	// Examples are shown after the flags.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet. Called once per
	// Execute; may be nil.
	Flags func() *pflag.FlagSet

	// Footer returns extra help text, such as the configured names.
	// Called lazily; may be nil.
	Footer func() string

	// Run receives the arguments left after flag parsing.
	Run func(ctx context.Context, args []string) error

	// Stdout receives help output. Defaults to os.Stdout.
	Stdout io.Writer
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute parses args and calls Run. A leading help flag prints help
// instead.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.stdout())
		return nil
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		flagSet.SetOutput(io.Discard)
		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(c.stdout())
				return nil
			}
			message := err.Error()
			if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
				if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
					return fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.", message, suggestion, c.Name)
				}
			}
			return fmt.Errorf("%s\n\nRun '%s --help' for usage.", message, c.Name)
		}
		args = flagSet.Args()
	}

	if c.Run == nil {
		c.PrintHelp(c.stdout())
		return fmt.Errorf("no action defined for %q", c.Name)
	}
	return c.Run(ctx, args)
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	}

	fmt.Fprintf(w, "Usage:\n")
	if len(c.Usage) == 0 {
		fmt.Fprintf(w, "  %s [flags]\n", c.Name)
	}
	for _, line := range c.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if c.Flags != nil {
		var flagHelp strings.Builder
		flagSet := c.Flags()
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n\n", example.Command)
		}
	}

	if c.Footer != nil {
		if footer := c.Footer(); footer != "" {
			fmt.Fprintf(w, "%s\n", footer)
		}
	}
}

func (c *Command) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}
