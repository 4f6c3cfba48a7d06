// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"io"
	"log/slog"
	"slices"
	"strings"
)

// ForceFlag in a command's arguments asks collaborators to proceed
// despite a failed precondition such as a broken upstream build.
const ForceFlag = "-f"

// Command is one fully resolved invocation: canonical project name,
// canonical version and action (either may be empty), and the raw
// remaining arguments.
type Command struct {
	Name    string
	Version string
	Action  string
	Args    []string
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	parts := []string{c.Name}
	if c.Version != "" {
		parts = append(parts, c.Version)
	}
	if c.Action != "" {
		parts = append(parts, c.Action)
	}
	parts = append(parts, c.Args...)
	return strings.Join(parts, " ")
}

// Has reports whether field was supplied.
func (c Command) Has(field Field) bool {
	switch field {
	case FieldVersion:
		return c.Version != ""
	case FieldAction:
		return c.Action != ""
	case FieldArgs:
		return len(c.Args) > 0
	default:
		return false
	}
}

// RunContext is what a callback receives. It is created for a single
// dispatch and discarded afterwards.
type RunContext struct {
	Command Command
	Project *Project

	// Path is the resolved version directory, or the project path when
	// no version applies. It may name a file.
	Path string

	// Args are the command arguments left after action-table
	// selection consumed its key.
	Args []string

	// Description labels the action in status output. Empty for bare
	// callbacks.
	Description string

	Out    io.Writer
	Logger *slog.Logger
}

// Force reports whether the force flag is among the arguments.
func (r *RunContext) Force() bool {
	return slices.Contains(r.Args, ForceFlag)
}
