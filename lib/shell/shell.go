// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package shell runs formatted command lines through the system shell.
// Output streams to the configured writers (the terminal, for the jump
// binary) so long-running commands such as "svn update" show progress
// as it happens.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Runner executes command lines with "sh -c" ("cmd /C" on Windows).
type Runner struct {
	// Stdout and Stderr default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer

	// Program and Flag override the shell invocation. Both empty
	// selects the platform default.
	Program string
	Flag    string
}

// Run executes command with dir as its working directory. A non-zero
// exit is returned as an error carrying the command line.
func (r Runner) Run(ctx context.Context, dir, command string) error {
	program, flag := r.invocation()

	process := exec.CommandContext(ctx, program, flag, command)
	process.Dir = dir
	process.Stdin = os.Stdin
	process.Stdout = writerOr(r.Stdout, os.Stdout)
	process.Stderr = writerOr(r.Stderr, os.Stderr)

	if err := process.Run(); err != nil {
		return fmt.Errorf("running %q in %s: %w", command, dir, err)
	}
	return nil
}

func (r Runner) invocation() (string, string) {
	if r.Program != "" {
		return r.Program, r.Flag
	}
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
