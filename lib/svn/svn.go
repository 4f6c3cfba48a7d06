// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package svn provides typed access to "svn log" for release lookups.
//
// Every query runs "svn log --xml" against a branch URL derived from a
// project's development URL ("<dev-url>/<version>") and parses the XML
// into [Revision] values. Date windows are computed from an injected
// clock so that tests can pin "today".
package svn

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes svn with arguments and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// CLI runs the svn binary found on PATH (or Binary, when set).
type CLI struct {
	Binary string
}

// Run executes "svn <args>" and returns stdout. Stderr is captured
// separately and included in the error on failure.
func (c CLI) Run(ctx context.Context, args ...string) ([]byte, error) {
	binary := c.Binary
	if binary == "" {
		binary = "svn"
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, binary, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return nil, fmt.Errorf("svn %s: %w (stderr: %s)",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
