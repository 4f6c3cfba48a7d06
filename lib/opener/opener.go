// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package opener hands files and directories to the desktop. Launch
// starts a file the way double-clicking it would; Open shows a
// directory in the file manager. Started programs are not waited for:
// jump exits while they keep running.
package opener

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// fallbackDirs are searched when the opener program is not on PATH,
// which happens under minimal desktop sessions that start jump with a
// reduced environment.
var fallbackDirs = []string{"/usr/local/bin", "/usr/bin", "/run/current-system/sw/bin"}

// Opener starts programs through the platform's file association
// mechanism: xdg-open on Linux and BSD, open on macOS, and
// "cmd /c start" on Windows.
type Opener struct {
	// GOOS selects the platform. Defaults to runtime.GOOS.
	GOOS string

	// Start starts cmd without waiting for it. Defaults to
	// (*exec.Cmd).Start followed by Release.
	Start func(cmd *exec.Cmd) error
}

// Launch starts the file at path. Executable files on Unix-like
// systems are run directly, from their own directory; anything else
// goes to the platform opener.
func (o Opener) Launch(ctx context.Context, path string) error {
	if o.goos() != "windows" && o.goos() != "darwin" && isExecutable(path) {
		cmd := exec.Command(path)
		cmd.Dir = filepath.Dir(path)
		return o.start(cmd)
	}
	return o.open(path)
}

// Open shows the directory at path.
func (o Opener) Open(ctx context.Context, path string) error {
	return o.open(path)
}

func (o Opener) open(path string) error {
	name, args := o.command(path)
	binary, err := FindBinary(name)
	if err != nil {
		return err
	}
	return o.start(exec.Command(binary, args...))
}

// command returns the program and arguments that open path.
func (o Opener) command(path string) (string, []string) {
	switch o.goos() {
	case "windows":
		// The empty string is start's window title; without it a
		// quoted path would be taken as the title.
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

func (o Opener) start(cmd *exec.Cmd) error {
	if o.Start != nil {
		return o.Start(cmd)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	return cmd.Process.Release()
}

func (o Opener) goos() string {
	if o.GOOS == "" {
		return runtime.GOOS
	}
	return o.GOOS
}

// FindBinary resolves name on PATH, then in the fallback directories.
func FindBinary(name string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	for _, dir := range fallbackDirs {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s not found on PATH: %w", name, errors.ErrUnsupported)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
