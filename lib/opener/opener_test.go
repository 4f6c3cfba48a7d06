// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package opener

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos    string
		program string
		args    []string
	}{
		{"linux", "xdg-open", []string{"/dev/tx"}},
		{"freebsd", "xdg-open", []string{"/dev/tx"}},
		{"darwin", "open", []string{"/dev/tx"}},
		{"windows", "cmd", []string{"/c", "start", "", "/dev/tx"}},
	}
	for _, test := range tests {
		t.Run(test.goos, func(t *testing.T) {
			program, args := Opener{GOOS: test.goos}.command("/dev/tx")
			if program != test.program || !slices.Equal(args, test.args) {
				t.Errorf("command = %s %q, want %s %q", program, args, test.program, test.args)
			}
		})
	}
}

func TestLaunchRunsExecutableDirectly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit is not meaningful on Windows")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "server.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	var started *exec.Cmd
	opener := Opener{GOOS: "linux", Start: func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}}
	if err := opener.Launch(context.Background(), script); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if started == nil || started.Path != script || started.Dir != dir {
		t.Fatalf("started = %+v, want %s in %s", started, script, dir)
	}
}

func TestFindBinaryMissing(t *testing.T) {
	if _, err := FindBinary("jump-no-such-opener"); err == nil {
		t.Error("expected an error for a missing binary")
	}
}
