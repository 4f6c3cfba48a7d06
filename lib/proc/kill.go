// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package proc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Killer terminates processes.
type Killer interface {
	Kill(pid int) error
}

// Signal kills with SIGKILL.
type Signal struct{}

// Kill sends SIGKILL to pid.
func (Signal) Kill(pid int) error {
	if err := unix.Kill(pid, unix.SIGKILL); err != nil {
		return fmt.Errorf("killing process %d: %w", pid, err)
	}
	return nil
}
