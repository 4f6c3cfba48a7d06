// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"

	"github.com/bureau-foundation/jump/lib/project"
)

// AvailabilityError reports a command field that is missing although
// required, or present although prohibited.
type AvailabilityError struct {
	Command      project.Command
	Field        project.Field
	Availability project.Availability
}

func (e *AvailabilityError) Error() string {
	if e.Availability == project.Required {
		return fmt.Sprintf("%s: %s is required for %q", e.Command, e.Field, e.Command.Name)
	}
	return fmt.Sprintf("%s: %s is not allowed for %q", e.Command, e.Field, e.Command.Name)
}

// ActionError wraps a failure of an executed step.
type ActionError struct {
	Command project.Command
	Action  string
	Err     error
}

func (e *ActionError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: action %q: %v", e.Command, e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
