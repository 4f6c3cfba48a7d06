// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"errors"
	"fmt"
)

// ConfigError is a structural problem in a project's configuration.
// It is always fatal for the invocation that hit it.
type ConfigError struct {
	Project string
	Field   string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: project %q: %v", e.Project, e.Err)
	}
	return fmt.Sprintf("config: project %q: %s: %v", e.Project, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ErrNoPath is wrapped by the [*ConfigError] returned when a project
// has no path to launch or scan.
var ErrNoPath = errors.New("no path configured")
