// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds the exit path of the jump binary. Errors that
// reach main either carry an exit code, because the command already
// printed its own report, or are unexpected and printed once to stderr
// before exiting with status 1.
package process
