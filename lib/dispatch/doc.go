// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dispatch executes resolved commands.
//
// Dispatch is split in two phases. [Plan] validates every command of
// an invocation (availability rules, action lookup, action-table
// selection) and turns it into a list of [Step] values without side
// effects beyond stat calls. Only when the whole batch plans cleanly
// does [Dispatcher.Run] execute the steps in order, so a typo in the
// last command of a version range does not leave the first ones half
// done.
//
// A non-shortcut command always plans an explicit [StepChdir] into the
// resolved directory before its action, so shell templates with
// relative paths and callbacks that inspect the working directory see
// the version directory.
package dispatch
