// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolve turns command-line tokens into fully resolved
// [project.Command] values.
//
// The grammar is positional:
//
//	<name> [version-expr] [action[+action...]] [args...]
//
// The name is resolved against the registry. The second token is a
// version expression when it looks like one and the project accepts a
// version; otherwise it is an action when the project accepts one.
// When the second token was a version, the third is the action. All
// remaining tokens are passed through as raw arguments.
//
// A version expression may denote several versions and an action token
// several actions; [Commands] returns one command per (version,
// action) pair, versions outermost, both in the order written.
//
// Resolution is pure: nothing here touches the filesystem or runs
// anything. Availability rules are enforced later, by the dispatcher.
package resolve
