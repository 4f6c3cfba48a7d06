// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands implements the callbacks configuration can bind as
// "${commands.<name>}". [Handles] returns them keyed by name, ready
// for registry.Build.
//
// Callbacks write their status lines to the run context's writer. The
// svn lookups (get_last_release_version, find_release_versions,
// find_versions, get_age) print a failed lookup as its result text
// instead of returning it, so that one bad version does not stop a
// batch expanded from a version range.
//
// Every external effect goes through [Deps]: the process table, the
// killer, the svn runner, the Jenkins checker, the launcher and the
// shell. Tests substitute fakes for all of them.
package commands
