// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for jump packages.
//
// [ProjectTree] lays out a project root with version directories and
// files inside them, the shape the version scanner and dispatcher
// expect. [WriteFile] and [WriteConfig] create single files with
// parent directories as needed.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no jump-internal dependencies.
package testutil
