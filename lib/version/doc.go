// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version maintains a project's table of version directories
// and expands the version expressions users type on the command line.
//
// # Version table
//
// A [Table] maps a version name (the directory's base name, such as
// "3.2.35.10" or "trunk") to its absolute path. The table remembers
// insertion order: range expressions walk it in that order, so two
// tables built from the same directories always expand the same way.
// [Scan] builds a table from one or more root directories, keeping
// only the children whose names pass [LooksLike].
//
// # Expressions
//
// [Expand] turns a raw token into an ordered list of version names:
//
//   - "3.2.35.10", "tr", "екгтл" -- a single name, resolved through
//     [alias.Resolve] (exact, then unique prefix, then the other
//     keyboard layout)
//   - "35" -- a short form: digits only, substituted into the
//     project's base version template before resolution
//   - "34,35,trunk" -- a comma list, each piece resolved on its own,
//     order and duplicates preserved
//   - "34-trunk" -- a dash range, every table entry from the start
//     name through the first entry containing the end name
//
// A token that is itself a version name is never split, so directories
// such as "3.2-hotfix" stay addressable.
package version
