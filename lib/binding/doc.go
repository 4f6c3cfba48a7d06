// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binding replaces "${...}" leaves of a configuration tree with
// the values their expressions denote.
//
// A leaf is bindable when it is a string whose whole text is "${"
// expression "}", or a two-element list whose second element is such
// a string (the [description, command] action shape). Every other
// value, including strings that merely contain "${", is left alone.
//
// Expressions use HCL native syntax and are evaluated against a closed
// [hcl.EvalContext]. The only variables in scope are:
//
//   - the namespaces passed in [Symbols] (for jump: AvailabilityEnum
//     and commands), whose members bind to Go values such as
//     availability constants and callback handles
//   - self, a read-only view of the tree being bound, so one entry can
//     derive a value from another's fields
//
// A small fixed set of string functions (format, join, lower, upper,
// replace, trimsuffix) is available. There is no access to the
// environment, the filesystem, or any other process state.
//
//	"${AvailabilityEnum.REQUIRED}"
//	"${commands.svn_update}"
//	"${\"${self.tx.vars.URL_JENKINS}/job/assemble_tx/branch={version}\"}"
//
// References through self are resolved on demand: a referenced leaf
// that is itself an expression is bound first. A leaf that depends on
// itself, directly or through other leaves, is an error.
package binding
