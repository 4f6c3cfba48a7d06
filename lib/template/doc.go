// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package template applies "base" inheritance to a raw configuration
// tree.
//
// An entry may name another entry of the same tree in its "base" key.
// [Resolve] deep-merges the named entry underneath it: keys the entry
// sets itself win, nested objects merge recursively, and any other
// value (string, number, list) replaces the base's value outright.
// The "base" key is consumed and never appears in the result.
//
// Inheritance is one hop. A base must not itself name a base, an entry
// must not name itself, and the named base must exist; each of these is
// reported as an [*InheritanceError] rather than resolved by
// declaration order.
//
// Entries whose names start with [PrivatePrefix] are templates only:
// they can be named as a base but are dropped from the result.
package template
