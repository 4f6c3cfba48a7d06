// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package project defines the typed project model that the rest of
// jump works against.
//
// A [Project] is one named launch target: an availability rule for
// each of the three command fields ([Options]), one or more root
// directories, a table of version directories, and a set of named
// actions. A [Registry] holds the projects of one configuration.
//
// # Actions
//
// Every action is one of four shapes, expressed as the [ActionValue]
// sum type:
//
//   - [FileReference] -- a file to launch, relative to the version
//     directory
//   - [ActionTable] -- a keyed sub-selection chosen by the first
//     argument, with a default key
//   - [ShellTemplate] -- a shell command with {path} and {find_string}
//     placeholders
//   - [Callback] -- a registered Go function, invoked with a
//     [RunContext]
//
// Consumers switch on the concrete type; the interface is sealed so
// the switch can be exhaustive.
//
// # Decoding
//
// [Decode] converts one merged, bound configuration entry into a
// [Project]. It expects binding to have already replaced "${...}"
// leaves with [Availability] values and [Handle]s. Structural problems
// are reported as [*ConfigError] naming the project and field.
package project
