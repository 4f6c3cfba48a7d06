// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config locates and parses the jump configuration document.
//
// The document is a mapping from project name to a raw project
// definition. It is loaded into a [Tree] without interpretation:
// inheritance, binding, and decoding into typed projects happen in
// later stages (see lib/template, lib/binding, lib/project).
//
// # Location
//
// [Locate] picks the first configuration file that applies:
//
//  1. the --config flag
//  2. the JUMP_CONFIG environment variable
//  3. jump.json, jump.jsonc, jump.yaml, or jump.yml beside the executable
//  4. the same names under jump/ in the XDG config directories
//
// An explicit path (flag or environment) that does not exist is an
// error rather than a reason to fall through to the next candidate.
//
// # Formats
//
// The extension selects the parser. ".json" and ".jsonc" documents may
// carry comments and trailing commas; they are normalized with jsonc
// before decoding. ".yaml" and ".yml" documents are decoded with
// yaml.v3.
//
// # Environment
//
// [LoadEnv] reads the process-level settings (config path, log level,
// HTTP timeout) from JUMP_* environment variables.
package config
