// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry turns a parsed configuration tree into the
// read-only [project.Registry] the rest of jump works from.
//
// [Build] runs the loading pipeline in a fixed order:
//
//  1. template inheritance ("base" entries merged, "__" entries dropped)
//  2. binding of "${...}" leaves against AvailabilityEnum, the
//     registered callback handles, and the tree itself
//  3. decoding of each entry into a [project.Project]
//  4. scanning each project's paths for version directories, with
//     versions listed in the configuration taking precedence
//
// Any failure aborts the build: a registry is either complete or not
// produced at all.
package registry
