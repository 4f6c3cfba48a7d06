// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"regexp"
	"strings"

	"github.com/bureau-foundation/jump/lib/alias"
	"github.com/bureau-foundation/jump/lib/layout"
)

// Trunk is the name of the always-latest development version.
const Trunk = "trunk"

var dottedNumber = regexp.MustCompile(`\d+(\.\d+)+`)

// IsShort reports whether value is a short-form version: a non-empty
// run of ASCII digits such as "35".
func IsShort(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LooksLike reports whether value could name a version or a version
// expression. It is deliberately loose: the command-line parser uses it
// to decide whether a token is a version or an action, and the scanner
// uses it to skip unrelated directories.
//
// A value looks like a version when it contains "trunk", abbreviates
// "trunk" (on either keyboard layout), contains a dotted number, is a
// short form, or contains a range or list separator.
func LooksLike(value string) bool {
	if value == "" {
		return false
	}
	if strings.Contains(value, Trunk) || strings.Contains(value, layout.Translate(Trunk)) {
		return true
	}
	if _, err := alias.Resolve(alias.KindVersion, value, []string{Trunk}); err == nil {
		return true
	}
	return dottedNumber.MatchString(value) ||
		IsShort(value) ||
		strings.ContainsAny(value, "-,")
}
