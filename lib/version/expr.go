// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/jump/lib/alias"
)

// ErrNoBaseVersion is returned when a short-form token is used with a
// project that has no base version template.
var ErrNoBaseVersion = errors.New("short version used but no base_version is configured")

// numberPlaceholder is substituted by the short-form digits in a base
// version template. A template without it has the digits appended.
const numberPlaceholder = "{number}"

// ExpandShort builds a full version name from a base version template
// and the digits of a short-form token: "3.2.{number}" with "35" gives
// "3.2.35", and a legacy template "3.2." gives the same.
func ExpandShort(baseVersion, number string) string {
	if strings.Contains(baseVersion, numberPlaceholder) {
		return strings.ReplaceAll(baseVersion, numberPlaceholder, number)
	}
	return baseVersion + number
}

// Resolve resolves a single version token against table. Short forms
// are expanded with baseVersion first; see [ExpandShort].
func Resolve(table Table, baseVersion, token string) (string, error) {
	if IsShort(token) {
		if baseVersion == "" {
			return "", fmt.Errorf("version %q: %w", token, ErrNoBaseVersion)
		}
		token = ExpandShort(baseVersion, token)
	}
	return alias.Resolve(alias.KindVersion, token, table.Names())
}

// Expand turns a version expression into the ordered list of version
// names it denotes. The result is never empty when err is nil.
func Expand(table Table, baseVersion, expression string) ([]string, error) {
	if _, exists := table.Lookup(expression); exists {
		return []string{expression}, nil
	}

	switch {
	case strings.Contains(expression, ","):
		return expandList(table, baseVersion, expression)
	case strings.Contains(expression, "-"):
		return expandRange(table, baseVersion, expression)
	default:
		name, err := Resolve(table, baseVersion, expression)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}
}

func expandList(table Table, baseVersion, expression string) ([]string, error) {
	pieces := strings.Split(expression, ",")
	names := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		name, err := Resolve(table, baseVersion, piece)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// expandRange walks the table from the start name and stops at the
// first entry containing the end name. The end is matched as a
// substring so that "34-trunk" stops at a directory called
// "trunk_tx". When no entry contains it the walk runs to the end of
// the table.
func expandRange(table Table, baseVersion, expression string) ([]string, error) {
	ends := strings.Split(expression, "-")
	if len(ends) != 2 {
		return nil, fmt.Errorf("version range %q: expected exactly one '-' separating start and end", expression)
	}
	start, err := Resolve(table, baseVersion, ends[0])
	if err != nil {
		return nil, err
	}
	end, err := Resolve(table, baseVersion, ends[1])
	if err != nil {
		return nil, err
	}

	var names []string
	started := false
	for _, name := range table.Names() {
		if name == start {
			started = true
		}
		if !started {
			continue
		}
		names = append(names, name)
		if strings.Contains(name, end) {
			break
		}
	}
	return names, nil
}
