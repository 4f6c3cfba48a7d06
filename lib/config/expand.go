// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// ExpandPath expands a leading "~" to the home directory and
// ${VAR} / ${VAR:-default} references to environment values.
//
// A path made of nothing but one ${...} reference never reaches here:
// the binder claims whole-string ${...} values as expressions.
func ExpandPath(path string) string {
	path = varPattern.ReplaceAllStringFunc(path, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
