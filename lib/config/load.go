// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Node is one raw project definition: the decoded JSON or YAML object
// with string keys. Values are strings, numbers, booleans, nested
// Nodes, and []any lists.
type Node = map[string]any

// Tree maps project names (including private template entries) to
// their raw definitions.
type Tree map[string]Node

// Format identifies a configuration document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format selected by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (use .json, .jsonc, .yaml, or .yml)", filepath.Ext(path))
	}
}

// LoadFile reads and parses the configuration document at path.
func LoadFile(path string) (Tree, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	tree, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}

// Parse decodes a configuration document. Every top-level value must
// be an object.
func Parse(data []byte, format Format) (Tree, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}

	tree := make(Tree, len(raw))
	for name, value := range raw {
		node, ok := normalize(value).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("project %q: definition must be an object, got %T", name, value)
		}
		tree[name] = node
	}
	return tree, nil
}

// normalize converts the map[any]any values yaml.v3 produces for
// non-string keys into map[string]any, so that later stages see one
// shape regardless of format.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			typed[key] = normalize(child)
		}
		return typed
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, child := range typed {
			converted[fmt.Sprint(key)] = normalize(child)
		}
		return converted
	case []any:
		for i, child := range typed {
			typed[i] = normalize(child)
		}
		return typed
	default:
		return value
	}
}
