// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bureau-foundation/jump/lib/config"
)

const (
	// BaseKey names the entry a definition inherits from.
	BaseKey = "base"

	// PrivatePrefix marks template-only entries.
	PrivatePrefix = "__"
)

// InheritanceError reports an unusable "base" reference.
type InheritanceError struct {
	Entry  string
	Base   string
	Reason string
}

func (e *InheritanceError) Error() string {
	if e.Base == "" {
		return fmt.Sprintf("entry %q: %s", e.Entry, e.Reason)
	}
	return fmt.Sprintf("entry %q: base %q: %s", e.Entry, e.Base, e.Reason)
}

// IsPrivate reports whether name marks a template-only entry.
func IsPrivate(name string) bool {
	return strings.HasPrefix(name, PrivatePrefix)
}

// Resolve returns a new tree in which every public entry has had its
// base merged underneath it. The input tree is not modified.
func Resolve(tree config.Tree) (config.Tree, error) {
	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	slices.Sort(names)

	resolved := make(config.Tree, len(tree))
	for _, name := range names {
		entry := tree[name]
		baseName, hasBase, err := baseOf(name, entry)
		if err != nil {
			return nil, err
		}

		if !hasBase {
			if !IsPrivate(name) {
				resolved[name] = Merge(nil, entry)
			}
			continue
		}

		if baseName == name {
			return nil, &InheritanceError{Entry: name, Base: baseName, Reason: "entry cannot inherit from itself"}
		}
		base, exists := tree[baseName]
		if !exists {
			return nil, &InheritanceError{Entry: name, Base: baseName, Reason: "no such entry"}
		}
		if _, chained, _ := baseOf(baseName, base); chained {
			return nil, &InheritanceError{Entry: name, Base: baseName,
				Reason: "base names a base of its own; inheritance is one level deep"}
		}

		if IsPrivate(name) {
			continue
		}
		resolved[name] = Merge(base, withoutBase(entry))
	}
	return resolved, nil
}

func baseOf(name string, entry config.Node) (string, bool, error) {
	raw, exists := entry[BaseKey]
	if !exists {
		return "", false, nil
	}
	baseName, ok := raw.(string)
	if !ok || baseName == "" {
		return "", false, &InheritanceError{Entry: name, Reason: fmt.Sprintf("%q must be a non-empty string, got %T", BaseKey, raw)}
	}
	return baseName, true, nil
}

func withoutBase(entry config.Node) config.Node {
	trimmed := make(config.Node, len(entry))
	for key, value := range entry {
		if key != BaseKey {
			trimmed[key] = value
		}
	}
	return trimmed
}

// Merge returns a deep copy of base with override merged over it.
//
// Merge rules:
//   - Objects present on both sides: merged recursively
//   - Anything else: the override's value replaces the base's
//   - Keys only on one side: carried through
//
// Neither input is modified and the result shares no objects or lists
// with them.
func Merge(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		result[key] = deepCopy(value)
	}
	for key, value := range override {
		baseChild, baseIsMap := result[key].(map[string]any)
		overrideChild, overrideIsMap := value.(map[string]any)
		if baseIsMap && overrideIsMap {
			result[key] = Merge(baseChild, overrideChild)
			continue
		}
		result[key] = deepCopy(value)
	}
	return result
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return Merge(nil, typed)
	case []any:
		copied := make([]any, len(typed))
		for i, element := range typed {
			copied[i] = deepCopy(element)
		}
		return copied
	default:
		return value
	}
}
