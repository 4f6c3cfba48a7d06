// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bureau-foundation/jump/lib/config"
)

func radixTree() config.Tree {
	return config.Tree{
		"__radix_base": {
			"options": map[string]any{
				"version":         "OPTIONAL",
				"action":          "REQUIRED",
				"args":            "OPTIONAL",
				"default_version": "trunk",
			},
			"actions": map[string]any{
				"designer": "!!designer.cmd",
				"server": map[string]any{
					"__default__": "ora",
					"ora":         "!!server.cmd",
					"pg":          "!!server-postgres.cmd",
				},
				"log": []any{"svn log", "tortoise {path}"},
			},
		},
		"tx": {
			"base":         "__radix_base",
			"path":         "/dev/tx",
			"base_version": "3.2.{number}",
			"options": map[string]any{
				"default_version": "3.2.35.10",
			},
			"actions": map[string]any{
				"server": map[string]any{"pg": "!!pg.cmd"},
				"log":    []any{"svn log", "other {path}"},
			},
		},
		"doc": {
			"path": "/opt/doc",
		},
	}
}

func TestResolveMergesBase(t *testing.T) {
	resolved, err := Resolve(radixTree())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if _, exists := resolved["__radix_base"]; exists {
		t.Error("private entry survived resolution")
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resolved))
	}

	tx := resolved["tx"]
	if _, exists := tx[BaseKey]; exists {
		t.Error("base key was not consumed")
	}

	wantOptions := map[string]any{
		"version":         "OPTIONAL",
		"action":          "REQUIRED",
		"args":            "OPTIONAL",
		"default_version": "3.2.35.10",
	}
	if !reflect.DeepEqual(tx["options"], wantOptions) {
		t.Errorf("options = %#v, want %#v", tx["options"], wantOptions)
	}

	actions := tx["actions"].(map[string]any)
	wantServer := map[string]any{
		"__default__": "ora",
		"ora":         "!!server.cmd",
		"pg":          "!!pg.cmd",
	}
	if !reflect.DeepEqual(actions["server"], wantServer) {
		t.Errorf("server = %#v, want %#v", actions["server"], wantServer)
	}
	if !reflect.DeepEqual(actions["log"], []any{"svn log", "other {path}"}) {
		t.Errorf("lists must be replaced, not merged: %#v", actions["log"])
	}
	if actions["designer"] != "!!designer.cmd" {
		t.Errorf("inherited action missing: %#v", actions["designer"])
	}

	if !reflect.DeepEqual(resolved["doc"], config.Node{"path": "/opt/doc"}) {
		t.Errorf("doc = %#v", resolved["doc"])
	}
}

func TestResolveDoesNotAliasInput(t *testing.T) {
	tree := radixTree()
	resolved, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	resolved["tx"]["actions"].(map[string]any)["designer"] = "changed"
	baseActions := tree["__radix_base"]["actions"].(map[string]any)
	if baseActions["designer"] != "!!designer.cmd" {
		t.Error("mutating the result changed the base entry")
	}
	if _, exists := tree["tx"][BaseKey]; !exists {
		t.Error("Resolve removed the base key from its input")
	}
}

func TestResolveRejectsBadBases(t *testing.T) {
	tests := []struct {
		name string
		tree config.Tree
	}{
		{"unknown base", config.Tree{"tx": {"base": "__missing"}}},
		{"self", config.Tree{"tx": {"base": "tx"}}},
		{"chained", config.Tree{
			"__a": {"path": "/a"},
			"__b": {"base": "__a"},
			"tx":  {"base": "__b"},
		}},
		{"cycle", config.Tree{
			"__a": {"base": "__b"},
			"__b": {"base": "__a"},
			"tx":  {"base": "__a"},
		}},
		{"non-string base", config.Tree{"tx": {"base": 3.0}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Resolve(test.tree)
			var inheritance *InheritanceError
			if !errors.As(err, &inheritance) {
				t.Fatalf("expected *InheritanceError, got %v", err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := map[string]any{
		"a": "base",
		"nested": map[string]any{
			"keep":     1.0,
			"override": "base",
		},
		"replace": map[string]any{"x": "y"},
	}
	override := map[string]any{
		"nested":  map[string]any{"override": "child", "added": true},
		"replace": "scalar",
		"b":       "child",
	}

	got := Merge(base, override)
	want := map[string]any{
		"a": "base",
		"b": "child",
		"nested": map[string]any{
			"keep":     1.0,
			"override": "child",
			"added":    true,
		},
		"replace": "scalar",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %#v, want %#v", got, want)
	}
	if base["nested"].(map[string]any)["override"] != "base" {
		t.Error("Merge modified its base argument")
	}
}
