// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bureau-foundation/jump/lib/alias"
	"github.com/bureau-foundation/jump/lib/project"
	"github.com/bureau-foundation/jump/lib/version"
)

func radixActions() map[string]project.ActionValue {
	return map[string]project.ActionValue{
		"designer": project.FileReference{Path: "!!designer.cmd"},
		"server": project.ActionTable{
			DefaultKey: "ora",
			Entries: map[string]project.ActionValue{
				"ora": project.FileReference{Path: "!!server.cmd"},
				"pg":  project.FileReference{Path: "!!server-postgres.cmd"},
			},
		},
		"log": project.ShellTemplate{Description: "svn log", Template: "tortoise {path} {find_string}"},
	}
}

func testRegistry(t *testing.T) *project.Registry {
	t.Helper()

	radix := project.Options{
		Version:        project.Optional,
		Action:         project.Required,
		Args:           project.Optional,
		DefaultVersion: "trunk",
	}
	tx := &project.Project{
		Name:        "tx",
		Options:     radix,
		Paths:       []string{"/dev/tx"},
		BaseVersion: "3.2.{number}",
		Versions: version.NewTable(
			version.Entry{Name: "3.2.1", Path: "/dev/tx/3.2.1"},
			version.Entry{Name: "3.2.2", Path: "/dev/tx/3.2.2"},
			version.Entry{Name: "3.2.3", Path: "/dev/tx/3.2.3"},
			version.Entry{Name: "trunk", Path: "/dev/tx/trunk"},
		),
		Actions: radixActions(),
	}
	abc := &project.Project{
		Name:        "abc",
		Options:     radix,
		Paths:       []string{"/dev/abc", "/remote/abc"},
		BaseVersion: "4.1.{number}.10-dev",
		Versions: version.NewTable(
			version.Entry{Name: "4.1.1.10-dev", Path: "/dev/abc/4.1.1.10-dev"},
			version.Entry{Name: "4.1.2.10-dev", Path: "/dev/abc/4.1.2.10-dev"},
			version.Entry{Name: "4.1.3.10-dev", Path: "/remote/abc/4.1.3.10-dev"},
			version.Entry{Name: "trunk", Path: "/remote/abc/trunk"},
		),
		Actions: radixActions(),
	}
	doc := &project.Project{
		Name:    "doc",
		Options: project.Options{Version: project.Prohibited, Action: project.Prohibited, Args: project.Prohibited},
		Paths:   []string{"/opt/doc"},
	}
	manager := &project.Project{
		Name:    "manager",
		Options: project.Options{Version: project.Prohibited, Action: project.Optional, Args: project.Prohibited},
		Paths:   []string{"/opt/manager/bin/manager.cmd"},
		Actions: map[string]project.ActionValue{
			"up":    project.FileReference{Path: "up.cmd"},
			"clean": project.FileReference{Path: "clean.cmd"},
		},
	}
	noBase := &project.Project{
		Name:    "plain",
		Options: project.Options{Action: project.Optional},
		Versions: version.NewTable(
			version.Entry{Name: "1.0.3", Path: "/plain/1.0.3"},
		),
		Actions: map[string]project.ActionValue{"run": project.FileReference{Path: "run.cmd"}},
	}

	registry, err := project.NewRegistry("test", tx, abc, doc, manager, noBase)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

func command(name, version, action string, args ...string) project.Command {
	if args == nil {
		args = []string{}
	}
	return project.Command{Name: name, Version: version, Action: action, Args: args}
}

func TestCommands(t *testing.T) {
	registry := testRegistry(t)

	tests := []struct {
		input []string
		want  []project.Command
	}{
		{
			input: []string{"tx", "s"},
			want:  []project.Command{command("tx", "trunk", "server")},
		},
		{
			input: []string{"TX", "S", "pg"},
			want:  []project.Command{command("tx", "trunk", "server", "pg")},
		},
		{
			// Wrong keyboard layout for every token.
			input: []string{"еч", "ы", "зп"},
			want:  []project.Command{command("tx", "trunk", "server", "зп")},
		},
		{
			input: []string{"tx", "3", "s"},
			want:  []project.Command{command("tx", "3.2.3", "server")},
		},
		{
			input: []string{"abc", "3", "s"},
			want:  []project.Command{command("abc", "4.1.3.10-dev", "server")},
		},
		{
			input: []string{"tx", "2-tr", "s"},
			want: []project.Command{
				command("tx", "3.2.2", "server"),
				command("tx", "3.2.3", "server"),
				command("tx", "trunk", "server"),
			},
		},
		{
			input: []string{"tx", "2,tr", "s"},
			want: []project.Command{
				command("tx", "3.2.2", "server"),
				command("tx", "trunk", "server"),
			},
		},
		{
			input: []string{"tx", "3-tr", "d+s", "зп", "123"},
			want: []project.Command{
				command("tx", "3.2.3", "designer", "зп", "123"),
				command("tx", "3.2.3", "server", "зп", "123"),
				command("tx", "trunk", "designer", "зп", "123"),
				command("tx", "trunk", "server", "зп", "123"),
			},
		},
		{
			input: []string{"t", "д", "release", "version"},
			want:  []project.Command{command("tx", "trunk", "log", "release", "version")},
		},
		{
			// Required action missing: left for the dispatcher to report.
			input: []string{"tx"},
			want:  []project.Command{command("tx", "trunk", "")},
		},
		{
			input: []string{"doc"},
			want:  []project.Command{command("doc", "", "")},
		},
		{
			// A prohibited version and action: the token becomes an argument.
			input: []string{"doc", "Extra"},
			want:  []project.Command{command("doc", "", "", "Extra")},
		},
		{
			input: []string{"man", "u"},
			want:  []project.Command{command("manager", "", "up")},
		},
	}
	for _, test := range tests {
		got, err := Commands(registry, test.input)
		if err != nil {
			t.Errorf("Commands(%q): %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Commands(%q) =\n  %v\nwant\n  %v", test.input, got, test.want)
		}
	}
}

func TestCommandsDeterministic(t *testing.T) {
	registry := testRegistry(t)
	first, err := Commands(registry, []string{"tx", "s"})
	if err != nil {
		t.Fatalf("Commands: %v", err)
	}
	for range 10 {
		again, err := Commands(registry, []string{"tx", "s"})
		if err != nil || !reflect.DeepEqual(again, first) {
			t.Fatalf("Commands not deterministic: %v, %v (first %v)", again, err, first)
		}
	}
}

func TestCommandsArgsAreIndependent(t *testing.T) {
	registry := testRegistry(t)
	commands, err := Commands(registry, []string{"tx", "2,3", "s", "pg"})
	if err != nil {
		t.Fatalf("Commands: %v", err)
	}
	commands[0].Args[0] = "changed"
	if commands[1].Args[0] != "pg" {
		t.Errorf("commands share an args slice: %v", commands)
	}
}

func TestCommandsErrors(t *testing.T) {
	registry := testRegistry(t)

	tests := []struct {
		input   []string
		unknown alias.Kind
		config  bool
	}{
		{input: []string{"nope"}, unknown: alias.KindName},
		{input: []string{"tx", "zzz"}, unknown: alias.KindAction},
		{input: []string{"tx", "9", "s"}, unknown: alias.KindVersion},
		{input: []string{"tx", "s+zzz"}, unknown: alias.KindAction},
		{input: []string{"tx", "2-99", "s"}, unknown: alias.KindVersion},
		{input: []string{"plain", "3", "run"}, config: true},
	}
	for _, test := range tests {
		_, err := Commands(registry, test.input)
		switch {
		case test.config:
			var configErr *project.ConfigError
			if !errors.As(err, &configErr) || !errors.Is(err, version.ErrNoBaseVersion) {
				t.Errorf("Commands(%q) error = %v, want ConfigError wrapping ErrNoBaseVersion", test.input, err)
			}
		default:
			var unknown *alias.UnknownError
			if !errors.As(err, &unknown) || unknown.Kind != test.unknown {
				t.Errorf("Commands(%q) error = %v, want unknown %s", test.input, err, test.unknown)
			}
		}
	}

	if _, err := Commands(registry, nil); !errors.Is(err, ErrNoName) {
		t.Errorf("Commands(nil) error = %v, want ErrNoName", err)
	}
}

func TestCommandsAmbiguousAction(t *testing.T) {
	registry := testRegistry(t)
	tx, _ := registry.Project("tx")
	tx.Actions["designer2"] = project.FileReference{Path: "!!designer2.cmd"}

	_, err := Commands(registry, []string{"tx", "des"})
	var ambiguous *alias.AmbiguousError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("error = %v, want *alias.AmbiguousError", err)
	}
	if !reflect.DeepEqual(ambiguous.Variants, []string{"designer", "designer2"}) {
		t.Errorf("Variants = %v", ambiguous.Variants)
	}
}
