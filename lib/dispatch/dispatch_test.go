// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bureau-foundation/jump/lib/alias"
	"github.com/bureau-foundation/jump/lib/project"
	"github.com/bureau-foundation/jump/lib/testutil"
	"github.com/bureau-foundation/jump/lib/version"
)

// recorder stands in for every collaborator and records calls in
// order as "kind path" strings.
type recorder struct {
	calls []string
	fail  error
}

func (r *recorder) Launch(_ context.Context, path string) error {
	r.calls = append(r.calls, "launch "+path)
	return r.fail
}

func (r *recorder) Open(_ context.Context, path string) error {
	r.calls = append(r.calls, "open "+path)
	return r.fail
}

func (r *recorder) Run(_ context.Context, dir, command string) error {
	r.calls = append(r.calls, "shell "+dir+" "+command)
	return r.fail
}

func (r *recorder) chdir(dir string) error {
	r.calls = append(r.calls, "chdir "+dir)
	return nil
}

type fixture struct {
	registry *project.Registry
	txRoot   string
	manager  string
	file     string
	runs     []*project.RunContext
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}

	f.txRoot = testutil.ProjectTree(t, "", []string{"3.2.1", "3.2.2", "3.2.3", "trunk"}, nil)
	versions := version.Scan(f.txRoot)

	toolRoot := testutil.ProjectTree(t, "", nil, map[string]string{
		"manager/bin/manager.cmd": "",
		"txt/1.txt":               "hello",
	})
	f.manager = filepath.Join(toolRoot, "manager/bin/manager.cmd")
	f.file = filepath.Join(toolRoot, "txt/1.txt")

	record := func(_ context.Context, run *project.RunContext) error {
		f.runs = append(f.runs, run)
		return nil
	}
	broken := func(context.Context, *project.RunContext) error {
		return errors.New("svn exploded")
	}

	tx := &project.Project{
		Name: "tx",
		Options: project.Options{
			Version: project.Optional, Action: project.Required, Args: project.Optional,
			DefaultVersion: "trunk",
		},
		Paths:       []string{f.txRoot},
		BaseVersion: "3.2.{number}",
		Versions:    versions,
		Actions: map[string]project.ActionValue{
			"designer": project.FileReference{Path: "!!designer.cmd"},
			"server": project.ActionTable{
				DefaultKey: "ora",
				Entries: map[string]project.ActionValue{
					"ora": project.FileReference{Path: "!!server.cmd"},
					"pg":  project.FileReference{Path: "!!server-postgres.cmd"},
				},
			},
			"log":    project.ShellTemplate{Description: "svn log", Template: "tortoise /path:{path} /find:{find_string}"},
			"update": project.Callback{Description: "svn update", Handle: project.Handle{Name: "commands.svn_update", Func: record}},
			"broken": project.Callback{Handle: project.Handle{Name: "commands.broken", Func: broken}},
			"nodefault": project.ActionTable{Entries: map[string]project.ActionValue{
				"a": project.FileReference{Path: "a.cmd"},
			}},
		},
	}
	manager := &project.Project{
		Name:    "manager",
		Options: project.Options{Version: project.Prohibited, Action: project.Optional, Args: project.Prohibited},
		Paths:   []string{f.manager},
		Actions: map[string]project.ActionValue{
			"up": project.Callback{Handle: project.Handle{Name: "commands.manager_up", Func: record}},
		},
	}
	file := &project.Project{
		Name:    "file",
		Options: project.Options{Version: project.Prohibited, Action: project.Prohibited, Args: project.Prohibited},
		Paths:   []string{f.file},
	}
	specs := &project.Project{
		Name:    "specs",
		Options: project.Options{Version: project.Prohibited, Action: project.Optional, Args: project.Prohibited},
		Paths:   []string{toolRoot},
	}

	registry, err := project.NewRegistry("test", tx, manager, file, specs)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	f.registry = registry
	return f
}

func (f *fixture) dispatch(t *testing.T, commands ...project.Command) (*recorder, string, error) {
	t.Helper()
	collaborators := &recorder{}
	var out bytes.Buffer
	dispatcher := &Dispatcher{
		Launcher: collaborators,
		Shell:    collaborators,
		Chdir:    collaborators.chdir,
		Out:      &out,
	}
	err := dispatcher.Dispatch(context.Background(), f.registry, commands)
	return collaborators, out.String(), err
}

func cmd(name, version, action string, args ...string) project.Command {
	return project.Command{Name: name, Version: version, Action: action, Args: args}
}

func TestDispatchFileReferences(t *testing.T) {
	f := newFixture(t)
	trunk := filepath.Join(f.txRoot, "trunk")
	v3 := filepath.Join(f.txRoot, "3.2.3")

	tests := []struct {
		name    string
		command project.Command
		want    []string
	}{
		{"table default", cmd("tx", "trunk", "server"), []string{
			"chdir " + trunk, "launch " + filepath.Join(trunk, "!!server.cmd"),
		}},
		{"table by arg", cmd("tx", "3.2.3", "server", "pg"), []string{
			"chdir " + v3, "launch " + filepath.Join(v3, "!!server-postgres.cmd"),
		}},
		{"table by transliterated prefix", cmd("tx", "trunk", "server", "з"), []string{
			"chdir " + trunk, "launch " + filepath.Join(trunk, "!!server-postgres.cmd"),
		}},
		{"plain file", cmd("tx", "trunk", "designer"), []string{
			"chdir " + trunk, "launch " + filepath.Join(trunk, "!!designer.cmd"),
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			calls, _, err := f.dispatch(t, test.command)
			if err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if !reflect.DeepEqual(calls.calls, test.want) {
				t.Errorf("calls = %q, want %q", calls.calls, test.want)
			}
		})
	}
}

func TestDispatchShellTemplate(t *testing.T) {
	f := newFixture(t)
	trunk := filepath.Join(f.txRoot, "trunk")

	calls, out, err := f.dispatch(t, cmd("tx", "trunk", "log", "release", "version"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	want := []string{
		"chdir " + trunk,
		"shell " + trunk + " tortoise /path:" + trunk + " /find:release version",
	}
	if !reflect.DeepEqual(calls.calls, want) {
		t.Errorf("calls = %q, want %q", calls.calls, want)
	}
	if out != "Run: svn log in "+trunk+"\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDispatchCallback(t *testing.T) {
	f := newFixture(t)
	v2 := filepath.Join(f.txRoot, "3.2.2")

	_, out, err := f.dispatch(t, cmd("tx", "3.2.2", "update", "-f"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(f.runs) != 1 {
		t.Fatalf("callback ran %d times, want 1", len(f.runs))
	}
	run := f.runs[0]
	if run.Path != v2 || run.Description != "svn update" || !run.Force() {
		t.Errorf("run context = %+v", run)
	}
	if run.Project == nil || run.Project.Name != "tx" {
		t.Errorf("run project = %v", run.Project)
	}
	if !strings.Contains(out, `Run: tx call "update" (-f)`) {
		t.Errorf("output = %q", out)
	}
}

func TestDispatchShortcuts(t *testing.T) {
	f := newFixture(t)

	calls, _, err := f.dispatch(t, cmd("file", "", ""))
	if err != nil {
		t.Fatalf("Dispatch file: %v", err)
	}
	if !reflect.DeepEqual(calls.calls, []string{"launch " + f.file}) {
		t.Errorf("file calls = %q", calls.calls)
	}

	calls, _, err = f.dispatch(t, cmd("manager", "", ""))
	if err != nil {
		t.Fatalf("Dispatch manager: %v", err)
	}
	if !reflect.DeepEqual(calls.calls, []string{"launch " + f.manager}) {
		t.Errorf("manager calls = %q", calls.calls)
	}

	// With an action the file path is handed to the callback and the
	// working directory is its parent.
	calls, _, err = f.dispatch(t, cmd("manager", "", "up"))
	if err != nil {
		t.Fatalf("Dispatch manager up: %v", err)
	}
	if !reflect.DeepEqual(calls.calls, []string{"chdir " + filepath.Dir(f.manager)}) {
		t.Errorf("manager up calls = %q", calls.calls)
	}
	if len(f.runs) != 1 || f.runs[0].Path != f.manager {
		t.Errorf("manager up runs = %+v", f.runs)
	}
}

func TestDispatchOpensDirectoryWithoutAction(t *testing.T) {
	f := newFixture(t)
	root, _ := f.registry.Project("specs")

	calls, out, err := f.dispatch(t, cmd("specs", "", ""))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	want := []string{"chdir " + root.Paths[0], "open " + root.Paths[0]}
	if !reflect.DeepEqual(calls.calls, want) {
		t.Errorf("calls = %q, want %q", calls.calls, want)
	}
	if out != "Open: "+root.Paths[0]+"\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDispatchAvailability(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		command      project.Command
		field        project.Field
		availability project.Availability
	}{
		{cmd("tx", "trunk", ""), project.FieldAction, project.Required},
		{cmd("manager", "", "up", "x"), project.FieldArgs, project.Prohibited},
		{cmd("file", "1.0", ""), project.FieldVersion, project.Prohibited},
	}
	for _, test := range tests {
		calls, _, err := f.dispatch(t, test.command)
		var availability *AvailabilityError
		if !errors.As(err, &availability) {
			t.Errorf("%s: error = %v, want *AvailabilityError", test.command, err)
			continue
		}
		if availability.Field != test.field || availability.Availability != test.availability {
			t.Errorf("%s: got %s %s, want %s %s", test.command,
				availability.Field, availability.Availability, test.field, test.availability)
		}
		if len(calls.calls) != 0 {
			t.Errorf("%s: collaborators called: %q", test.command, calls.calls)
		}
	}
}

func TestDispatchValidatesBatchBeforeRunning(t *testing.T) {
	f := newFixture(t)

	// The third command selects a table entry that does not exist.
	calls, _, err := f.dispatch(t,
		cmd("tx", "3.2.3", "designer", "abc", "123"),
		cmd("tx", "3.2.3", "update", "abc", "123"),
		cmd("tx", "3.2.3", "server", "abc", "123"),
	)
	var unknown *alias.UnknownError
	if !errors.As(err, &unknown) || unknown.Kind != alias.KindArg || unknown.Token != "abc" {
		t.Fatalf("error = %v, want unknown argument \"abc\"", err)
	}
	if len(calls.calls) != 0 || len(f.runs) != 0 {
		t.Errorf("steps ran before the batch was validated: %q, %d callbacks", calls.calls, len(f.runs))
	}
}

func TestDispatchTableWithoutDefault(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.dispatch(t, cmd("tx", "trunk", "nodefault"))
	var unknown *alias.UnknownError
	if !errors.As(err, &unknown) || unknown.Kind != alias.KindArg {
		t.Fatalf("error = %v, want unknown argument", err)
	}
}

func TestDispatchActionError(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.dispatch(t, cmd("tx", "trunk", "broken"))
	var actionErr *ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("error = %v, want *ActionError", err)
	}
	if actionErr.Action != "broken" || !strings.Contains(err.Error(), "svn exploded") {
		t.Errorf("ActionError = %v", actionErr)
	}
}

func TestPlanUnknownVersion(t *testing.T) {
	f := newFixture(t)
	_, err := Plan(f.registry, []project.Command{cmd("tx", "9.9.9", "designer")})
	var unknown *alias.UnknownError
	if !errors.As(err, &unknown) || unknown.Kind != alias.KindVersion {
		t.Fatalf("error = %v, want unknown version", err)
	}
}
