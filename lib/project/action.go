// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"context"
	"slices"
	"strings"
)

// ActionValue is one of [FileReference], [ActionTable],
// [ShellTemplate], or [Callback].
type ActionValue interface {
	actionValue()
}

// FileReference is a file to launch. A relative Path is joined to the
// version directory.
type FileReference struct {
	Path string
}

// DefaultKeyName is the configuration key holding an action table's
// default entry name.
const DefaultKeyName = "__default__"

// ActionTable selects one of several values by the command's first
// argument. With no argument, DefaultKey is used.
type ActionTable struct {
	DefaultKey string
	Entries    map[string]ActionValue
}

// Keys returns the entry names, sorted.
func (t ActionTable) Keys() []string {
	keys := make([]string, 0, len(t.Entries))
	for key := range t.Entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// ShellTemplate is a shell command line with placeholders.
type ShellTemplate struct {
	Description string
	Template    string
}

// Format substitutes {path} with path and {find_string} with args
// joined by single spaces.
func (s ShellTemplate) Format(path string, args []string) string {
	return strings.NewReplacer(
		"{path}", path,
		"{find_string}", strings.Join(args, " "),
	).Replace(s.Template)
}

// Callback invokes a registered function.
type Callback struct {
	Description string
	Handle      Handle
}

func (FileReference) actionValue() {}
func (ActionTable) actionValue()   {}
func (ShellTemplate) actionValue() {}
func (Callback) actionValue()      {}

// CallbackFunc is the signature of every registered callback. It
// prints user-facing status to run.Out and returns an error only for
// failures the caller should see as a failed action.
type CallbackFunc func(ctx context.Context, run *RunContext) error

// Handle is a named reference to a registered callback. Name is the
// symbol it was bound from, e.g. "commands.svn_update".
type Handle struct {
	Name string
	Func CallbackFunc
}

// String returns the symbol name.
func (h Handle) String() string {
	return h.Name
}
