// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

// Entry is one row of a [Table].
type Entry struct {
	// Name is the version name, the directory's base name.
	Name string

	// Path is the absolute path of the version directory.
	Path string
}

// Table is an insertion-ordered mapping from version name to
// directory. The zero value is an empty table ready for use.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable returns a table holding entries in the given order. A later
// entry with an already-present name replaces the earlier path.
func NewTable(entries ...Entry) Table {
	var table Table
	for _, entry := range entries {
		table.Set(entry.Name, entry.Path)
	}
	return table
}

// Set records path under name. Re-setting an existing name replaces
// its path but keeps its original position.
func (t *Table) Set(name, path string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if position, exists := t.index[name]; exists {
		t.entries[position].Path = path
		return
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, Entry{Name: name, Path: path})
}

// Lookup returns the path recorded for name.
func (t Table) Lookup(name string) (string, bool) {
	position, exists := t.index[name]
	if !exists {
		return "", false
	}
	return t.entries[position].Path, true
}

// Names returns the version names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, entry := range t.entries {
		names[i] = entry.Name
	}
	return names
}

// Entries returns a copy of the table rows in order.
func (t Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of versions in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// Merge appends other's entries to t, with other winning on name
// collisions.
func (t *Table) Merge(other Table) {
	for _, entry := range other.entries {
		t.Set(entry.Name, entry.Path)
	}
}
