// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ProjectTree creates root (under t.TempDir when root is empty) with
// one subdirectory per version and returns the absolute root path.
// Files are created relative to root: a key such as
// "trunk/!!server.cmd" produces that file with the given content.
//
//	root := testutil.ProjectTree(t, "", []string{"3.2.1", "trunk"}, map[string]string{
//	    "trunk/!!server.cmd": "",
//	})
func ProjectTree(t *testing.T, root string, versions []string, files map[string]string) string {
	t.Helper()

	if root == "" {
		root = t.TempDir()
	}
	for _, name := range versions {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("creating version directory %s: %v", name, err)
		}
	}
	for relative, content := range files {
		WriteFile(t, filepath.Join(root, relative), content)
	}

	absolute, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolving %s: %v", root, err)
	}
	return absolute
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// WriteConfig writes a configuration document named name into a fresh
// temporary directory and returns its path. The extension of name
// selects the format the loader will parse.
func WriteConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	WriteFile(t, path, content)
	return path
}
