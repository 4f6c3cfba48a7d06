// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"os"
	"path/filepath"
)

// Scan lists the child directories of each root whose names pass
// [LooksLike] and returns them as a table. Roots are scanned in order
// and merged, a later root winning on name collision. Within one root,
// entries follow directory listing order (sorted by name). A root that
// is missing or not a directory contributes nothing.
//
// Symlinks are followed: a link to a directory counts as a directory.
func Scan(roots ...string) Table {
	var table Table
	for _, root := range roots {
		table.Merge(scanRoot(root))
	}
	return table
}

func scanRoot(root string) Table {
	var table Table
	if root == "" {
		return table
	}
	absolute, err := filepath.Abs(root)
	if err != nil {
		return table
	}
	children, err := os.ReadDir(absolute)
	if err != nil {
		return table
	}
	for _, child := range children {
		if !LooksLike(child.Name()) {
			continue
		}
		path := filepath.Join(absolute, child.Name())
		if !isDir(child, path) {
			continue
		}
		table.Set(child.Name(), path)
	}
	return table
}

func isDir(child os.DirEntry, path string) bool {
	if child.IsDir() {
		return true
	}
	if child.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
