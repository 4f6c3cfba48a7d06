// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bureau-foundation/jump/lib/project"
)

// runPath launches the single file under the version directory that
// matches the glob in the first argument.
func (d Deps) runPath(ctx context.Context, run *project.RunContext) error {
	if len(run.Args) == 0 {
		fmt.Fprintln(run.Out, "File mask required")
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(run.Path, run.Args[0]))
	if err != nil {
		return fmt.Errorf("file mask %q: %w", run.Args[0], err)
	}
	switch len(matches) {
	case 0:
		fmt.Fprintln(run.Out, "File not found")
		return nil
	case 1:
		fmt.Fprintf(run.Out, "Run: %s\n", matches[0])
		return d.Launcher.Launch(ctx, matches[0])
	default:
		fmt.Fprintf(run.Out, "File mask must match one file.\nFound (%d):\n", len(matches))
		for _, match := range matches {
			fmt.Fprintf(run.Out, "    %s\n", match)
		}
		return nil
	}
}

// managerRoot maps the manager launcher ("<root>/manager/bin/manager.cmd")
// to the install root holding the distribution and upgrade directories.
func managerRoot(path string) string {
	return filepath.Dir(filepath.Dir(filepath.Dir(path)))
}

// managerUp moves the distribution archives into the manager's upgrade
// directory, replacing files of the same name.
func (d Deps) managerUp(ctx context.Context, run *project.RunContext) error {
	root := managerRoot(run.Path)
	from := filepath.Join(root, "radix_manager", "distrib")
	to := filepath.Join(root, "optt_manager", "upgrades")

	archives, err := findArchives(from)
	if err != nil {
		return err
	}
	if len(archives) == 0 {
		fmt.Fprintf(run.Out, "No files found in %s\n", from)
		return nil
	}

	if err := os.MkdirAll(to, 0o755); err != nil {
		return err
	}
	fmt.Fprintf(run.Out, "Moving files to %s:\n", to)
	for _, archive := range archives {
		name := filepath.Base(archive)
		fmt.Fprintf(run.Out, "    File: %s\n", name)

		target := filepath.Join(to, name)
		if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := os.Rename(archive, target); err != nil {
			return err
		}
	}
	return nil
}

// managerClean deletes the archives the manager backed up during its
// last upgrade.
func (d Deps) managerClean(ctx context.Context, run *project.RunContext) error {
	from := filepath.Join(managerRoot(run.Path), "optt_manager", "upgrades.backup")

	archives, err := findArchives(from)
	if err != nil {
		return err
	}
	if len(archives) == 0 {
		fmt.Fprintf(run.Out, "No files found in %s\n", from)
		return nil
	}

	fmt.Fprintf(run.Out, "Deleting files from %s:\n", from)
	for _, archive := range archives {
		fmt.Fprintf(run.Out, "    File: %s\n", filepath.Base(archive))
		if err := os.Remove(archive); err != nil {
			return err
		}
	}
	return nil
}

// findArchives returns every .zip file below dir, in lexical order. A
// missing dir holds no archives.
func findArchives(dir string) ([]string, error) {
	var archives []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(path), ".zip") {
			archives = append(archives, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", dir, err)
	}
	return archives, nil
}
