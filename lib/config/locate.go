// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// FileNames are the configuration file names searched beside the
// executable and in the XDG config directories, in order.
var FileNames = []string{"jump.json", "jump.jsonc", "jump.yaml", "jump.yml"}

// ErrNotFound is returned by [Locate] when no configuration file was
// given and none was found in the search locations.
var ErrNotFound = errors.New("no configuration file found")

// Locate returns the path of the configuration file to load. explicit
// is the --config flag value, fromEnv the JUMP_CONFIG value, and
// executable the path of the running binary (os.Executable); any of
// them may be empty.
func Locate(explicit, fromEnv, executable string) (string, error) {
	for _, given := range []struct{ source, path string }{
		{"--config", explicit},
		{"JUMP_CONFIG", fromEnv},
	} {
		if given.path == "" {
			continue
		}
		path := ExpandPath(given.path)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file from %s: %w", given.source, err)
		}
		return path, nil
	}

	if executable != "" {
		directory := filepath.Dir(executable)
		for _, name := range FileNames {
			path := filepath.Join(directory, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	for _, name := range FileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join("jump", name)); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w (set JUMP_CONFIG, pass --config, or create %s)",
		ErrNotFound, filepath.Join(xdg.ConfigHome, "jump", FileNames[0]))
}
