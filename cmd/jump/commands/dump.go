// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/jump/cmd/jump/cli"
	"github.com/bureau-foundation/jump/lib/codec"
	"github.com/bureau-foundation/jump/lib/project"
)

// Dump formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatCBOR = "cbor"
)

// dump prints the configuration path and the resolved registry. CBOR
// written to a terminal is shown in diagnostic notation; written
// anywhere else it is the raw encoding alone, without the path line.
func dump(w io.Writer, path string, projects *project.Registry, format string, color, terminal bool) error {
	document := projects.Document()

	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(document, "", "    ")
		if err != nil {
			return fmt.Errorf("encoding registry: %w", err)
		}
		fmt.Fprintln(w, path)
		return cli.Highlight(w, string(data)+"\n", "json", color)

	case formatYAML:
		data, err := yaml.Marshal(document)
		if err != nil {
			return fmt.Errorf("encoding registry: %w", err)
		}
		fmt.Fprintln(w, path)
		return cli.Highlight(w, string(data), "yaml", color)

	case formatCBOR:
		data, err := codec.Marshal(document)
		if err != nil {
			return fmt.Errorf("encoding registry: %w", err)
		}
		if !terminal {
			_, err := w.Write(data)
			return err
		}
		text, err := codec.Diagnose(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, path)
		fmt.Fprintln(w, text)
		return nil

	default:
		return fmt.Errorf("unknown dump format %q (want %s, %s or %s)", format, formatJSON, formatYAML, formatCBOR)
	}
}

func sorted(names []string) []string {
	names = slices.Clone(names)
	slices.Sort(names)
	return names
}
