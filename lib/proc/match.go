// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package proc

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Kind is the role of a matched process.
type Kind int

const (
	Server Kind = iota
	Explorer
	Designer
)

// Kinds lists every kind in report order.
var Kinds = []Kind{Server, Explorer, Designer}

func (k Kind) String() string {
	switch k {
	case Server:
		return "Server"
	case Explorer:
		return "Explorer"
	case Designer:
		return "Designer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Main classes on a process command line.
const (
	ServerClass   = "org.radixware.kernel.server.Server"
	ExplorerClass = "org.radixware.kernel.explorer.Explorer"
	designerName  = "designer"
)

// Is reports whether p is a process of kind k.
func (k Kind) Is(p Process) bool {
	switch k {
	case Server:
		return slices.Contains(p.Cmdline, ServerClass)
	case Explorer:
		return slices.Contains(p.Cmdline, ExplorerClass)
	case Designer:
		return strings.HasPrefix(p.Name, designerName)
	default:
		return false
	}
}

// Classify returns the kind of p, if it has one.
func Classify(p Process) (Kind, bool) {
	for _, kind := range Kinds {
		if kind.Is(p) {
			return kind, true
		}
	}
	return 0, false
}

// Within reports whether p is a Java process or a designer whose
// working directory is dir or below it. An empty dir matches
// everywhere.
func Within(p Process, dir string) bool {
	if !strings.Contains(p.Name, "java") && !Designer.Is(p) {
		return false
	}
	if dir == "" {
		return true
	}
	if p.Cwd == "" {
		return false
	}
	relative, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(p.Cwd))
	return err == nil && relative != ".." && !strings.HasPrefix(relative, ".."+string(filepath.Separator))
}

// Filter returns the processes in dir (see [Within]) of the given
// kind.
func Filter(processes []Process, dir string, kind Kind) []Process {
	var matched []Process
	for _, process := range processes {
		if Within(process, dir) && kind.Is(process) {
			matched = append(matched, process)
		}
	}
	return matched
}
