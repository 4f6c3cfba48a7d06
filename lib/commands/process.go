// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bureau-foundation/jump/lib/proc"
	"github.com/bureau-foundation/jump/lib/project"
)

// startedLayout formats process start times: day/month/year.
const startedLayout = "02/01/2006 15:04:05"

const noProcesses = "No processes found"

// kill terminates the servers, explorers and designers running in the
// version directory. Flag arguments select kinds: -s servers,
// -e explorers, -d designers, combinable as -se. -a kills every kind
// everywhere. No arguments kills every kind in the directory.
func (d Deps) kill(ctx context.Context, run *project.RunContext) error {
	processes, err := d.Lister.List()
	if err != nil {
		return err
	}

	dir := run.Path
	var kinds []proc.Kind
	if len(run.Args) == 0 {
		kinds = proc.Kinds
	} else {
		flags := killFlags(run.Args)
		switch {
		case strings.Contains(flags, "a"):
			kinds, dir = proc.Kinds, ""
		default:
			for _, kind := range proc.Kinds {
				if strings.Contains(flags, killFlag(kind)) {
					kinds = append(kinds, kind)
				}
			}
		}
	}

	killed := 0
	for _, kind := range kinds {
		for _, process := range proc.Filter(processes, dir, kind) {
			fmt.Fprintf(run.Out, "Kill %s #%d\n", strings.ToLower(kind.String()), process.PID)
			if err := d.Killer.Kill(process.PID); err != nil {
				return err
			}
			killed++
		}
	}
	if killed == 0 {
		fmt.Fprintln(run.Out, noProcesses)
	}
	return nil
}

// killFlags collects the letters of every "-" argument, lowercased.
func killFlags(args []string) string {
	var flags strings.Builder
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			flags.WriteString(strings.ToLower(strings.TrimLeft(arg, "-")))
		}
	}
	return flags.String()
}

func killFlag(kind proc.Kind) string {
	return strings.ToLower(kind.String()[:1])
}

// processes lists the servers, explorers and designers running in the
// version directory, grouped by kind. A first argument starting with
// "a" lists them everywhere.
func (d Deps) processes(ctx context.Context, run *project.RunContext) error {
	processes, err := d.Lister.List()
	if err != nil {
		return err
	}

	dir := run.Path
	if len(run.Args) > 0 && strings.HasPrefix(strings.ToLower(run.Args[0]), "a") {
		dir = ""
	}

	found := false
	for _, kind := range proc.Kinds {
		matched := proc.Filter(processes, dir, kind)
		if len(matched) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(run.Out, "%s (%d):\n", kind, len(matched))
		for _, process := range matched {
			fmt.Fprintf(run.Out, "    #%d, started: %s\n", process.PID, process.Started.Format(startedLayout))
		}
	}
	if !found {
		fmt.Fprintln(run.Out, noProcesses)
	}
	return nil
}
