// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bureau-foundation/jump/cmd/jump/cli"
	"github.com/bureau-foundation/jump/lib/dispatch"
	"github.com/bureau-foundation/jump/lib/project"
)

// traceHint follows a short error message.
const traceHint = "Repeat with -e flag to see the error with trace"

// report prints err for the user and returns the exit error main
// should end with. A field that is missing or not allowed is followed
// by the values the project supports. With trace set, every layer of
// the wrap chain is printed.
func report(w io.Writer, styles cli.Styles, projects *project.Registry, err error, trace bool) error {
	fmt.Fprintln(w, styles.Error.Render(err.Error()))

	var availability *dispatch.AvailabilityError
	if errors.As(err, &availability) && projects != nil {
		if p, ok := projects.Project(availability.Command.Name); ok {
			if hint := supportedHint(p); hint != "" {
				fmt.Fprintln(w, styles.Hint.Render(hint))
				return &cli.ExitError{Code: 1}
			}
		}
	}

	if trace {
		for depth, layer := 1, errors.Unwrap(err); layer != nil; depth, layer = depth+1, errors.Unwrap(layer) {
			fmt.Fprintf(w, "%s%T: %v\n", strings.Repeat("  ", depth), layer, layer)
		}
	} else {
		fmt.Fprintln(w, styles.Hint.Render(traceHint))
	}
	return &cli.ExitError{Code: 1}
}

// supportedHint lists the versions a project accepts, or its actions
// when it takes no version.
func supportedHint(p *project.Project) string {
	if p.Options.Version != project.Prohibited {
		return "Supported versions: " + strings.Join(sorted(p.Versions.Names()), ", ")
	}
	if p.Options.Action != project.Prohibited {
		return "Supported actions: " + strings.Join(p.ActionNames(), ", ")
	}
	return ""
}
