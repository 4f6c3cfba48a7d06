// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Jump runs the tools of a project version from a short, fuzzy alias:
//
//	jump tx 35 server
//
// See "jump -h" for the grammar and examples.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/bureau-foundation/jump/cmd/jump/commands"
	"github.com/bureau-foundation/jump/lib/process"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	options, err := commands.DefaultOptions()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return commands.Root(options).Execute(ctx, os.Args[1:])
}
