// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import "github.com/bureau-foundation/jump/cmd/jump/cli"

const description = `jump: run tools of a project version by short, fuzzy aliases.

Names, versions, and actions may be abbreviated to any unique prefix and
typed in either keyboard layout. A number stands for the project's base
version with that number; versions combine as lists (3,5,trunk) and
ranges (3-trunk). Actions combine with "+".

A failure is printed on stdout and jump exits with status 1. End the
command with -e to print the whole error chain; kill also reads a final
-e as "explorers".`

var usage = []string{
	"jump <name> <version> <action> [args...]   run an action of a version",
	"jump <name> <action> [args...]             run an action (default version)",
	"jump <name> <version>                      open the version directory",
	"jump <name>                                open the project or print its versions",
	"jump -d [--format json|yaml|cbor]          print the configuration",
}

var examples = []cli.Example{
	{Description: "Run the designer of trunk", Command: "jump optt trunk designer"},
	{Description: "Short version: 6 is the base version with 6, e.g. 3.2.6.10", Command: "jump tx 6 server"},
	{Description: "Several versions, then a range", Command: "jump tx 3.2.6,3.2.7,trunk server\n  jump tx 3.2.6-trunk server"},
	{Description: "Update a working copy even if the last build is broken", Command: "jump tx 35 update -f"},
	{Description: "Start the postgres server and an explorer", Command: "jump tx s+e pg"},
	{Description: "Release version that shipped a commit, for two versions", Command: "jump tx 34-35 find_release TXI-8197"},
	{Description: "Kill servers and explorers of trunk", Command: "jump optt kill -se"},
	{Description: "Show the full error chain of a failure", Command: "jump tx 99 server -e"},
}
