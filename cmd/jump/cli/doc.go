// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line plumbing for the jump binary.
//
// [Command] parses flags with pflag and hands the positional arguments
// to its Run function. Interspersed flags can be disabled so that
// everything after the first positional argument (such as the "-f" or
// "-se" arguments callbacks read) reaches Run untouched. Unknown flags
// get a "did you mean" suggestion computed by edit distance.
//
// The package also holds the terminal-facing helpers shared by the
// command implementations: [NewCommandLogger], [Styles] for colored
// hint and error lines, [Highlight] for dumped documents, and
// [WrapList] for width-aware name listings.
package cli
