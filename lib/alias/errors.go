// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package alias

import (
	"fmt"
	"slices"
	"strings"
)

// Kind names what a token was supposed to identify. It selects the
// wording of error messages and lets callers branch on the failing
// field without string matching.
type Kind int

const (
	KindName Kind = iota
	KindAction
	KindVersion
	KindArg
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindAction:
		return "action"
	case KindVersion:
		return "version"
	case KindArg:
		return "argument"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// UnknownError reports a token that matched no candidate.
type UnknownError struct {
	Kind  Kind
	Token string

	// Supported is the full candidate list, sorted.
	Supported []string

	// Suggestions holds up to three candidates ranked by fuzzy
	// similarity to Token. Empty when nothing is remotely close.
	Suggestions []string
}

func (e *UnknownError) Error() string {
	message := fmt.Sprintf("unknown %s %q, supported: %s", e.Kind, e.Token, strings.Join(e.Supported, ", "))
	if len(e.Suggestions) > 0 {
		message += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, " or "))
	}
	return message
}

// AmbiguousError reports a token that is a prefix of several
// candidates.
type AmbiguousError struct {
	Kind  Kind
	Token string

	// Variants are the candidates the token matched, sorted.
	Variants []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous %s %q matches %s; be more specific",
		e.Kind, e.Token, strings.Join(e.Variants, ", "))
}

func newUnknownError(kind Kind, token string, candidates []string) *UnknownError {
	supported := slices.Clone(candidates)
	slices.Sort(supported)
	return &UnknownError{
		Kind:        kind,
		Token:       token,
		Supported:   supported,
		Suggestions: Suggest(token, candidates, maxSuggestions),
	}
}
