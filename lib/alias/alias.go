// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package alias

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/bureau-foundation/jump/lib/layout"
)

// entry pairs the form a token is compared against with the canonical
// candidate it stands for. For the transliterated pass, key is the
// candidate as typed on the other keyboard layout. key holds the
// folded form once [foldKeys] has run.
type entry struct {
	key       string
	canonical string
}

// Resolve returns the canonical candidate that token identifies.
//
// The direct pass (candidates as written) runs first; the
// transliterated pass runs only when the direct pass found nothing.
// Within a pass an exact case-insensitive match wins, then a unique
// prefix match. A prefix shared by two or more candidates fails with
// [*AmbiguousError] immediately. An empty token never matches.
func Resolve(kind Kind, token string, candidates []string) (string, error) {
	folded := fold(token)
	if folded == "" {
		return "", newUnknownError(kind, token, candidates)
	}

	direct := make([]entry, 0, len(candidates))
	shadow := make([]entry, 0, len(candidates))
	for _, candidate := range candidates {
		direct = append(direct, entry{key: candidate, canonical: candidate})
		shadow = append(shadow, entry{key: layout.Translate(candidate), canonical: candidate})
	}

	for _, pass := range [][]entry{direct, shadow} {
		foldKeys(pass)
		match, variants := lookup(folded, pass)
		if match != "" {
			return match, nil
		}
		if len(variants) > 1 {
			return "", &AmbiguousError{Kind: kind, Token: token, Variants: variants}
		}
	}

	return "", newUnknownError(kind, token, candidates)
}

// lookup applies exact-then-prefix matching to one pass. It returns
// the match, or the sorted prefix variants when there is more than one.
func lookup(folded string, entries []entry) (string, []string) {
	for _, candidate := range entries {
		if candidate.key == folded {
			return candidate.canonical, nil
		}
	}

	var variants []string
	for _, candidate := range entries {
		if strings.HasPrefix(candidate.key, folded) && !slices.Contains(variants, candidate.canonical) {
			variants = append(variants, candidate.canonical)
		}
	}
	if len(variants) == 1 {
		return variants[0], nil
	}
	slices.Sort(variants)
	return "", variants
}

// foldKeys case-folds every key of a pass in place with one Caser.
func foldKeys(entries []entry) {
	caser := cases.Fold()
	for i := range entries {
		entries[i].key = caser.String(entries[i].key)
	}
}

// fold returns the Unicode case-folded form of s. A fresh Caser is
// created per call because cases.Caser carries state and is not safe
// for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
