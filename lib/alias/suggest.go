// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package alias

import (
	"sort"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/jump/lib/layout"
)

const maxSuggestions = 3

// Suggest ranks candidates by fzf fuzzy-match score against token and
// returns at most limit of them, best first. Each candidate is scored
// both as written and through [layout.Translate], keeping the better
// score, so a token typed on the wrong layout still finds its
// neighbours. Candidates that do not contain the token's characters in
// order are dropped.
func Suggest(token string, candidates []string, limit int) []string {
	pattern := []rune(fold(token))
	if len(pattern) == 0 || limit <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score int
	}

	slab := util.MakeSlab(100*1024, 2048)
	var ranked []scored
	for _, candidate := range candidates {
		best := 0
		for _, form := range []string{candidate, layout.Translate(candidate)} {
			chars := util.ToChars([]byte(form))
			result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, slab)
			if result.Start >= 0 && result.Score > best {
				best = result.Score
			}
		}
		if best > 0 {
			ranked = append(ranked, scored{name: candidate, score: best})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	var result []string
	for i := 0; i < len(ranked) && i < limit; i++ {
		result = append(result, ranked[i].name)
	}
	return result
}
