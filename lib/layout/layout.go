// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "strings"

// Key rows of the two layouts, position for position. Both strings
// must contain the same number of runes.
const (
	qwerty = "qwertyuiop[]asdfghjkl;'zxcvbnm,./`" +
		"QWERTYUIOP{}ASDFGHJKL:\"ZXCVBNM<>?~"
	jcuken = "йцукенгшщзхъфывапролджэячсмитьбю.ё" +
		"ЙЦУКЕНГШЩЗХЪФЫВАПРОЛДЖЭЯЧСМИТЬБЮ,Ё"
)

var table = buildTable(qwerty, jcuken)

func buildTable(from, to string) map[rune]rune {
	source := []rune(from)
	target := []rune(to)
	if len(source) != len(target) {
		panic("layout: key rows have different lengths")
	}
	result := make(map[rune]rune, len(source))
	for i, key := range source {
		result[key] = target[i]
	}
	return result
}

// Translate returns text as it would have been typed on the ЙЦУКЕН
// layout using the same physical keys. Translate("server") is
// "ыукмук"; Translate("3.2.1") is "3ю2ю1".
func Translate(text string) string {
	return strings.Map(func(r rune) rune {
		if mapped, ok := table[r]; ok {
			return mapped
		}
		return r
	}, text)
}
