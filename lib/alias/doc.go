// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package alias maps a user-typed token to exactly one canonical name
// from a candidate set.
//
// [Resolve] tolerates three kinds of sloppiness, tried in order:
//
//  1. Case: "SERVER" matches "server". Comparison uses Unicode case
//     folding, so Cyrillic input folds the same way Latin input does.
//  2. Abbreviation: "ser" matches "server" when no other candidate
//     starts with "ser". An exact match always wins over prefix
//     matches, so with candidates "run" and "run2" the token "run"
//     resolves to "run".
//  3. Wrong keyboard layout: every candidate is also compared through
//     [layout.Translate], so "ыукмук" (and "ыук") resolve to "server".
//
// Failures are typed. [UnknownError] means nothing matched and carries
// the sorted candidate list plus fuzzy-ranked suggestions;
// [AmbiguousError] means a prefix matched two or more candidates and
// carries those variants so the caller can ask for a longer token
// instead of reporting "not found".
//
// Resolution is deterministic: for a fixed candidate set the same
// token always yields the same name or the same error.
package alias
