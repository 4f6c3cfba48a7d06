// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package layout converts text typed with the wrong keyboard layout
// active. A user who meant to type "server" on a QWERTY layout but had
// the Russian ЙЦУКЕН layout selected produces "ыукмук"; [Translate]
// maps the QWERTY key positions onto their ЙЦУКЕН counterparts so that
// both spellings can be compared against the same candidate set.
//
// The table is fixed and positional: each QWERTY key maps to the
// Cyrillic letter printed on the same physical key. Characters outside
// the table (digits, spaces, Cyrillic letters) pass through unchanged.
package layout
