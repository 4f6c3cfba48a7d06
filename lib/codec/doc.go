// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds jump's CBOR encoding configuration.
//
// The only CBOR jump produces is the registry dump ("jump -d --format
// cbor"), which other tools diff and cache. The encoder therefore uses
// Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys,
// smallest integer encoding, no indefinite-length items. The same
// registry always produces identical bytes.
//
//	data, err := codec.Marshal(registry.Document())
//	text, err := codec.Diagnose(data)
//
// Decoding targets map[string]any for untyped values so a dump read
// back matches what the JSON and YAML loaders produce.
package codec
