// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil bounds HTTP response reads.
//
// CI servers answer build-status queries with small JSON documents, but
// a misconfigured URL can point at anything. Every body read here stops
// at MaxResponseSize.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxResponseSize caps response body reads at 16 MB.
const MaxResponseSize int64 = 16 << 20

// DecodeResponse reads a JSON response body, up to MaxResponseSize
// bytes, into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// ErrorBody returns at most the first 512 bytes of an error response
// for use in messages. Read failures yield whatever was read.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 512))
	return string(data)
}
