// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodeResponse(t *testing.T) {
	var build struct {
		Result    *string `json:"result"`
		Timestamp int64   `json:"timestamp"`
	}
	body := strings.NewReader(`{"result":"SUCCESS","timestamp":1700000000000}`)
	if err := DecodeResponse(body, &build); err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if build.Result == nil || *build.Result != "SUCCESS" || build.Timestamp != 1700000000000 {
		t.Errorf("decoded %+v", build)
	}

	if err := DecodeResponse(strings.NewReader("<html>"), &build); err == nil {
		t.Error("expected an error for a non-JSON body")
	}
	if err := DecodeResponse(failReader{}, &build); err == nil {
		t.Error("expected the read error to propagate")
	}
}

func TestErrorBody(t *testing.T) {
	if got := ErrorBody(strings.NewReader("not found")); got != "not found" {
		t.Errorf("ErrorBody = %q", got)
	}
	long := bytes.Repeat([]byte("x"), 2000)
	if got := ErrorBody(bytes.NewReader(long)); len(got) != 512 {
		t.Errorf("ErrorBody length = %d, want 512", len(got))
	}
	if got := ErrorBody(failReader{}); got != "" {
		t.Errorf("ErrorBody of failing reader = %q, want empty", got)
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}
