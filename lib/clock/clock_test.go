// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFake(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := Fake(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", c.Now(), start)
	}
	c.Advance(90 * time.Minute)
	if got := Since(c, start); got != 90*time.Minute {
		t.Errorf("Since after Advance = %v, want 1h30m", got)
	}
	c.Set(start.AddDate(0, 0, -1))
	if got := Since(c, start); got != -24*time.Hour {
		t.Errorf("Since after Set = %v, want -24h", got)
	}
}

func TestReal(t *testing.T) {
	before := time.Now()
	now := Real().Now()
	if now.Before(before) {
		t.Errorf("Real().Now() = %v is before %v", now, before)
	}
}
