// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable source of the current time.
//
// Code that reports ages or builds date-bounded queries (svn log
// windows, CI build durations) takes a Clock instead of calling
// time.Now, so tests can pin "now":
//
//	c := clock.Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
//	client := svn.NewClient(runner, c, devURL)
//	c.Advance(24 * time.Hour)
package clock
