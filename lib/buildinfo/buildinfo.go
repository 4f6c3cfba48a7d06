// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package buildinfo reports the version of the jump binary.
//
// Release builds inject the values with -ldflags:
//
//	go build -ldflags "-X github.com/bureau-foundation/jump/lib/buildinfo.Version=1.2.0" ./cmd/jump
//
// Builds without ldflags fall back to the VCS stamp the Go toolchain
// embeds (vcs.revision, vcs.modified, vcs.time).
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags at build time.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildTime = ""
)

// Stamp is the resolved build description.
type Stamp struct {
	Version string
	Commit  string
	Dirty   bool
	Time    string
}

// Read returns the build stamp, preferring ldflags values over the
// embedded VCS settings.
func Read() Stamp {
	stamp := Stamp{Version: Version, Commit: GitCommit, Time: BuildTime}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return stamp
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if stamp.Commit == "" {
				stamp.Commit = setting.Value
			}
		case "vcs.modified":
			stamp.Dirty = setting.Value == "true"
		case "vcs.time":
			if stamp.Time == "" {
				stamp.Time = setting.Value
			}
		}
	}
	return stamp
}

// String formats the stamp as "1.2.0 (abc1234-dirty, 2026-01-02T...)".
func (s Stamp) String() string {
	commit := s.Commit
	if commit == "" {
		commit = "unknown"
	} else if len(commit) > 12 {
		commit = commit[:12]
	}
	if s.Dirty {
		commit += "-dirty"
	}
	when := s.Time
	if when == "" {
		when = "unknown"
	}
	return fmt.Sprintf("%s (%s, %s)", s.Version, commit, when)
}

// Full returns the stamp with the Go version and platform.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Read(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
