// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package svn

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bureau-foundation/jump/lib/clock"
)

const (
	// DefaultDays is the search window when the caller gives none.
	DefaultDays = 30

	// ReleaseMarker starts the commit message of every release.
	ReleaseMarker = "Release version "

	// Trunk is the branch that never has a release of its own.
	Trunk = "trunk"
)

var (
	// ErrNoRevision is returned when a search finds nothing.
	ErrNoRevision = errors.New("no matching revision found")

	// ErrTrunk is returned by lookups that only make sense on a release
	// branch.
	ErrTrunk = errors.New("call this in release versions, not trunk")
)

var (
	releasePattern      = regexp.MustCompile(regexp.QuoteMeta(ReleaseMarker) + `([\d.]+) `)
	lastNumberPattern   = regexp.MustCompile(`\.(\d+)$`)
	versionPathsPattern = regexp.MustCompile(`/dev/(.+?)/`)
)

// Client answers release questions about one project's repository.
type Client struct {
	runner Runner
	clock  clock.Clock
	devURL string
}

// NewClient returns a client for the repository whose branches live
// under devURL.
func NewClient(runner Runner, c clock.Clock, devURL string) *Client {
	return &Client{runner: runner, clock: c, devURL: strings.TrimRight(devURL, "/")}
}

// BranchURL returns the URL of a version branch.
func (c *Client) BranchURL(version string) string {
	return c.devURL + "/" + version
}

// Log runs "svn log --xml <args> <url>" and parses the result.
func (c *Client) Log(ctx context.Context, url string, args ...string) ([]Revision, error) {
	fullArgs := append([]string{"log", "--xml"}, args...)
	fullArgs = append(fullArgs, url)
	output, err := c.runner.Run(ctx, fullArgs...)
	if err != nil {
		return nil, err
	}
	return ParseLog(output)
}

// dateBound formats the day days before today as an svn revision
// date: "{2026-01-31}".
func (c *Client) dateBound(days int) string {
	return "{" + c.clock.Now().AddDate(0, 0, -days).Format(time.DateOnly) + "}"
}

// LastReleaseVersion returns the newest release of version found
// walking back from startRevision ("HEAD" when empty) over the last
// days days.
func (c *Client) LastReleaseVersion(ctx context.Context, version, startRevision string, days int) (string, error) {
	if startRevision == "" {
		startRevision = "HEAD"
	}
	revisions, err := c.Log(ctx, c.BranchURL(version),
		"--search", ReleaseMarker,
		"--revision", startRevision+":"+c.dateBound(days),
	)
	if err != nil {
		return "", err
	}
	if len(revisions) == 0 {
		return "", ErrNoRevision
	}
	match := releasePattern.FindStringSubmatch(revisions[0].Message)
	if match == nil {
		return "", fmt.Errorf("no release version in message %q", revisions[0].Message)
	}
	return match[1], nil
}

// FindReleaseVersion returns the release that first shipped the newest
// commit on version matching text.
func (c *Client) FindReleaseVersion(ctx context.Context, text, version string, days int) (string, error) {
	if version == Trunk {
		return "", ErrTrunk
	}
	revisions, err := c.Log(ctx, c.BranchURL(version),
		"--search", text,
		"--revision", "HEAD:"+c.dateBound(days),
	)
	if err != nil {
		return "", err
	}
	if len(revisions) == 0 {
		return "", ErrNoRevision
	}

	last, err := c.LastReleaseVersion(ctx, version, strconv.Itoa(revisions[0].Number), days)
	if err != nil {
		return "", err
	}
	// The release before the commit is the last one found; the commit
	// shipped in the one after it.
	return NextRelease(last), nil
}

// NextRelease increments the last number of a dotted version:
// "3.2.35.10.10" gives "3.2.35.10.11".
func NextRelease(version string) string {
	return lastNumberPattern.ReplaceAllStringFunc(version, func(suffix string) string {
		number, _ := strconv.Atoi(suffix[1:])
		return "." + strconv.Itoa(number+1)
	})
}

// SearchVersions returns the branches touched by commits matching text
// in the last days days, in first-seen order.
func (c *Client) SearchVersions(ctx context.Context, text string, days int) ([]string, error) {
	revisions, err := c.Log(ctx, c.devURL,
		"--verbose",
		"--search", text,
		"--revision", c.dateBound(days)+":HEAD",
	)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, revision := range revisions {
		for _, change := range revision.Paths {
			match := versionPathsPattern.FindStringSubmatch(change.Path)
			if match != nil && !slices.Contains(versions, match[1]) {
				versions = append(versions, match[1])
			}
		}
	}
	return versions, nil
}

// BranchAge describes when a version branch was created.
type BranchAge struct {
	Age   time.Duration
	First Revision
}

// Age returns the age of a version branch, measured from its first
// revision.
func (c *Client) Age(ctx context.Context, version string) (BranchAge, error) {
	revisions, err := c.Log(ctx, c.BranchURL(version), "-r", "1:HEAD", "--limit=1")
	if err != nil {
		return BranchAge{}, err
	}
	if len(revisions) == 0 {
		return BranchAge{}, ErrNoRevision
	}
	first := revisions[0]
	return BranchAge{Age: clock.Since(c.clock, first.Date), First: first}, nil
}
