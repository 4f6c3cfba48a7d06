// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package svn

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/jump/lib/clock"
)

const devURL = "svn://repo/tx/dev"

// scriptedRunner answers each distinct argument line with canned XML
// and records the calls it saw.
type scriptedRunner struct {
	responses map[string]string
	calls     []string
}

func (r *scriptedRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	line := strings.Join(args, " ")
	r.calls = append(r.calls, line)
	response, ok := r.responses[line]
	if !ok {
		return nil, errors.New("unexpected svn call: " + line)
	}
	return []byte(response), nil
}

func logXML(entries ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<log>` + strings.Join(entries, "") + `</log>`
}

func entry(revision, author, date, message string, paths ...string) string {
	var pathXML string
	if len(paths) > 0 {
		pathXML = "<paths>"
		for _, path := range paths {
			pathXML += `<path prop-mods="false" text-mods="true" kind="file" action="M">` + path + `</path>`
		}
		pathXML += "</paths>"
	}
	return `<logentry revision="` + revision + `"><author>` + author + `</author><date>` + date +
		`</date>` + pathXML + `<msg>` + message + `</msg></logentry>`
}

func newTestClient(responses map[string]string) (*Client, *scriptedRunner) {
	runner := &scriptedRunner{responses: responses}
	now := clock.Fake(time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC))
	return NewClient(runner, now, devURL+"/"), runner
}

func TestParseLog(t *testing.T) {
	data := logXML(
		entry("305785", "alice", "2023-07-05T13:22:37.123456Z", "Release version 3.2.35.10 (base 305756)",
			"/tx/dev/3.2.35.10/src/a.java"),
	)
	revisions, err := ParseLog([]byte(data))
	if err != nil {
		t.Fatalf("ParseLog: %v", err)
	}
	if len(revisions) != 1 {
		t.Fatalf("got %d revisions, want 1", len(revisions))
	}
	revision := revisions[0]
	if revision.Number != 305785 || revision.Author != "alice" {
		t.Errorf("revision = %+v", revision)
	}
	wantDate := time.Date(2023, 7, 5, 13, 22, 37, 123456000, time.UTC)
	if !revision.Date.Equal(wantDate) {
		t.Errorf("Date = %v, want %v", revision.Date, wantDate)
	}
	wantPaths := []PathChange{{Path: "/tx/dev/3.2.35.10/src/a.java", Action: "M", Kind: "file", TextMods: true}}
	if !reflect.DeepEqual(revision.Paths, wantPaths) {
		t.Errorf("Paths = %+v, want %+v", revision.Paths, wantPaths)
	}

	if _, err := ParseLog([]byte("<log><logentry")); err == nil {
		t.Error("expected an error for truncated XML")
	}
	if _, err := ParseLog([]byte(logXML(entry("1", "a", "yesterday", "m")))); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestLastReleaseVersion(t *testing.T) {
	client, runner := newTestClient(map[string]string{
		"log --xml --search Release version  --revision HEAD:{2026-03-01} svn://repo/tx/dev/3.2.35.10": logXML(
			entry("900", "ci", "2026-03-20T10:00:00.000000Z", "Release version 3.2.35.10.10 (base 899)"),
			entry("800", "ci", "2026-03-10T10:00:00.000000Z", "Release version 3.2.35.10.9 (base 799)"),
		),
	})

	got, err := client.LastReleaseVersion(context.Background(), "3.2.35.10", "", DefaultDays)
	if err != nil {
		t.Fatalf("LastReleaseVersion: %v (calls %q)", err, runner.calls)
	}
	if got != "3.2.35.10.10" {
		t.Errorf("LastReleaseVersion = %q, want 3.2.35.10.10", got)
	}
}

func TestLastReleaseVersionErrors(t *testing.T) {
	client, _ := newTestClient(map[string]string{
		"log --xml --search Release version  --revision HEAD:{2026-03-24} svn://repo/tx/dev/trunk": logXML(),
		"log --xml --search Release version  --revision HEAD:{2026-03-30} svn://repo/tx/dev/trunk": logXML(
			entry("1", "ci", "2026-03-30T10:00:00Z", "merge of Release version notes"),
		),
	})

	if _, err := client.LastReleaseVersion(context.Background(), "trunk", "", 7); !errors.Is(err, ErrNoRevision) {
		t.Errorf("empty log error = %v, want ErrNoRevision", err)
	}
	if _, err := client.LastReleaseVersion(context.Background(), "trunk", "", 1); err == nil {
		t.Error("expected an error for a message without a version")
	}
}

func TestFindReleaseVersion(t *testing.T) {
	client, runner := newTestClient(map[string]string{
		"log --xml --search TXI-8197 --revision HEAD:{2026-03-01} svn://repo/tx/dev/3.2.34.10": logXML(
			entry("850", "bob", "2026-03-15T10:00:00Z", "TXI-8197 fix"),
		),
		"log --xml --search Release version  --revision 850:{2026-03-01} svn://repo/tx/dev/3.2.34.10": logXML(
			entry("840", "ci", "2026-03-14T10:00:00Z", "Release version 3.2.34.10.17 (base 839)"),
		),
	})

	got, err := client.FindReleaseVersion(context.Background(), "TXI-8197", "3.2.34.10", DefaultDays)
	if err != nil {
		t.Fatalf("FindReleaseVersion: %v (calls %q)", err, runner.calls)
	}
	if got != "3.2.34.10.18" {
		t.Errorf("FindReleaseVersion = %q, want 3.2.34.10.18", got)
	}

	if _, err := client.FindReleaseVersion(context.Background(), "TXI-8197", "trunk", DefaultDays); !errors.Is(err, ErrTrunk) {
		t.Errorf("trunk error = %v, want ErrTrunk", err)
	}
}

func TestNextRelease(t *testing.T) {
	tests := map[string]string{
		"3.2.35.10.10": "3.2.35.10.11",
		"3.2.35.10.9":  "3.2.35.10.10",
		"2.1":          "2.2",
		"trunk":        "trunk",
	}
	for input, want := range tests {
		if got := NextRelease(input); got != want {
			t.Errorf("NextRelease(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSearchVersions(t *testing.T) {
	client, runner := newTestClient(map[string]string{
		"log --xml --verbose --search ipetrash --revision {2026-03-01}:HEAD svn://repo/tx/dev": logXML(
			entry("10", "a", "2026-03-02T10:00:00Z", "x",
				"/tx/dev/trunk/src/a.java", "/tx/dev/3.2.36.10/src/a.java"),
			entry("11", "a", "2026-03-03T10:00:00Z", "y",
				"/tx/dev/trunk/src/b.java", "/tx/dev/3.2.35.10/src/b.java", "/tx/README"),
		),
	})

	got, err := client.SearchVersions(context.Background(), "ipetrash", DefaultDays)
	if err != nil {
		t.Fatalf("SearchVersions: %v (calls %q)", err, runner.calls)
	}
	want := []string{"trunk", "3.2.36.10", "3.2.35.10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchVersions = %v, want %v", got, want)
	}
}

func TestAge(t *testing.T) {
	client, _ := newTestClient(map[string]string{
		"log --xml -r 1:HEAD --limit=1 svn://repo/tx/dev/3.2.35.10": logXML(
			entry("305785", "alice", "2026-03-29T09:00:00Z", "Release version 3.2.35.10 (base 305756)"),
		),
	})

	age, err := client.Age(context.Background(), "3.2.35.10")
	if err != nil {
		t.Fatalf("Age: %v", err)
	}
	if age.Age != 48*time.Hour {
		t.Errorf("Age = %v, want 48h", age.Age)
	}
	if age.First.Number != 305785 || age.First.Author != "alice" {
		t.Errorf("First = %+v", age.First)
	}
}
