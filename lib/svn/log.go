// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package svn

import (
	"encoding/xml"
	"fmt"
	"time"
)

// Revision is one "svn log" entry.
type Revision struct {
	Number  int
	Author  string
	Date    time.Time
	Message string

	// Paths is filled only for verbose logs.
	Paths []PathChange
}

// PathChange is one changed path of a verbose log entry.
type PathChange struct {
	Path     string
	Action   string
	Kind     string
	TextMods bool
	PropMods bool
}

type logDocument struct {
	Entries []logEntry `xml:"logentry"`
}

type logEntry struct {
	Revision int       `xml:"revision,attr"`
	Author   string    `xml:"author"`
	Date     string    `xml:"date"`
	Message  string    `xml:"msg"`
	Paths    []logPath `xml:"paths>path"`
}

type logPath struct {
	Action   string `xml:"action,attr"`
	Kind     string `xml:"kind,attr"`
	TextMods string `xml:"text-mods,attr"`
	PropMods string `xml:"prop-mods,attr"`
	Path     string `xml:",chardata"`
}

// ParseLog decodes the output of "svn log --xml".
func ParseLog(data []byte) ([]Revision, error) {
	var document logDocument
	if err := xml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parsing svn log: %w", err)
	}

	revisions := make([]Revision, 0, len(document.Entries))
	for _, entry := range document.Entries {
		date, err := time.Parse(time.RFC3339Nano, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing svn log: revision %d: date %q: %w", entry.Revision, entry.Date, err)
		}
		revision := Revision{
			Number:  entry.Revision,
			Author:  entry.Author,
			Date:    date,
			Message: entry.Message,
		}
		for _, path := range entry.Paths {
			revision.Paths = append(revision.Paths, PathChange{
				Path:     path.Path,
				Action:   path.Action,
				Kind:     path.Kind,
				TextMods: path.TextMods == "true",
				PropMods: path.PropMods == "true",
			})
		}
		revisions = append(revisions, revision)
	}
	return revisions, nil
}
