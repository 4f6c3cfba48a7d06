// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Styles renders the user-facing error and hint lines. Colors are used
// only when the output is a terminal and the environment allows them
// (NO_COLOR, CLICOLOR_FORCE).
type Styles struct {
	Error lipgloss.Style
	Hint  lipgloss.Style
	Name  lipgloss.Style

	profile termenv.Profile
}

// NewStyles returns styles for output written to w.
func NewStyles(w io.Writer) Styles {
	profile := termenv.Ascii
	if IsTerminal(w) {
		profile = termenv.EnvColorProfile()
	}
	return NewStylesWithProfile(w, profile)
}

// NewStylesWithProfile returns styles forced to profile.
func NewStylesWithProfile(w io.Writer, profile termenv.Profile) Styles {
	// SetColorProfile pins the profile; without it the renderer
	// re-detects from the environment.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return Styles{
		Error:   renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Hint:    renderer.NewStyle().Foreground(lipgloss.Color("8")),
		Name:    renderer.NewStyle().Foreground(lipgloss.Color("6")),
		profile: profile,
	}
}

// Color reports whether the styles emit escape sequences.
func (s Styles) Color() bool {
	return s.profile != termenv.Ascii
}

// Highlight writes source to w, syntax-highlighted with the named
// chroma lexer when color is on.
func Highlight(w io.Writer, source, lexer string, color bool) error {
	if !color {
		_, err := io.WriteString(w, source)
		return err
	}
	return quick.Highlight(w, source, lexer, "terminal256", "monokai")
}

// WrapList joins items with ", " into lines no wider than width
// visible columns, each prefixed with indent. Escape sequences in
// styled items do not count towards the width.
func WrapList(items []string, indent string, width int) string {
	var lines []string
	line := indent
	lineWidth := ansi.StringWidth(indent)
	for i, item := range items {
		piece := item
		if i < len(items)-1 {
			piece += ","
		}
		pieceWidth := ansi.StringWidth(piece)
		if lineWidth > ansi.StringWidth(indent) && lineWidth+1+pieceWidth > width {
			lines = append(lines, line)
			line, lineWidth = indent, ansi.StringWidth(indent)
		}
		if lineWidth > ansi.StringWidth(indent) {
			line += " "
			lineWidth++
		}
		line += piece
		lineWidth += pieceWidth
	}
	if lineWidth > ansi.StringWidth(indent) {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
