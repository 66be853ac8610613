// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and normalises it to NFC so that comparisons are
// insensitive to case and to composed vs decomposed accents.
func Fold(s string) string {
	// A Caser is stateful; build one per call.
	return norm.NFC.String(cases.Lower(language.Und).String(s))
}

// TruncateWidth truncates s to at most maxWidth terminal columns, ending
// with "..." when something was cut and there is room for it.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to width terminal columns. Wider strings are
// returned unchanged.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// StringWidth returns the display width of s in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
