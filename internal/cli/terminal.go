// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the sttp CLI.
//
// The root command starts the startpage only when both stdin and stdout
// are terminals; piped use falls back to the line prompt. Colors follow
// NO_COLOR, FORCE_COLOR and TTY detection.

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether the full-screen startpage can run.
func IsInteractive() bool {
	return IsTTY() && IsStdoutTTY()
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width we'll use for wrapping
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth (80) if width cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	// colorsEnabled caches the color support decision
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled returns true if colored output should be used.
// Respects NO_COLOR environment variable and TTY detection.
// See https://no-color.org/ for the NO_COLOR specification.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		// NO_COLOR takes precedence (any non-empty value disables colors)
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}

		// FORCE_COLOR overrides TTY detection
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}

		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// GetColorProfile returns the appropriate termenv color profile.
// Returns Ascii (no colors) for non-TTY or when NO_COLOR is set.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
