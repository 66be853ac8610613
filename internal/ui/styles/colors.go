// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Palette is the set of colors a Theme renders with.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Selection  lipgloss.Color
	Error      lipgloss.Color
}

// DarkPalette - near-black background, light gray text
var DarkPalette = Palette{
	Background: "#101010",
	Foreground: "#d4d4d4",
	Muted:      "#6c6c6c",
	Accent:     "#4285F4",
	Border:     "#2a2a2a",
	Selection:  "#262626",
	Error:      "#FB7185",
}

// LightPalette - white background, black text
var LightPalette = Palette{
	Background: "#ffffff",
	Foreground: "#000000",
	Muted:      "#8a8a8a",
	Accent:     "#1a73e8",
	Border:     "#e0e0e0",
	Selection:  "#ececec",
	Error:      "#E11D48",
}

// Inverted swaps background and foreground. Accent colors are kept.
func (p Palette) Inverted() Palette {
	p.Background, p.Foreground = p.Foreground, p.Background
	p.Selection, p.Border = p.Border, p.Selection
	return p
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators are ASCII markers shown next to status messages so they
// read without color.
var StatusIndicators = struct {
	Success string
	Error   string
	Info    string
}{
	Success: "[OK]",
	Error:   "[X]",
	Info:    "[i]",
}
