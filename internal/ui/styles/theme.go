// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme mode names accepted in configuration.
const (
	ModeDark  = "dark"
	ModeLight = "light"
	ModeAuto  = "auto"
)

// Theme holds the styled components of the startpage.
type Theme struct {
	// Mode as configured; IsDark is the resolved value
	Mode     string
	IsDark   bool
	Inverted bool
	Palette  Palette

	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// PAGE
	// ==========================================================================

	App   lipgloss.Style
	Clock lipgloss.Style
	Date  lipgloss.Style

	// ==========================================================================
	// INPUT AND SUGGESTIONS
	// ==========================================================================

	InputBox           lipgloss.Style
	InputPrompt        lipgloss.Style
	Status             lipgloss.Style
	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style
	SuggestionMatch    lipgloss.Style

	// ==========================================================================
	// COMMAND LIST
	// ==========================================================================

	Category lipgloss.Style
	Key      lipgloss.Style
	Name     lipgloss.Style

	// ==========================================================================
	// OVERLAYS AND MESSAGES
	// ==========================================================================

	HelpBox  lipgloss.Style
	Footer   lipgloss.Style
	ErrorMsg lipgloss.Style
	InfoMsg  lipgloss.Style
}

// NewTheme creates a theme for mode ("dark", "light" or "auto"). Auto asks
// the terminal for its background. Unknown modes fall back to dark.
func NewTheme(mode string, inverted bool) *Theme {
	mode = strings.ToLower(strings.TrimSpace(mode))
	var isDark bool
	switch mode {
	case ModeLight:
		isDark = false
	case ModeAuto:
		isDark = termenv.HasDarkBackground()
	default:
		mode = ModeDark
		isDark = true
	}

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		Inverted:     inverted,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// WithInverted returns a copy of the theme with inversion set to inverted.
func (t *Theme) WithInverted(inverted bool) *Theme {
	nt := &Theme{
		Mode:         t.Mode,
		IsDark:       t.IsDark,
		Inverted:     inverted,
		ColorProfile: t.ColorProfile,
		Width:        t.Width,
		Height:       t.Height,
	}
	nt.initStyles()
	return nt
}

// basePalette picks the palette for the resolved mode before inversion.
func (t *Theme) basePalette() Palette {
	if t.IsDark {
		return DarkPalette
	}
	return LightPalette
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	p := t.basePalette()
	if t.Inverted {
		p = p.Inverted()
	}
	t.Palette = p

	t.App = lipgloss.NewStyle().
		Background(p.Background).
		Foreground(p.Foreground)

	t.Clock = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true).
		Align(lipgloss.Center)

	t.Date = lipgloss.NewStyle().
		Foreground(p.Muted).
		Align(lipgloss.Center)

	// Input
	t.InputBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.Status = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	// Suggestions
	t.Suggestion = lipgloss.NewStyle().
		Foreground(p.Foreground).
		PaddingLeft(2)

	t.SuggestionSelected = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Selection).
		Bold(true).
		PaddingLeft(2)

	t.SuggestionMatch = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	// Command list
	t.Category = lipgloss.NewStyle().
		Foreground(p.Muted).
		Bold(true).
		Underline(true)

	t.Key = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.Name = lipgloss.NewStyle().
		Foreground(p.Foreground)

	// Overlays
	t.HelpBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)

	t.Footer = lipgloss.NewStyle().
		Foreground(p.Muted)

	t.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	t.InfoMsg = lipgloss.NewStyle().
		Foreground(p.Accent)
}

// CommandStyle colors a command name with its brand color, falling back
// to the plain name style.
func (t *Theme) CommandStyle(color string) lipgloss.Style {
	if color == "" {
		return t.Name
	}
	return t.Name.Foreground(lipgloss.Color(color))
}

// RenderError renders message with the error marker.
func (t *Theme) RenderError(message string) string {
	return t.ErrorMsg.Render(StatusIndicators.Error + " " + message)
}

// RenderInfo renders message with the info marker.
func (t *Theme) RenderInfo(message string) string {
	return t.InfoMsg.Render(StatusIndicators.Info + " " + message)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
