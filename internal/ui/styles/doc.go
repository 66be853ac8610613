// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling of the sttp startpage.

# Palettes (colors.go)

Two palettes mirror the browser startpage:

	DarkPalette  - #101010 background, #d4d4d4 text
	LightPalette - #ffffff background, #000000 text

Palette.Inverted swaps background and foreground for the "invert!" toggle.

# Theme System (theme.go)

A Theme resolves a configured mode to a palette and builds the lip gloss
styles the startpage renders with:

	theme := styles.NewTheme("auto", false)
	if theme.IsDark {
		// Dark terminal detected
	}
	inverted := theme.WithInverted(true)

Auto mode asks termenv whether the terminal background is dark.
*/
package styles
