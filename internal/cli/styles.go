// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for the sttp CLI commands.
//
// Colors are disabled for non-TTY output and when NO_COLOR is set.

package cli

import "github.com/charmbracelet/lipgloss"

func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// SectionStyle is used for category headers
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	// KeyStyle highlights command keys
	KeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// MutedStyle is used for secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// SuccessStyle is used for confirmations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// ErrorStyle is used for error lines
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// PromptStyle is used for the line prompt
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)
