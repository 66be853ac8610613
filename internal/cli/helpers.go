// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared output helpers for CLI commands.

package cli

import (
	"github.com/jeranaias/sttp/internal/config"
	"github.com/jeranaias/sttp/internal/ui/startpage"
	"github.com/jeranaias/sttp/internal/ui/styles"
)

// helpMarkdown builds the help text for cfg's command table.
func helpMarkdown(cfg *config.Config) string {
	return startpage.HelpMarkdown(cfg.Commands, cfg.Delimiters())
}

// renderMarkdown renders markdown with glamour on a terminal and returns
// it unchanged when output is piped.
func renderMarkdown(cfg *config.Config, md string) string {
	if !ColorsEnabled() {
		return md
	}
	dark := styles.NewTheme(cfg.UI.Theme, false).IsDark
	return startpage.RenderMarkdown(md, GetTerminalWidth(), dark)
}
