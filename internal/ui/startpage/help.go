// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package startpage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/sttp/internal/commands"
)

// specialHelp lists the special tokens in display order.
var specialHelp = []struct {
	token string
	desc  string
}{
	{"?", "Show this help"},
	{"q!", "Open every quick launch command"},
	{"invert!", "Invert the colors"},
	{"keys!", "Show or hide command keys"},
	{"settings!", "Show the settings"},
	{"<n>!", "Open every command of category n"},
}

// HelpMarkdown builds the help text for table as markdown. Quick launch
// commands are starred and each category names its launch token.
func HelpMarkdown(table commands.Table, d commands.Delimiters) string {
	var b strings.Builder

	b.WriteString("# sttp\n\n")
	b.WriteString("## Special commands\n\n")
	for _, s := range specialHelp {
		fmt.Fprintf(&b, "- `%s` %s\n", s.token, s.desc)
	}

	byCat := table.ByCategory()
	for i, cat := range table.Categories() {
		fmt.Fprintf(&b, "\n## %s (`%d!` opens all)\n\n", cat, i+1)
		for _, cmd := range byCat[cat] {
			star := ""
			if cmd.QuickLaunch {
				star = " ⭐"
			}
			fmt.Fprintf(&b, "- `%s` %s%s\n", cmd.Key, cmd.Name, star)
		}
	}

	b.WriteString("\n## Examples\n\n")
	fmt.Fprintf(&b, "- `g%sreact` search GitHub for react\n", d.Search)
	fmt.Fprintf(&b, "- `r%sprogramming` go to r/programming\n", d.Path)
	fmt.Fprintf(&b, "- `so%sjavascript` search Stack Overflow\n", d.Search)
	b.WriteString("- `example.com` open a URL\n")
	b.WriteString("- anything else searches with the default engine\n")
	return b.String()
}

// RenderMarkdown renders md for the terminal. It returns md unchanged when
// glamour cannot render it.
func RenderMarkdown(md string, width int, dark bool) string {
	style := "light"
	if dark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// SettingsMarkdown wraps the exported settings JSON in a code block.
func SettingsMarkdown(settingsJSON []byte) string {
	return "# Settings\n\n```json\n" + strings.TrimSpace(string(settingsJSON)) + "\n```\n\nEdit them with `sttp config set` or `sttp config import`.\n"
}
