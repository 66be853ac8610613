// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package startpage

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/ui/styles"
	"github.com/jeranaias/sttp/internal/util"
)

// View renders the page.
func (m Model) View() string {
	var body string
	if m.overlay != overlayNone {
		body = m.theme.HelpBox.Render(m.overlayBody) + "\n" +
			m.theme.Footer.Render("press any key to close")
	} else {
		body = m.viewPage()
	}

	page := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	return m.theme.App.Render(page)
}

// viewPage renders the clock, input, suggestions and command list.
func (m Model) viewPage() string {
	ui := m.app.Config().UI
	var sections []string

	sections = append(sections, m.theme.Clock.Render(FormatClock(m.now, ui)))
	if date := FormatDate(m.now, ui); date != "" {
		sections = append(sections, m.theme.Date.Render(date))
	}
	sections = append(sections, "", m.viewInput())

	if m.suggestions.Visible() {
		sections = append(sections, m.viewSuggestions())
	}

	if m.message != "" {
		if m.messageErr {
			sections = append(sections, m.theme.RenderError(m.message))
		} else {
			sections = append(sections, m.theme.RenderInfo(m.message))
		}
	}

	if m.showKeys && m.input.Value() == "" {
		sections = append(sections, "", m.viewCommands())
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// viewInput renders the input box with the resolution indicator.
func (m Model) viewInput() string {
	line := m.input.View()
	if m.status != "" {
		line += "  " + m.theme.Status.Render(m.status)
	}
	return m.theme.InputBox.Render(line)
}

// viewSuggestions renders the suggestion list with the typed text marked.
func (m Model) viewSuggestions() string {
	query := strings.TrimSpace(m.input.Value())
	mark := func(s string) string { return m.theme.SuggestionMatch.Render(s) }

	width := max(20, m.input.Width+4)
	lines := make([]string, 0, len(m.suggestions.Items))
	for i, item := range m.suggestions.Items {
		text := commands.Highlight(util.TruncateWidth(item, width), query, mark)
		if i == m.suggestions.Selected {
			lines = append(lines, m.theme.SuggestionSelected.Render(text))
		} else {
			lines = append(lines, m.theme.Suggestion.Render(text))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewCommands renders the command table in category columns.
func (m Model) viewCommands() string {
	table := m.app.Table()
	byCat := table.ByCategory()

	var columns []string
	for _, cat := range table.Categories() {
		cmds := byCat[cat]
		keyWidth := 0
		for _, cmd := range cmds {
			keyWidth = max(keyWidth, util.StringWidth(cmd.Key))
		}

		lines := []string{m.theme.Category.Render(cat)}
		for _, cmd := range cmds {
			lines = append(lines,
				m.theme.Key.Render(util.PadRight(cmd.Key, keyWidth))+" "+
					m.theme.CommandStyle(cmd.Color).Render(cmd.Name))
		}
		columns = append(columns, lipgloss.NewStyle().MarginRight(3).Render(
			lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return lipgloss.JoinVertical(lipgloss.Left, columns...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
