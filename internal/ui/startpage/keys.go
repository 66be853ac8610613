// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package startpage

import "github.com/charmbracelet/bubbles/key"

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the startpage.
type KeyMap struct {
	Submit   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Complete key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "go"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("Down", "next suggestion"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("Up", "previous suggestion"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "complete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Complete, k.Clear, k.Quit}
}

// FullHelp returns all bindings in groups.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete},
		{k.Next, k.Prev},
		{k.Clear, k.Quit},
	}
}
