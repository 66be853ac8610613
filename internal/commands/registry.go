// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// WildcardKey is the key of the catch-all command consulted only when no
// other rule matched.
const WildcardKey = "*"

// SearchPlaceholder is replaced by the encoded query in search templates.
const SearchPlaceholder = "{}"

var (
	// ErrDuplicateKey is returned when two commands share a key.
	ErrDuplicateKey = errors.New("duplicate command key")

	// ErrMultipleWildcards is returned when more than one "*" command exists.
	ErrMultipleWildcards = errors.New("more than one wildcard command")
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is a configured shortcut. Commands are loaded once from
// configuration and never modified afterwards.
type Command struct {
	// Key is what the user types (e.g., "g")
	Key string `toml:"key" json:"key" yaml:"key"`

	// Name is the human readable label (e.g., "GitHub")
	Name string `toml:"name" json:"name" yaml:"name"`

	// URL is the base URL opened when the key matches on its own
	URL string `toml:"url" json:"url" yaml:"url"`

	// Search is an optional template appended to URL, with "{}" standing
	// in for the encoded query (e.g., "/search?q={}")
	Search string `toml:"search,omitempty" json:"search,omitempty" yaml:"search,omitempty"`

	// Category groups commands for "<n>!" launches
	Category string `toml:"category,omitempty" json:"category,omitempty" yaml:"category,omitempty"`

	// QuickLaunch marks the command as part of the "q!" set
	QuickLaunch bool `toml:"quick_launch,omitempty" json:"quick_launch,omitempty" yaml:"quick_launch,omitempty"`

	// Color is a display accent for hosts that render one
	Color string `toml:"color,omitempty" json:"color,omitempty" yaml:"color,omitempty"`
}

// SupportsSearch reports whether the command accepts "key:term" input.
func (c Command) SupportsSearch() bool {
	return c.Search != ""
}

// IsWildcard reports whether c is the catch-all command.
func (c Command) IsWildcard() bool {
	return c.Key == WildcardKey
}

// =============================================================================
// COMMAND TABLE
// =============================================================================

// Table is an ordered list of commands. Order only matters for the
// wildcard, which should be defined last.
type Table []Command

// Get returns the command registered under key.
func (t Table) Get(key string) (Command, bool) {
	for _, cmd := range t {
		if cmd.Key == key {
			return cmd, true
		}
	}
	return Command{}, false
}

// Keys returns every key in table order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, cmd := range t {
		keys = append(keys, cmd.Key)
	}
	return keys
}

// Categories returns the distinct non-empty categories in order of first
// appearance. Category launches index into this slice.
func (t Table) Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, cmd := range t {
		if cmd.Category == "" || seen[cmd.Category] {
			continue
		}
		seen[cmd.Category] = true
		categories = append(categories, cmd.Category)
	}
	return categories
}

// ByCategory returns commands grouped by category. Commands without a
// category are grouped under "General".
func (t Table) ByCategory() map[string][]Command {
	result := make(map[string][]Command)
	for _, cmd := range t {
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// InCategory returns the commands of the category at the zero-based index
// into Categories. An out of range index yields nil.
func (t Table) InCategory(index int) []Command {
	categories := t.Categories()
	if index < 0 || index >= len(categories) {
		return nil
	}
	var cmds []Command
	for _, cmd := range t {
		if cmd.Category == categories[index] {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// QuickLaunch returns the commands flagged for "q!".
func (t Table) QuickLaunch() []Command {
	var cmds []Command
	for _, cmd := range t {
		if cmd.QuickLaunch {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Wildcard returns the catch-all command, if one is configured.
func (t Table) Wildcard() (Command, bool) {
	return t.Get(WildcardKey)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the table invariants: non-empty unique keys, at most one
// wildcard, parseable http(s) base URLs and search templates that carry
// the placeholder.
func (t Table) Validate() error {
	var errs []error
	seen := make(map[string]int)
	wildcards := 0

	for i, cmd := range t {
		where := fmt.Sprintf("commands[%d]", i)
		if cmd.Key != "" {
			where = fmt.Sprintf("commands[%d] (%s)", i, cmd.Key)
		}

		if strings.TrimSpace(cmd.Key) == "" {
			errs = append(errs, fmt.Errorf("%s: key is empty", where))
		} else if strings.ContainsAny(cmd.Key, " \t\n") {
			errs = append(errs, fmt.Errorf("%s: key contains whitespace", where))
		}

		if prev, ok := seen[cmd.Key]; ok && cmd.Key != "" {
			errs = append(errs, fmt.Errorf("%s: %w (first defined at commands[%d])", where, ErrDuplicateKey, prev))
		} else {
			seen[cmd.Key] = i
		}

		if cmd.IsWildcard() {
			wildcards++
			if wildcards > 1 {
				errs = append(errs, fmt.Errorf("%s: %w", where, ErrMultipleWildcards))
			}
			if !cmd.SupportsSearch() {
				errs = append(errs, fmt.Errorf("%s: wildcard command needs a search template", where))
			}
		}

		u, err := url.Parse(cmd.URL)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: invalid url %q: %w", where, cmd.URL, err))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, fmt.Errorf("%s: url %q must use http or https", where, cmd.URL))
		case u.Host == "":
			errs = append(errs, fmt.Errorf("%s: url %q has no host", where, cmd.URL))
		}

		if cmd.Search != "" && !strings.Contains(cmd.Search, SearchPlaceholder) {
			errs = append(errs, fmt.Errorf("%s: search template %q lacks %s", where, cmd.Search, SearchPlaceholder))
		}
	}

	return errors.Join(errs...)
}
