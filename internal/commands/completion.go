// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jeranaias/sttp/internal/util"
)

// SearchMarker prefixes generic search phrase suggestions.
const SearchMarker = "🔍 "

// labelSeparator joins a key and its name in command suggestions.
const labelSeparator = " → "

// =============================================================================
// AUXILIARY DATA
// =============================================================================

// Auxiliary is the non-command data consulted by the suggester.
type Auxiliary struct {
	// PopularSites are bare domains offered by prefix and substring match
	PopularSites []string `toml:"popular_sites" json:"popular_sites" yaml:"popular_sites"`

	// KeyedHints maps a lower-case command key to curated deep links
	KeyedHints map[string][]string `toml:"keyed_hints" json:"keyed_hints" yaml:"keyed_hints"`

	// SearchPhrases are generic phrases offered with SearchMarker
	SearchPhrases []string `toml:"search_phrases" json:"search_phrases" yaml:"search_phrases"`
}

// =============================================================================
// SUGGESTER
// =============================================================================

// Suggester proposes completions for partially typed input. It is safe for
// concurrent use.
type Suggester struct {
	table Table
	aux   Auxiliary
}

// NewSuggester creates a suggester over table and aux.
func NewSuggester(table Table, aux Auxiliary) *Suggester {
	return &Suggester{table: table, aux: aux}
}

// Suggest is shorthand for NewSuggester(table, aux).Suggest(partial, limit).
func Suggest(partial string, table Table, aux Auxiliary, limit int) []string {
	return NewSuggester(table, aux).Suggest(partial, limit)
}

// Suggest returns at most limit distinct suggestions for partial. Earlier
// sources rank higher:
//
//  1. command keys starting with the input ("key → name")
//  2. curated hints registered for the input as a key
//  3. popular sites starting with the input
//  4. popular sites containing the input
//  5. command names containing the input
//  6. command domains starting with the input
//  7. search phrases starting with the input ("🔍 phrase")
func (s *Suggester) Suggest(partial string, limit int) []string {
	partial = strings.TrimSpace(partial)
	if partial == "" || limit <= 0 {
		return []string{}
	}
	q := util.Fold(partial)
	out := newOrderedSet(limit)

	keyMatched := make([]bool, len(s.table))
	for i, cmd := range s.table {
		if strings.HasPrefix(util.Fold(cmd.Key), q) {
			keyMatched[i] = true
			out.add(label(cmd))
		}
	}

	for _, hint := range s.aux.KeyedHints[q] {
		out.add(hint)
	}

	for _, site := range s.aux.PopularSites {
		if strings.HasPrefix(util.Fold(site), q) {
			out.add(site)
		}
	}
	for _, site := range s.aux.PopularSites {
		folded := util.Fold(site)
		if strings.Contains(folded, q) && !strings.HasPrefix(folded, q) {
			out.add(site)
		}
	}

	for i, cmd := range s.table {
		if !keyMatched[i] && strings.Contains(util.Fold(cmd.Name), q) {
			out.add(label(cmd))
		}
	}

	for _, cmd := range s.table {
		domain, ok := domainOf(cmd.URL)
		if ok && strings.HasPrefix(domain, q) {
			out.add(domain)
		}
	}

	for _, phrase := range s.aux.SearchPhrases {
		if strings.HasPrefix(util.Fold(phrase), q) {
			out.add(SearchMarker + phrase)
		}
	}

	return out.items
}

// label formats a command suggestion.
func label(cmd Command) string {
	return cmd.Key + labelSeparator + cmd.Name
}

// domainOf extracts the lower-case host of rawURL without a leading
// "www.". URLs without a scheme are read as https.
func domainOf(rawURL string) (string, bool) {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}
	return strings.TrimPrefix(host, "www."), true
}

// =============================================================================
// ORDERED SET
// =============================================================================

// orderedSet keeps first-insertion order and stops accepting at capacity.
type orderedSet struct {
	limit int
	seen  map[string]bool
	items []string
}

func newOrderedSet(limit int) *orderedSet {
	return &orderedSet{limit: limit, seen: make(map[string]bool), items: make([]string, 0, limit)}
}

func (o *orderedSet) add(s string) {
	if len(o.items) >= o.limit || o.seen[s] {
		return
	}
	o.seen[s] = true
	o.items = append(o.items, s)
}

// =============================================================================
// DISPLAY HELPERS
// =============================================================================

// Canonical returns the value a suggestion feeds back into the resolver:
// the key of a "key → name" label, or the phrase without SearchMarker.
func Canonical(suggestion string) string {
	suggestion = strings.TrimPrefix(suggestion, SearchMarker)
	if key, _, ok := strings.Cut(suggestion, labelSeparator); ok {
		return key
	}
	return suggestion
}

// Highlight wraps every case-insensitive occurrence of query in text with
// mark. It only affects display, never ranking.
func Highlight(text, query string, mark func(string) string) string {
	if query == "" || mark == nil {
		return text
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, mark)
}

// =============================================================================
// SUGGESTION NAVIGATION
// =============================================================================

// SuggestionState tracks the highlighted entry of a rendered suggestion
// list. Navigation wraps around at both ends.
type SuggestionState struct {
	// Items are the suggestions currently shown
	Items []string

	// Selected index (-1 for none)
	Selected int
}

// NewSuggestionState creates an empty state with nothing selected.
func NewSuggestionState() *SuggestionState {
	return &SuggestionState{Selected: -1}
}

// Update replaces the items and clears the selection.
func (ss *SuggestionState) Update(items []string) {
	ss.Items = items
	ss.Selected = -1
}

// Visible reports whether there is anything to show.
func (ss *SuggestionState) Visible() bool {
	return len(ss.Items) > 0
}

// Next moves the selection down.
func (ss *SuggestionState) Next() {
	if len(ss.Items) == 0 {
		return
	}
	if ss.Selected < len(ss.Items)-1 {
		ss.Selected++
	} else {
		ss.Selected = 0
	}
}

// Prev moves the selection up.
func (ss *SuggestionState) Prev() {
	if len(ss.Items) == 0 {
		return
	}
	if ss.Selected > 0 {
		ss.Selected--
	} else {
		ss.Selected = len(ss.Items) - 1
	}
}

// Accept returns the canonical value of the selected item.
func (ss *SuggestionState) Accept() (string, bool) {
	if ss.Selected < 0 || ss.Selected >= len(ss.Items) {
		return "", false
	}
	return Canonical(ss.Items[ss.Selected]), true
}

// Clear drops items and selection.
func (ss *SuggestionState) Clear() {
	ss.Items = nil
	ss.Selected = -1
}
