// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"reflect"
	"strings"
	"testing"
)

// =============================================================================
// SUGGESTER TESTS
// =============================================================================

func TestSuggest_DefaultData(t *testing.T) {
	table := DefaultTable()
	aux := DefaultAuxiliary()

	tests := []struct {
		partial string
		limit   int
		want    []string
	}{
		{
			partial: "g",
			limit:   8,
			want: []string{
				"g → GitHub", "gm → Gmail", "gd → Google Drive", "gh → GitHub Issues",
				"github.com/issues", "github.com/pulls", "gist.github.com", "github.com/trending",
			},
		},
		{
			partial: "yo",
			limit:   8,
			want:    []string{"youtube.com", "y → YouTube"},
		},
		{
			partial: "git",
			limit:   8,
			want:    []string{"github.com", "g → GitHub", "gh → GitHub Issues"},
		},
		{
			partial: "GIT",
			limit:   8,
			want:    []string{"github.com", "g → GitHub", "gh → GitHub Issues"},
		},
		{
			partial: "how",
			limit:   8,
			want:    []string{"🔍 how to"},
		},
		{
			partial: "mail",
			limit:   8,
			want:    []string{"gmail.com", "gm → Gmail", "mail.google.com"},
		},
		{
			partial: "tw",
			limit:   20,
			want: []string{
				"tw → Twitter", "twitter.com/home", "twitter.com/explore", "twitter.com/notifications",
				"twitter.com/messages", "twitter.com", "twitch.tv",
			},
		},
		{
			partial: "goo",
			limit:   20,
			want:    []string{"google.com", "drive.google.com", "gd → Google Drive", "cal → Google Calendar", "* → Google Search"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.partial, func(t *testing.T) {
			got := Suggest(tt.partial, table, aux, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q, %d)\n got  %q\n want %q", tt.partial, tt.limit, got, tt.want)
			}
		})
	}
}

func TestSuggest_EmptyInput(t *testing.T) {
	for _, partial := range []string{"", "   ", "\t"} {
		got := Suggest(partial, DefaultTable(), DefaultAuxiliary(), 8)
		if got == nil || len(got) != 0 {
			t.Errorf("Suggest(%q) = %q, want empty non-nil slice", partial, got)
		}
	}
}

func TestSuggest_NonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		if got := Suggest("g", DefaultTable(), DefaultAuxiliary(), limit); len(got) != 0 {
			t.Errorf("Suggest(g, %d) = %q, want empty", limit, got)
		}
	}
}

func TestSuggest_LimitAndUniqueness(t *testing.T) {
	s := NewSuggester(DefaultTable(), DefaultAuxiliary())
	inputs := []string{"a", "b", "c", "e", "g", "m", "n", "o", "r", "s", "t", "w", ".", "com", "re"}

	for _, input := range inputs {
		for _, limit := range []int{1, 3, 8, 20} {
			got := s.Suggest(input, limit)
			if len(got) > limit {
				t.Errorf("Suggest(%q, %d) returned %d items", input, limit, len(got))
			}
			seen := make(map[string]bool)
			for _, item := range got {
				if seen[item] {
					t.Errorf("Suggest(%q, %d) duplicated %q", input, limit, item)
				}
				seen[item] = true
			}
		}
	}
}

func TestSuggest_PrefixStable(t *testing.T) {
	s := NewSuggester(DefaultTable(), DefaultAuxiliary())

	// A smaller limit yields a prefix of the larger result.
	full := s.Suggest("s", 20)
	for limit := 1; limit < len(full); limit++ {
		got := s.Suggest("s", limit)
		if !reflect.DeepEqual(got, full[:limit]) {
			t.Errorf("Suggest(s, %d) = %q, want %q", limit, got, full[:limit])
		}
	}
}

func TestSuggest_CommandDomain(t *testing.T) {
	table := Table{
		{Key: "x", Name: "Example", URL: "https://www.Example.org/path"},
		{Key: "b", Name: "Broken", URL: "http://%zz"},
		{Key: "n", Name: "No scheme", URL: "example.net"},
	}

	got := Suggest("exa", table, Auxiliary{}, 10)
	want := []string{"x → Example", "example.org", "example.net"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest(exa) = %q, want %q", got, want)
	}
}

func TestSuggest_UnparsableURLSkipped(t *testing.T) {
	table := Table{{Key: "b", Name: "Broken", URL: "http://%zz"}}

	if got := Suggest("zz", table, Auxiliary{}, 10); len(got) != 0 {
		t.Errorf("Suggest(zz) = %q, want nothing", got)
	}
}

func TestSuggest_KeyMatchNotRepeatedByName(t *testing.T) {
	table := Table{
		{Key: "docs", Name: "docs portal", URL: "https://docs.example"},
		{Key: "w", Name: "Team docs", URL: "https://wiki.example"},
	}

	got := Suggest("docs", table, Auxiliary{}, 10)
	want := []string{"docs → docs portal", "w → Team docs", "docs.example"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest(docs) = %q, want %q", got, want)
	}
}

func TestSuggest_Concurrent(t *testing.T) {
	s := NewSuggester(DefaultTable(), DefaultAuxiliary())
	want := s.Suggest("r", 8)

	done := make(chan []string)
	for i := 0; i < 8; i++ {
		go func() { done <- s.Suggest("r", 8) }()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Errorf("concurrent Suggest = %q, want %q", got, want)
		}
	}
}

// =============================================================================
// DISPLAY HELPER TESTS
// =============================================================================

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"g → GitHub", "g"},
		{"🔍 how to", "how to"},
		{"github.com/issues", "github.com/issues"},
		{"* → Google Search", "*"},
	}

	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHighlight(t *testing.T) {
	mark := func(s string) string { return "[" + s + "]" }

	tests := []struct {
		text  string
		query string
		want  string
	}{
		{"g → GitHub", "git", "g → [Git]Hub"},
		{"github.com/issues", "s", "github.com/i[s][s]ue[s]"},
		{"a.b", ".", "a[.]b"},
		{"nothing", "", "nothing"},
	}

	for _, tt := range tests {
		if got := Highlight(tt.text, tt.query, mark); got != tt.want {
			t.Errorf("Highlight(%q, %q) = %q, want %q", tt.text, tt.query, got, tt.want)
		}
	}

	if got := Highlight("abc", "b", nil); got != "abc" {
		t.Errorf("Highlight with nil mark = %q", got)
	}
}

// =============================================================================
// SUGGESTION STATE TESTS
// =============================================================================

func TestSuggestionState_Navigation(t *testing.T) {
	ss := NewSuggestionState()
	if ss.Visible() {
		t.Error("new state should not be visible")
	}
	if _, ok := ss.Accept(); ok {
		t.Error("Accept with nothing selected should fail")
	}

	ss.Update([]string{"g → GitHub", "github.com", "🔍 how to"})
	if !ss.Visible() {
		t.Fatal("state with items should be visible")
	}
	if ss.Selected != -1 {
		t.Errorf("Selected after Update = %d, want -1", ss.Selected)
	}

	ss.Next()
	if got, _ := ss.Accept(); got != "g" {
		t.Errorf("Accept() = %q, want g", got)
	}

	ss.Next()
	ss.Next()
	if got, _ := ss.Accept(); got != "how to" {
		t.Errorf("Accept() = %q, want how to", got)
	}

	ss.Next() // wraps to top
	if ss.Selected != 0 {
		t.Errorf("Selected after wrap = %d, want 0", ss.Selected)
	}

	ss.Prev() // wraps to bottom
	if ss.Selected != 2 {
		t.Errorf("Selected after reverse wrap = %d, want 2", ss.Selected)
	}

	ss.Clear()
	if ss.Visible() || ss.Selected != -1 {
		t.Error("Clear should drop items and selection")
	}

	// Navigation on an empty list is a no-op.
	ss.Next()
	ss.Prev()
	if ss.Selected != -1 {
		t.Errorf("Selected on empty list = %d", ss.Selected)
	}
}

func TestSuggestionState_AcceptFeedsResolver(t *testing.T) {
	ss := NewSuggestionState()
	ss.Update(Suggest("y", DefaultTable(), DefaultAuxiliary(), 8))
	ss.Next()

	value, ok := ss.Accept()
	if !ok {
		t.Fatal("Accept failed")
	}
	if !strings.HasPrefix(ss.Items[0], value) {
		t.Errorf("accepted %q is not the key of %q", value, ss.Items[0])
	}
	if res := Resolve(value, DefaultTable(), DefaultDelimiters()); res.Kind() != KindExact {
		t.Errorf("accepted key resolves to %v, want exact", res.Kind())
	}
}
