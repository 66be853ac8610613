// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package internal provides integration tests for the complete sttp system.
//
// These tests verify end-to-end functionality including:
// - Loading a config file and resolving through it
// - Submitting input and recording statistics
// - Hot reloading the command table
// - Exporting and importing settings
package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jeranaias/sttp/internal/app"
	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/config"
	"github.com/jeranaias/sttp/internal/launch"
	"github.com/jeranaias/sttp/internal/logging"
	"github.com/jeranaias/sttp/internal/storage"
)

// =============================================================================
// TEST UTILITIES
// =============================================================================

// recordingOpener keeps every URL it was asked to open.
type recordingOpener struct {
	mu   sync.Mutex
	urls []string
}

func (r *recordingOpener) Open(ctx context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return nil
}

func (r *recordingOpener) opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// customConfigTOML is a small hand-written config with its own table.
const customConfigTOML = `
version = "1"

[navigation]
search_delimiter = ";"
path_delimiter = ">"
key_prefixed_paths = []

[suggestions]
enabled = true
max = 3

[[commands]]
key = "gh"
name = "GitHub"
url = "https://github.com"
search = "/search?q={}"
category = "Code"
quick_launch = true

[[commands]]
key = "w"
name = "Wikipedia"
url = "https://en.wikipedia.org"
search = "/w/index.php?search={}"
category = "Reference"

[[commands]]
key = "*"
name = "DuckDuckGo"
url = "https://duckduckgo.com"
search = "/?q={}"
category = "Search"
`

// writeConfig writes content to a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newApp wires an app with an in-memory store and a recording opener.
func newApp(t *testing.T, cfg *config.Config) (*app.App, *recordingOpener) {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	rec := &recordingOpener{}
	l := launch.NewLauncher(rec, 1000, 10, logging.Discard())
	return app.New(cfg, l, store, logging.Discard()), rec
}

// =============================================================================
// END-TO-END TESTS
// =============================================================================

func TestEndToEndCustomConfig(t *testing.T) {
	cfg, err := config.LoadFromPath(writeConfig(t, customConfigTOML))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	a, rec := newApp(t, cfg)
	ctx := context.Background()

	tests := []struct {
		input string
		kind  commands.Kind
		want  string
	}{
		{"gh;bubble tea", commands.KindSearch, "https://github.com/search?q=bubble%20tea"},
		{"gh>charmbracelet", commands.KindPath, "https://github.com/charmbracelet"},
		{"w", commands.KindExact, "https://en.wikipedia.org"},
		{"g:react", commands.KindFallback, "https://duckduckgo.com/?q=g%3Areact"},
		{"golang.org", commands.KindURL, "http://golang.org"},
	}

	for _, tt := range tests {
		res, err := a.Submit(ctx, tt.input)
		if err != nil {
			t.Errorf("Submit(%q): %v", tt.input, err)
			continue
		}
		if res.Resolution.Kind() != tt.kind || res.URL != tt.want {
			t.Errorf("Submit(%q) = %v %q, want %v %q", tt.input, res.Resolution.Kind(), res.URL, tt.kind, tt.want)
		}
	}

	if got := len(rec.opened()); got != len(tests) {
		t.Errorf("opened %d URLs, want %d", got, len(tests))
	}

	// Categories follow the table order of the file.
	res, err := a.Submit(ctx, "2!")
	if err != nil {
		t.Fatalf("Submit(2!): %v", err)
	}
	if res.Action != app.ActionBatchLaunched || res.Opened != 1 {
		t.Errorf("2! = %v opened %d, want one Reference page", res.Action, res.Opened)
	}

	if got := a.Suggest("g"); len(got) > 3 {
		t.Errorf("Suggest returned %d items, want at most the configured 3", len(got))
	}
}

func TestEndToEndStatistics(t *testing.T) {
	a, _ := newApp(t, config.Default())
	ctx := context.Background()

	for _, in := range []string{"g", "g:go", "y", "something else", "?"} {
		if _, err := a.Submit(ctx, in); err != nil {
			t.Fatalf("Submit(%q): %v", in, err)
		}
	}

	stats, err := a.TopKeywords(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	byKeyword := make(map[string]storage.KeywordStat)
	for _, s := range stats {
		byKeyword[s.Keyword] = s
	}

	if s := byKeyword["g"]; s.Count != 2 || s.Outcome != storage.OutcomeResolved {
		t.Errorf("g = %+v, want 2 resolved", s)
	}
	if s := byKeyword["*"]; s.Count != 1 || s.Outcome != storage.OutcomeFallback {
		t.Errorf("wildcard = %+v, want 1 fallback", s)
	}
	if s := byKeyword["?"]; s.Outcome != storage.OutcomeSpecial {
		t.Errorf("? = %+v, want special", s)
	}
}

func TestEndToEndHotReload(t *testing.T) {
	path := writeConfig(t, customConfigTOML)
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := newApp(t, cfg)

	w, err := config.NewWatcher(path, 20*time.Millisecond, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	updates, unsubscribe := w.Subscribe()
	defer unsubscribe()
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if got := a.Resolve("so").Kind(); got != commands.KindFallback {
		t.Fatalf("so resolved to %v before reload", got)
	}

	edited := strings.Replace(customConfigTOML, `key = "w"`, `key = "so"`, 1)
	if err := os.WriteFile(path, []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case next := <-updates:
		a.Reconfigure(next)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after editing the config file")
	}

	if got := a.Resolve("so").Kind(); got != commands.KindExact {
		t.Errorf("so resolved to %v after reload, want exact", got)
	}
}

func TestEndToEndSettingsRoundTrip(t *testing.T) {
	src := config.Default()
	src.UI.ShowKeys = true
	src.UI.TwentyFourHour = true
	src.Suggestions.Max = 12

	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	if err := src.ExportSettingsFile(path); err != nil {
		t.Fatal(err)
	}

	dst := config.Default()
	applied, err := dst.ImportSettingsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(applied) == 0 {
		t.Fatal("no settings applied")
	}
	if dst.Settings() != src.Settings() {
		t.Errorf("settings differ after round trip:\n got %+v\nwant %+v", dst.Settings(), src.Settings())
	}

	a, _ := newApp(t, dst)
	if !a.ShowKeys(context.Background()) {
		t.Error("imported show_keys should be the app default")
	}
}
