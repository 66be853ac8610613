// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/jeranaias/sttp/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Info("resolution", "kind", "search", "key", "g")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "resolution" || entry["kind"] != "search" || entry["app"] != "sttp" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "text")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestFromConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := FromConfig(&buf, config.LogConfig{Level: "debug", Format: "text"})

	logger.Debug("config reloaded")
	if !strings.Contains(buf.String(), "config reloaded") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must accept every level.
	logger := Discard()
	logger.Debug("x")
	logger.Error("y")
}
