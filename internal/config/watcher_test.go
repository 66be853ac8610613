// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := NewWatcher(path, 50*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWatcher_BroadcastsReload(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[ui]\ntheme = \"dark\"\n")

	w := startWatcher(t, path)
	first, _ := w.Subscribe()
	second, _ := w.Subscribe()

	writeFile(t, path, "[ui]\ntheme = \"light\"\n")

	for _, ch := range []<-chan *Config{first, second} {
		select {
		case cfg := <-ch:
			require.NotNil(t, cfg)
			assert.Equal(t, "light", cfg.UI.Theme)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcher_InvalidEditSkipped(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[ui]\ntheme = \"dark\"\n")

	w := startWatcher(t, path)
	ch, _ := w.Subscribe()

	writeFile(t, path, "[ui]\ntheme = \"neon\"\n")
	select {
	case cfg := <-ch:
		t.Fatalf("invalid config was broadcast: %+v", cfg.UI)
	case <-time.After(300 * time.Millisecond):
	}

	writeFile(t, path, "[ui]\ntheme = \"auto\"\n")
	select {
	case cfg := <-ch:
		assert.Equal(t, "auto", cfg.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[ui]\ntheme = \"dark\"\n")

	w := startWatcher(t, path)
	ch, _ := w.Subscribe()

	writeFile(t, filepath.Join(dir, "notes.txt"), "hello")
	select {
	case <-ch:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_UnsubscribeClosesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "")

	w := startWatcher(t, path)
	ch, unsubscribe := w.Subscribe()
	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
}

func TestWatcher_CloseWithoutStart(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.toml"), 0, nil)
	require.NoError(t, err)
	ch, _ := w.Subscribe()

	require.NoError(t, w.Close())
	_, open := <-ch
	assert.False(t, open)
}
