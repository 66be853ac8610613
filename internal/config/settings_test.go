// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_DefaultsMatchSettingsPanel(t *testing.T) {
	s := Default().Settings()

	assert.False(t, s.InvertedColors)
	assert.False(t, s.ShowKeys)
	assert.False(t, s.TwentyFourHourClock)
	assert.Equal(t, ":", s.ClockDelimiter)
	assert.True(t, s.ShowDate)
	assert.True(t, s.ShowClockIndicators)
	assert.False(t, s.InstantRedirect)
	assert.True(t, s.OpenInNewTab)
	assert.True(t, s.EnableSuggestions)
	assert.Equal(t, 5, s.MaxSuggestions)
	assert.Equal(t, ":", s.SearchDelimiter)
	assert.Equal(t, "/", s.PathDelimiter)
}

func TestSettings_ExportKeys(t *testing.T) {
	data, err := Default().ExportSettings()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 12)
	for _, key := range []string{"invertedColors", "showKeys", "maxSuggestions", "searchDelimiter", "pathDelimiter"} {
		assert.Contains(t, raw, key)
	}
}

func TestSettings_ExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)

	src := Default()
	src.UI.InvertedColors = true
	src.Suggestions.Max = 9
	src.Navigation.PathDelimiter = ">"
	require.NoError(t, src.ExportSettingsFile(path))

	dst := Default()
	applied, err := dst.ImportSettingsFile(path)
	require.NoError(t, err)
	assert.Len(t, applied, 12)
	assert.Equal(t, src.Settings(), dst.Settings())
}

func TestSettings_ImportIgnoresUnknownKeys(t *testing.T) {
	cfg := Default()
	applied, err := cfg.ImportSettings([]byte(`{"showKeys": true, "favouriteColour": "teal"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"showKeys"}, applied)
	assert.True(t, cfg.UI.ShowKeys)
	assert.Equal(t, 5, cfg.Suggestions.Max, "absent keys keep their value")
}

func TestSettings_ImportInvalidLeavesConfigUntouched(t *testing.T) {
	cfg := Default()
	_, err := cfg.ImportSettings([]byte(`{"showKeys": true, "maxSuggestions": 99}`))
	require.Error(t, err)

	assert.False(t, cfg.UI.ShowKeys)
	assert.Equal(t, 5, cfg.Suggestions.Max)
}

func TestSettings_ImportMalformed(t *testing.T) {
	cfg := Default()
	_, err := cfg.ImportSettings([]byte(`not json`))
	assert.Error(t, err)

	_, err = cfg.ImportSettings([]byte(`{"maxSuggestions": "five"}`))
	assert.Error(t, err)
}

func TestSettings_Reset(t *testing.T) {
	cfg := Default()
	cfg.UI.ShowKeys = true
	cfg.Navigation.SearchDelimiter = ";"
	cfg.UI.Theme = "light"
	cfg.Commands = cfg.Commands[:1]

	cfg.ResetSettings()

	assert.Equal(t, Default().Settings(), cfg.Settings())
	assert.Equal(t, "light", cfg.UI.Theme, "theme is not a portable setting")
	assert.Len(t, cfg.Commands, 1, "commands survive a reset")
}
