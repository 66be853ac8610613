// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/jeranaias/sttp/internal/util"
)

// SettingsFileName is the default name for exported settings.
const SettingsFileName = "sttp-settings.json"

// =============================================================================
// PORTABLE SETTINGS
// =============================================================================

// Settings is the user facing subset of the configuration that can be
// exported, imported and reset. The command table is not part of it.
type Settings struct {
	InvertedColors      bool   `json:"invertedColors"`
	ShowKeys            bool   `json:"showKeys"`
	TwentyFourHourClock bool   `json:"twentyFourHourClock"`
	ClockDelimiter      string `json:"clockDelimiter"`
	ShowDate            bool   `json:"showDate"`
	ShowClockIndicators bool   `json:"showClockIndicators"`
	InstantRedirect     bool   `json:"instantRedirect"`
	OpenInNewTab        bool   `json:"openInNewTab"`
	EnableSuggestions   bool   `json:"enableSuggestions"`
	MaxSuggestions      int    `json:"maxSuggestions"`
	SearchDelimiter     string `json:"searchDelimiter"`
	PathDelimiter       string `json:"pathDelimiter"`
}

// settingsKeys holds the JSON names of every Settings field.
var settingsKeys = func() map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(Settings{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		keys[name] = true
	}
	return keys
}()

// Settings returns the portable settings of c.
func (c *Config) Settings() Settings {
	return Settings{
		InvertedColors:      c.UI.InvertedColors,
		ShowKeys:            c.UI.ShowKeys,
		TwentyFourHourClock: c.UI.TwentyFourHour,
		ClockDelimiter:      c.UI.ClockDelimiter,
		ShowDate:            c.UI.ShowDate,
		ShowClockIndicators: c.UI.ShowClockIndicators,
		InstantRedirect:     c.Navigation.InstantRedirect,
		OpenInNewTab:        c.Navigation.OpenInNewTab,
		EnableSuggestions:   c.Suggestions.Enabled,
		MaxSuggestions:      c.Suggestions.Max,
		SearchDelimiter:     c.Navigation.SearchDelimiter,
		PathDelimiter:       c.Navigation.PathDelimiter,
	}
}

// ApplySettings copies s into c.
func (c *Config) ApplySettings(s Settings) {
	c.UI.InvertedColors = s.InvertedColors
	c.UI.ShowKeys = s.ShowKeys
	c.UI.TwentyFourHour = s.TwentyFourHourClock
	c.UI.ClockDelimiter = s.ClockDelimiter
	c.UI.ShowDate = s.ShowDate
	c.UI.ShowClockIndicators = s.ShowClockIndicators
	c.Navigation.InstantRedirect = s.InstantRedirect
	c.Navigation.OpenInNewTab = s.OpenInNewTab
	c.Suggestions.Enabled = s.EnableSuggestions
	c.Suggestions.Max = s.MaxSuggestions
	c.Navigation.SearchDelimiter = s.SearchDelimiter
	c.Navigation.PathDelimiter = s.PathDelimiter
}

// ResetSettings restores every portable setting to its default. Commands
// and other sections are left alone.
func (c *Config) ResetSettings() {
	c.ApplySettings(Default().Settings())
}

// =============================================================================
// EXPORT / IMPORT
// =============================================================================

// ExportSettings encodes the portable settings as indented JSON.
func (c *Config) ExportSettings() ([]byte, error) {
	data, err := json.MarshalIndent(c.Settings(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

// ExportSettingsFile writes the portable settings to path.
func (c *Config) ExportSettingsFile(path string) error {
	data, err := c.ExportSettings()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// ImportSettings applies the known keys of a settings JSON document and
// ignores the rest. Nothing changes unless the result validates. It
// returns the applied keys in sorted order.
func (c *Config) ImportSettings(data []byte) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	var applied []string
	for key := range raw {
		if settingsKeys[key] {
			applied = append(applied, key)
		}
	}
	sort.Strings(applied)

	// Unmarshal over the current values so absent keys keep them.
	s := c.Settings()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	next := c.Clone()
	next.ApplySettings(s)
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("imported settings are invalid: %w", err)
	}

	c.ApplySettings(s)
	return applied, nil
}

// ImportSettingsFile reads path and applies it with ImportSettings.
func (c *Config) ImportSettingsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return c.ImportSettings(data)
}
