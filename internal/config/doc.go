// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for sttp.
//
// Supports TOML, JSON and YAML configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - Settings: The portable subset exchanged through sttp-settings.json
//   - Watcher: Reloads the config file on change and broadcasts it
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (STTP_*)
//   - The file named by STTP_CONFIG
//   - ~/.sttp/config.toml
//   - ~/.sttp/config.json
//   - ~/.sttp/config.yaml
//   - Built-in defaults
//
// # Usage
//
// Load configuration and resolve input:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := cfg.NewResolver().Resolve("g:golang")
//
// Follow edits to the config file:
//
//	w, _ := config.NewWatcher(cfg.Source(), 0, logger)
//	updates, stop := w.Subscribe()
//	defer stop()
package config
