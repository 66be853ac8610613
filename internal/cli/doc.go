// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the command-line interface for sttp.
//
// The root command opens the terminal startpage when stdin and stdout are
// terminals and the line prompt otherwise. Subcommands expose the resolver,
// the suggester and the configuration to scripts.
//
// # Commands Overview
//
//   - (none): Terminal startpage
//   - prompt: Line prompt with tab completion
//   - resolve: Print (or open) what some text resolves to
//   - suggest: Print suggestions for partial text
//   - commands: List the command table by category
//   - config: Show, edit, export, import and reset settings
//   - stats: Most used keywords
//   - version: Version information
//
// Commands that print data support --json.
package cli
