// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app ties the resolver, suggester, launcher and preference store
// together behind the operations every sttp surface needs.
//
// The TUI startpage and the line prompt both submit input through App.Submit,
// which resolves it, runs special tokens, opens redirects and records the
// lookup. Side effects go through injected dependencies so surfaces stay
// thin and tests can swap in fakes.
package app
