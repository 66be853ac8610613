// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the structured logger shared by sttp components.
//
// Components receive a *slog.Logger instead of calling the slog package
// functions directly, so tests can pass Discard() or a buffer-backed
// logger.
package logging
