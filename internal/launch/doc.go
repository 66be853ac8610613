// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package launch hands resolved URLs to the system browser.
//
// An Opener opens one URL. The Launcher wraps an Opener with logging and
// paces batch launches ("q!" and "<n>!") through a rate limiter so a
// browser is not flooded with tabs at once.
package launch
