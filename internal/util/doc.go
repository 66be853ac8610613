// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across sttp.
//
//   - Fold: case and normalisation folding for suggestion matching
//   - TruncateWidth, PadRight, StringWidth: column-aware layout
//   - AtomicWriteFile: crash-safe file writes for config and exports
package util
