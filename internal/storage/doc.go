// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides preference and usage persistence for sttp.
//
// This package keeps small key/value preferences (the inverted colors and
// show keys toggles) and a history of resolved lookups in a SQLite
// database.
//
// # Key Types
//
//   - Store: SQLite backed preference and lookup store
//   - Lookup: One recorded resolution
//   - KeywordStat: Aggregated usage per keyword and outcome
//
// # Usage
//
// Open a store and flip a preference:
//
//	store, err := storage.Open(path)
//	inverted, err := store.Toggle(ctx, storage.KeyInvertColors)
//
// Record a resolution and read the most used keywords:
//
//	_, err = store.RecordLookup(ctx, input, res.Kind(), key)
//	top, err := store.TopKeywords(ctx, 10)
//
// # Storage Location
//
// The database lives in ~/.sttp/sttp.db unless storage.path is set.
package storage
