// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jeranaias/sttp/internal/commands"
)

// ErrNotFound is returned when a preference key does not exist.
var ErrNotFound = errors.New("not found")

// Preference keys shared with the startpage settings.
const (
	KeyInvertColors = "invertColorCookie"
	KeyShowKeys     = "showKeysCookie"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Schema creates the preference and lookup tables.
const Schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS lookups (
	id         TEXT PRIMARY KEY,
	input      TEXT NOT NULL,
	kind       TEXT NOT NULL,
	key        TEXT NOT NULL DEFAULT '',
	outcome    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lookups_created ON lookups(created_at);

CREATE TABLE IF NOT EXISTS keyword_stats (
	keyword   TEXT NOT NULL,
	outcome   TEXT NOT NULL,
	count     INTEGER NOT NULL DEFAULT 0,
	last_used INTEGER NOT NULL,
	PRIMARY KEY (keyword, outcome)
);
`

// =============================================================================
// OUTCOMES
// =============================================================================

// Outcome classifies a lookup for statistics.
type Outcome string

const (
	OutcomeResolved Outcome = "resolved"  // URL or command match
	OutcomeFallback Outcome = "fallback"  // Wildcard search
	OutcomeNotFound Outcome = "not_found" // Nothing matched
	OutcomeSpecial  Outcome = "special"   // Local action
)

// OutcomeFor maps a resolution kind to its outcome.
func OutcomeFor(kind commands.Kind) Outcome {
	switch kind {
	case commands.KindURL, commands.KindExact, commands.KindSearch, commands.KindPath:
		return OutcomeResolved
	case commands.KindFallback:
		return OutcomeFallback
	case commands.KindSpecial:
		return OutcomeSpecial
	default:
		return OutcomeNotFound
	}
}

// Lookup is one recorded resolution.
type Lookup struct {
	ID      string
	Input   string
	Kind    string
	Key     string
	Outcome Outcome
	At      time.Time
}

// KeywordStat aggregates lookups of one keyword with one outcome.
type KeywordStat struct {
	Keyword  string    `json:"keyword"`
	Outcome  Outcome   `json:"outcome"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// =============================================================================
// STORE
// =============================================================================

// Store persists preferences and lookup history in SQLite. It is safe for
// concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path. MemoryPath gives
// a throwaway database for tests and dry runs.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, and an in-memory
	// database lives exactly as long as its single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// PREFERENCES
// =============================================================================

// Get returns the raw value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("preference %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return setPref(ctx, s.db, key, value, s.now())
}

// GetBool returns the boolean stored under key, or def when it is unset.
// Values are stored as "true" and "false".
func (s *Store) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("preference %q is not a boolean: %q", key, raw)
	}
	return v, nil
}

// SetBool stores a boolean preference.
func (s *Store) SetBool(ctx context.Context, key string, v bool) error {
	return s.Set(ctx, key, strconv.FormatBool(v))
}

// Toggle flips the boolean stored under key (unset counts as false) and
// returns the new value.
func (s *Store) Toggle(ctx context.Context, key string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var raw string
	current := false
	err = tx.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, fmt.Errorf("failed to read preference %q: %w", key, err)
	default:
		current, _ = strconv.ParseBool(raw)
	}

	next := !current
	if err := setPref(ctx, tx, key, strconv.FormatBool(next), s.now()); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return next, nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("preference %q: %w", key, ErrNotFound)
	}
	return nil
}

// All returns every stored preference.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM preferences ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs[k] = v
	}
	return prefs, rows.Err()
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setPref(ctx context.Context, db execer, key, value string, at time.Time) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, at.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}

// =============================================================================
// LOOKUP HISTORY
// =============================================================================

// RecordLookup stores one resolution and bumps the counter of its keyword.
// The keyword is the command key when one matched, otherwise the trimmed
// input.
func (s *Store) RecordLookup(ctx context.Context, input string, kind commands.Kind, key string) (Lookup, error) {
	l := Lookup{
		ID:      uuid.NewString(),
		Input:   input,
		Kind:    kind.String(),
		Key:     key,
		Outcome: OutcomeFor(kind),
		At:      s.now(),
	}
	keyword := key
	if keyword == "" {
		keyword = strings.TrimSpace(input)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Lookup{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO lookups (id, input, kind, key, outcome, created_at) VALUES (?, ?, ?, ?, ?, ?)
	`, l.ID, l.Input, l.Kind, l.Key, string(l.Outcome), l.At.UnixMilli())
	if err != nil {
		return Lookup{}, fmt.Errorf("failed to record lookup: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO keyword_stats (keyword, outcome, count, last_used) VALUES (?, ?, 1, ?)
		ON CONFLICT(keyword, outcome) DO UPDATE SET count = count + 1, last_used = excluded.last_used
	`, keyword, string(l.Outcome), l.At.UnixMilli())
	if err != nil {
		return Lookup{}, fmt.Errorf("failed to update keyword stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Lookup{}, fmt.Errorf("failed to commit: %w", err)
	}
	return l, nil
}

// TopKeywords returns the n most used keyword/outcome pairs, most used
// first. Ties are broken by keyword.
func (s *Store) TopKeywords(ctx context.Context, n int) ([]KeywordStat, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT keyword, outcome, count, last_used FROM keyword_stats
		ORDER BY count DESC, keyword ASC, outcome ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query keyword stats: %w", err)
	}
	defer rows.Close()

	var stats []KeywordStat
	for rows.Next() {
		var (
			st      KeywordStat
			outcome string
			last    int64
		)
		if err := rows.Scan(&st.Keyword, &outcome, &st.Count, &last); err != nil {
			return nil, fmt.Errorf("failed to scan keyword stat: %w", err)
		}
		st.Outcome = Outcome(outcome)
		st.LastUsed = time.UnixMilli(last)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// RecentLookups returns the n most recent lookups, newest first.
func (s *Store) RecentLookups(ctx context.Context, n int) ([]Lookup, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input, kind, key, outcome, created_at FROM lookups
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var lookups []Lookup
	for rows.Next() {
		var (
			l       Lookup
			outcome string
			at      int64
		)
		if err := rows.Scan(&l.ID, &l.Input, &l.Kind, &l.Key, &outcome, &at); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		l.Outcome = Outcome(outcome)
		l.At = time.UnixMilli(at)
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
