// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/sttp/internal/commands"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

// =============================================================================
// PREFERENCE TESTS
// =============================================================================

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	_, err := s.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.Set(ctx, "clockDelimiter", "."))
	v, err := s.Get(ctx, "clockDelimiter")
	require.NoError(t, err)
	assert.Equal(t, ".", v)

	require.NoError(t, s.Set(ctx, "clockDelimiter", ":"))
	v, err = s.Get(ctx, "clockDelimiter")
	require.NoError(t, err)
	assert.Equal(t, ":", v)
}

func TestStore_GetBool(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	v, err := s.GetBool(ctx, KeyShowKeys, true)
	require.NoError(t, err)
	assert.True(t, v, "unset preference returns the default")

	require.NoError(t, s.SetBool(ctx, KeyShowKeys, false))
	v, err = s.GetBool(ctx, KeyShowKeys, true)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, s.Set(ctx, "broken", "sometimes"))
	_, err = s.GetBool(ctx, "broken", false)
	assert.Error(t, err)
}

func TestStore_Toggle(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	v, err := s.Toggle(ctx, KeyInvertColors)
	require.NoError(t, err)
	assert.True(t, v, "unset toggles to true")

	v, err = s.Toggle(ctx, KeyInvertColors)
	require.NoError(t, err)
	assert.False(t, v)

	raw, err := s.Get(ctx, KeyInvertColors)
	require.NoError(t, err)
	assert.Equal(t, "false", raw)
}

func TestStore_ToggleConcurrent(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Toggle(ctx, KeyShowKeys)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// An even number of flips ends where it started.
	v, err := s.GetBool(ctx, KeyShowKeys, true)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestStore_DeleteAndAll(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	require.NoError(t, s.SetBool(ctx, KeyInvertColors, true))
	require.NoError(t, s.SetBool(ctx, KeyShowKeys, false))

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyInvertColors: "true", KeyShowKeys: "false"}, all)

	require.NoError(t, s.Delete(ctx, KeyShowKeys))
	assert.True(t, errors.Is(s.Delete(ctx, KeyShowKeys), ErrNotFound))

	all, err = s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_PersistsOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "sttp.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetBool(ctx, KeyInvertColors, true))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.GetBool(ctx, KeyInvertColors, false)
	require.NoError(t, err)
	assert.True(t, v)
}

// =============================================================================
// LOOKUP TESTS
// =============================================================================

func TestOutcomeFor(t *testing.T) {
	tests := map[commands.Kind]Outcome{
		commands.KindURL:      OutcomeResolved,
		commands.KindExact:    OutcomeResolved,
		commands.KindSearch:   OutcomeResolved,
		commands.KindPath:     OutcomeResolved,
		commands.KindFallback: OutcomeFallback,
		commands.KindSpecial:  OutcomeSpecial,
		commands.KindNone:     OutcomeNotFound,
	}
	for kind, want := range tests {
		assert.Equal(t, want, OutcomeFor(kind), kind.String())
	}
}

func TestStore_RecordLookup(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	s.now = steppingClock()

	l, err := s.RecordLookup(ctx, "g:golang", commands.KindSearch, "g")
	require.NoError(t, err)

	_, err = uuid.Parse(l.ID)
	assert.NoError(t, err, "lookup ids are uuids")
	assert.Equal(t, "search", l.Kind)
	assert.Equal(t, OutcomeResolved, l.Outcome)
}

func TestStore_TopKeywords(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	s.now = steppingClock()

	record := func(input string, kind commands.Kind, key string) {
		_, err := s.RecordLookup(ctx, input, kind, key)
		require.NoError(t, err)
	}
	record("g", commands.KindExact, "g")
	record("g:golang", commands.KindSearch, "g")
	record("g/jeranaias", commands.KindPath, "g")
	record("r/golang", commands.KindPath, "r")
	record("r", commands.KindExact, "r")
	record(" hello world ", commands.KindFallback, "*")
	record("nothing", commands.KindNone, "")

	top, err := s.TopKeywords(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "g", top[0].Keyword)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, OutcomeResolved, top[0].Outcome)
	assert.Equal(t, "r", top[1].Keyword)
	assert.Equal(t, 2, top[1].Count)

	all, err := s.TopKeywords(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, KeywordStat{Keyword: "nothing", Outcome: OutcomeNotFound, Count: 1, LastUsed: all[3].LastUsed}, all[3])

	none, err := s.TopKeywords(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_KeywordFallsBackToInput(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	_, err := s.RecordLookup(ctx, "  github.com ", commands.KindURL, "")
	require.NoError(t, err)

	top, err := s.TopKeywords(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "github.com", top[0].Keyword)
}

func TestStore_RecentLookups(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	s.now = steppingClock()

	for _, input := range []string{"first", "second", "third"} {
		_, err := s.RecordLookup(ctx, input, commands.KindFallback, "*")
		require.NoError(t, err)
	}

	recent, err := s.RecentLookups(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Input)
	assert.Equal(t, "second", recent[1].Input)
	assert.True(t, recent[0].At.After(recent[1].At))
}
