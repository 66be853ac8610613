// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/config"
	"github.com/jeranaias/sttp/internal/launch"
	"github.com/jeranaias/sttp/internal/storage"
)

// ErrNoMatch is returned by Submit when nothing matched and no wildcard
// command is configured.
var ErrNoMatch = errors.New("no command matched")

// ErrEmptyInput is returned by Submit for blank input.
var ErrEmptyInput = errors.New("empty input")

// =============================================================================
// ACTIONS
// =============================================================================

// Action describes what Submit did with the input.
type Action int

const (
	ActionNone         Action = iota
	ActionOpened              // A redirect was handed to the launcher
	ActionHelp                // "?" asks the surface to show help
	ActionSettings            // "settings!" asks the surface to show settings
	ActionInverted            // "invert!" toggled the color preference
	ActionKeysToggled         // "keys!" toggled the show-keys preference
	ActionBatchLaunched       // "q!" or "<n>!" opened several URLs
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionOpened:        "opened",
	ActionHelp:          "help",
	ActionSettings:      "settings",
	ActionInverted:      "inverted",
	ActionKeysToggled:   "keys_toggled",
	ActionBatchLaunched: "batch_launched",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Result is the outcome of one Submit.
type Result struct {
	Input      string
	Resolution commands.Resolution
	Action     Action

	// URL is set for ActionOpened
	URL string
	// Opened counts URLs for ActionBatchLaunched
	Opened int
	// Enabled is the new preference value for toggles
	Enabled bool
	// Hints are close command keys when nothing matched
	Hints []string
}

// =============================================================================
// APP
// =============================================================================

// App is the shared core of the sttp surfaces. It is safe for concurrent
// use; Reconfigure swaps the configuration atomically.
type App struct {
	mu        sync.RWMutex
	cfg       *config.Config
	resolver  *commands.Resolver
	suggester *commands.Suggester

	launcher *launch.Launcher
	store    *storage.Store
	logger   *slog.Logger

	// in-memory preference fallback when there is no store
	prefs map[string]bool
}

// New creates an App. store may be nil, in which case preferences live in
// memory and lookups are not recorded. A nil logger uses slog.Default.
func New(cfg *config.Config, launcher *launch.Launcher, store *storage.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		launcher: launcher,
		store:    store,
		logger:   logger,
		prefs:    make(map[string]bool),
	}
	a.Reconfigure(cfg)
	return a
}

// Reconfigure replaces the configuration and rebuilds the resolver and
// suggester.
func (a *App) Reconfigure(cfg *config.Config) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
	a.resolver = cfg.NewResolver()
	a.suggester = cfg.NewSuggester()
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Table returns the active command table.
func (a *App) Table() commands.Table {
	return a.Config().Commands
}

// Resolve resolves input without side effects.
func (a *App) Resolve(input string) commands.Resolution {
	a.mu.RLock()
	r := a.resolver
	a.mu.RUnlock()
	return r.Resolve(input)
}

// Suggest returns suggestions for partial using the configured limit.
// Disabled suggestions yield an empty list.
func (a *App) Suggest(partial string) []string {
	a.mu.RLock()
	s, limit := a.suggester, a.cfg.SuggestionLimit()
	a.mu.RUnlock()
	return s.Suggest(partial, limit)
}

// Submit resolves input and carries it out: special tokens run their
// action, redirects are opened, and the lookup is recorded.
func (a *App) Submit(ctx context.Context, input string) (Result, error) {
	if strings.TrimSpace(input) == "" {
		return Result{Input: input}, ErrEmptyInput
	}

	res := a.Resolve(input)
	result := Result{Input: input, Resolution: res}

	cmd, _ := commands.CommandOf(res)
	redirect, _ := commands.RedirectOf(res)
	a.logger.Info("resolution",
		"kind", res.Kind().String(),
		"key", cmd.Key,
		"redirect", redirect,
	)
	a.record(ctx, input, res.Kind(), cmd.Key)

	switch v := res.(type) {
	case commands.SpecialMatch:
		err := a.special(ctx, v.Token, &result)
		return result, err

	case commands.NoMatch:
		head := firstToken(input, a.Config().Delimiters())
		// Keys are short; scale the allowed distance to the typed word.
		maxDist := min(DefaultMaxDistance, max(1, len(head)/2))
		result.Hints = DidYouMean(head, a.Table().Keys(), maxDist)
		return result, fmt.Errorf("%w: %q", ErrNoMatch, strings.TrimSpace(input))
	}

	if err := a.open(ctx, redirect); err != nil {
		return result, err
	}
	result.Action = ActionOpened
	result.URL = redirect
	return result, nil
}

// special runs the host action bound to token.
func (a *App) special(ctx context.Context, token commands.Special, result *Result) error {
	var err error
	commands.Dispatch(token, commands.Callbacks{
		OnHelp: func() {
			result.Action = ActionHelp
		},
		OnSettings: func() {
			result.Action = ActionSettings
		},
		OnInvertColors: func() {
			result.Action = ActionInverted
			result.Enabled, err = a.TogglePref(ctx, storage.KeyInvertColors)
		},
		OnToggleKeys: func() {
			result.Action = ActionKeysToggled
			result.Enabled, err = a.TogglePref(ctx, storage.KeyShowKeys)
		},
		OnQuickLaunch: func() {
			result.Action = ActionBatchLaunched
			if a.launcher == nil {
				err = launch.ErrNoOpener
				return
			}
			result.Opened, err = a.launcher.QuickLaunch(ctx, a.Table())
		},
		OnCategoryLaunch: func(index int) {
			result.Action = ActionBatchLaunched
			if a.launcher == nil {
				err = launch.ErrNoOpener
				return
			}
			result.Opened, err = a.launcher.CategoryLaunch(ctx, a.Table(), index)
		},
	})
	return err
}

func (a *App) open(ctx context.Context, url string) error {
	if a.launcher == nil {
		return launch.ErrNoOpener
	}
	return a.launcher.Launch(ctx, url)
}

func (a *App) record(ctx context.Context, input string, kind commands.Kind, key string) {
	if a.store == nil {
		return
	}
	if _, err := a.store.RecordLookup(ctx, input, kind, key); err != nil {
		a.logger.Warn("failed to record lookup", "error", err)
	}
}

// =============================================================================
// PREFERENCES
// =============================================================================

// prefDefault returns the configured default for a preference key.
func (a *App) prefDefault(key string) bool {
	cfg := a.Config()
	switch key {
	case storage.KeyInvertColors:
		return cfg.UI.InvertedColors
	case storage.KeyShowKeys:
		return cfg.UI.ShowKeys
	default:
		return false
	}
}

// Pref returns a boolean preference, falling back to the configured
// default when it was never toggled.
func (a *App) Pref(ctx context.Context, key string) bool {
	def := a.prefDefault(key)
	if a.store == nil {
		a.mu.RLock()
		defer a.mu.RUnlock()
		if v, ok := a.prefs[key]; ok {
			return v
		}
		return def
	}
	v, err := a.store.GetBool(ctx, key, def)
	if err != nil {
		a.logger.Warn("failed to read preference", "key", key, "error", err)
		return def
	}
	return v
}

// TogglePref flips a boolean preference and returns the new value.
func (a *App) TogglePref(ctx context.Context, key string) (bool, error) {
	var v bool
	if a.store == nil {
		cur := a.Pref(ctx, key)
		a.mu.Lock()
		a.prefs[key] = !cur
		a.mu.Unlock()
		v = !cur
	} else {
		// Seed the stored value from config so the first toggle flips it.
		if _, err := a.store.Get(ctx, key); errors.Is(err, storage.ErrNotFound) {
			if err := a.store.SetBool(ctx, key, a.prefDefault(key)); err != nil {
				return false, fmt.Errorf("failed to seed preference %s: %w", key, err)
			}
		}
		var err error
		v, err = a.store.Toggle(ctx, key)
		if err != nil {
			return false, err
		}
	}
	a.logger.Info("pref toggled", "key", key, "value", v)
	return v, nil
}

// InvertedColors reports the current "invert!" preference.
func (a *App) InvertedColors(ctx context.Context) bool {
	return a.Pref(ctx, storage.KeyInvertColors)
}

// ShowKeys reports the current "keys!" preference.
func (a *App) ShowKeys(ctx context.Context) bool {
	return a.Pref(ctx, storage.KeyShowKeys)
}

// =============================================================================
// STATISTICS
// =============================================================================

// TopKeywords returns the most used keywords, or nil without a store.
func (a *App) TopKeywords(ctx context.Context, n int) ([]storage.KeywordStat, error) {
	if a.store == nil {
		return nil, nil
	}
	return a.store.TopKeywords(ctx, n)
}

// firstToken returns the part of input before the first delimiter.
func firstToken(input string, d commands.Delimiters) string {
	s := strings.TrimSpace(input)
	for _, sep := range []string{d.Search, d.Path} {
		if sep == "" {
			continue
		}
		if head, _, ok := strings.Cut(s, sep); ok {
			s = head
		}
	}
	return s
}
