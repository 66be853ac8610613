// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads a config file when it changes and broadcasts the new
// configuration to every subscriber. Subscribers only ever see the most
// recent valid configuration; an invalid edit is logged and skipped.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	subs    map[int]chan *Config
	nextID  int
	started bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher creates a watcher for path. A nil logger uses slog.Default.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logger,
		watcher:  fw,
		subs:     make(map[int]chan *Config),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

// Subscribe returns a channel that receives each reloaded configuration
// and a function that unsubscribes and closes it.
func (w *Watcher) Subscribe() (<-chan *Config, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	ch := make(chan *Config, 1)
	w.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if c, ok := w.subs[id]; ok {
				delete(w.subs, id)
				close(c)
			}
		})
	}
}

// Start begins watching. The parent directory is watched rather than the
// file itself because editors often replace files by rename.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.mu.Lock()
	w.started = true
	w.mu.Unlock()
	go w.run()
	return nil
}

// Close stops watching and closes every subscriber channel.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()

	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if started {
		<-w.done
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for id, ch := range w.subs {
		delete(w.subs, id)
		close(ch)
	}
	return err
}

// run processes events until Close.
func (w *Watcher) run() {
	defer close(w.done)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

// relevant reports whether event touches the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// reload loads the file and broadcasts it when valid.
func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous config", "path", w.path, "error", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path, "commands", len(cfg.Commands))
	w.broadcast(cfg)
}

// broadcast delivers cfg to every subscriber, replacing any value a slow
// subscriber has not picked up yet.
func (w *Watcher) broadcast(cfg *Config) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ch := range w.subs {
		select {
		case <-ch:
		default:
		}
		ch <- cfg
	}
}
