// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/jeranaias/sttp/internal/commands"
)

// ErrNoCategory is returned for a category launch with no such category.
var ErrNoCategory = errors.New("no such category")

// ErrNothingToLaunch is returned when a batch selects no commands.
var ErrNothingToLaunch = errors.New("nothing to launch")

// Launcher opens URLs and paces batches.
type Launcher struct {
	opener  Opener
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewLauncher creates a launcher that opens at most perSecond URLs per
// second in batches after an initial burst. A nil logger uses
// slog.Default.
func NewLauncher(opener Opener, perSecond float64, burst int, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	if burst < 1 {
		burst = 1
	}
	return &Launcher{
		opener:  opener,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

// Launch opens a single URL immediately.
func (l *Launcher) Launch(ctx context.Context, url string) error {
	if err := l.opener.Open(ctx, url); err != nil {
		l.logger.Warn("launch failed", "url", url, "error", err)
		return err
	}
	l.logger.Info("launch", "url", url)
	return nil
}

// LaunchAll opens urls in order, waiting on the rate limiter between
// them. Failures of single URLs are collected; a cancelled context stops
// the batch.
func (l *Launcher) LaunchAll(ctx context.Context, urls []string) (int, error) {
	var errs []error
	opened := 0
	for _, url := range urls {
		if err := l.limiter.Wait(ctx); err != nil {
			errs = append(errs, fmt.Errorf("launch batch interrupted: %w", err))
			break
		}
		if err := l.Launch(ctx, url); err != nil {
			errs = append(errs, err)
			continue
		}
		opened++
	}
	return opened, errors.Join(errs...)
}

// QuickLaunch opens every command flagged for quick launch.
func (l *Launcher) QuickLaunch(ctx context.Context, table commands.Table) (int, error) {
	urls := URLs(table.QuickLaunch())
	if len(urls) == 0 {
		return 0, fmt.Errorf("quick launch: %w", ErrNothingToLaunch)
	}
	return l.LaunchAll(ctx, urls)
}

// CategoryLaunch opens every command of the category at the zero-based
// index into table.Categories().
func (l *Launcher) CategoryLaunch(ctx context.Context, table commands.Table, index int) (int, error) {
	cmds := table.InCategory(index)
	if cmds == nil {
		return 0, fmt.Errorf("%w: %d", ErrNoCategory, index+1)
	}
	return l.LaunchAll(ctx, URLs(cmds))
}

// URLs returns the base URLs of cmds.
func URLs(cmds []commands.Command) []string {
	urls := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		urls = append(urls, cmd.URL)
	}
	return urls
}
