// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launch

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/logging"
)

// recorder is an Opener that remembers every URL it was asked to open.
type recorder struct {
	mu     sync.Mutex
	urls   []string
	failOn string
}

func (r *recorder) Open(ctx context.Context, url string) error {
	if url == r.failOn {
		return errors.New("boom")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return nil
}

func (r *recorder) opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

func fastLauncher(o Opener) *Launcher {
	return NewLauncher(o, 1000, 10, logging.Discard())
}

func TestLaunch(t *testing.T) {
	rec := &recorder{}
	l := fastLauncher(rec)

	require.NoError(t, l.Launch(context.Background(), "https://github.com"))
	assert.Equal(t, []string{"https://github.com"}, rec.opened())
}

func TestLaunchError(t *testing.T) {
	rec := &recorder{failOn: "https://bad"}
	l := fastLauncher(rec)

	assert.Error(t, l.Launch(context.Background(), "https://bad"))
	assert.Empty(t, rec.opened())
}

func TestLaunchAllKeepsOrderAndCollectsErrors(t *testing.T) {
	rec := &recorder{failOn: "b"}
	l := fastLauncher(rec)

	n, err := l.LaunchAll(context.Background(), []string{"a", "b", "c"})
	assert.Error(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "c"}, rec.opened())
}

func TestLaunchAllIsPaced(t *testing.T) {
	rec := &recorder{}
	l := NewLauncher(rec, 20, 1, logging.Discard())

	start := time.Now()
	n, err := l.LaunchAll(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	// burst 1 at 20/s: two waits of ~50ms each
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestLaunchAllStopsOnCancel(t *testing.T) {
	rec := &recorder{}
	l := NewLauncher(rec, 0.5, 1, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	n, err := l.LaunchAll(ctx, []string{"a", "b", "c"})
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"a"}, rec.opened())
}

func TestQuickLaunch(t *testing.T) {
	rec := &recorder{}
	l := fastLauncher(rec)

	n, err := l.QuickLaunch(context.Background(), commands.DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"https://github.com", "https://reddit.com", "https://youtube.com"}, rec.opened())
}

func TestQuickLaunchNothingFlagged(t *testing.T) {
	l := fastLauncher(&recorder{})
	table := commands.Table{{Key: "x", Name: "X", URL: "https://x.com", Category: "A"}}

	_, err := l.QuickLaunch(context.Background(), table)
	assert.ErrorIs(t, err, ErrNothingToLaunch)
}

func TestCategoryLaunch(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    []string
		wantErr error
	}{
		{
			name:  "social",
			index: 2,
			want:  []string{"https://reddit.com", "https://twitter.com", "https://linkedin.com"},
		},
		{
			name:  "general",
			index: 0,
			want:  []string{"https://github.com", "https://mail.google.com", "https://drive.google.com", "https://calendar.google.com"},
		},
		{name: "out of range", index: 9, wantErr: ErrNoCategory},
		{name: "zero digit", index: -1, wantErr: ErrNoCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			l := fastLauncher(rec)

			n, err := l.CategoryLaunch(context.Background(), commands.DefaultTable(), tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, rec.opened())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.want, rec.opened())
		})
	}
}

func TestDryRunOpener(t *testing.T) {
	var buf bytes.Buffer
	l := fastLauncher(NewDryRunOpener(&buf))

	_, err := l.LaunchAll(context.Background(), []string{"https://a.com", "https://b.com"})
	require.NoError(t, err)
	assert.Equal(t, "open https://a.com\nopen https://b.com\n", buf.String())
}

func TestOpenerFunc(t *testing.T) {
	var got string
	o := OpenerFunc(func(ctx context.Context, url string) error {
		got = url
		return nil
	})
	require.NoError(t, o.Open(context.Background(), "https://x"))
	assert.Equal(t, "https://x", got)
}

func TestPlatformCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux", "xdg-open", nil},
		{"freebsd", "xdg-open", nil},
		{"darwin", "open", nil},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := PlatformCommand(tt.goos)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCommandOpenerArgs(t *testing.T) {
	tests := []struct {
		name   string
		opener CommandOpener
		want   []string
	}{
		{
			name:   "appended",
			opener: CommandOpener{Name: "firefox", Args: []string{"--new-tab"}},
			want:   []string{"firefox", "--new-tab", "https://x.com"},
		},
		{
			name:   "placeholder",
			opener: CommandOpener{Name: "browser", Args: []string{"--url={url}", "--private"}},
			want:   []string{"browser", "--url=https://x.com", "--private"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.opener.Command(context.Background(), "https://x.com")
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}

func TestNewCommandOpenerMissingBinary(t *testing.T) {
	_, err := NewCommandOpener("sttp-no-such-browser-binary --flag")
	assert.ErrorIs(t, err, ErrNoOpener)
}
