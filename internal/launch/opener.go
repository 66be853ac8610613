// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// ErrNoOpener is returned when no program is available to open URLs.
var ErrNoOpener = errors.New("no URL opener available")

// URLPlaceholder in a configured opener command is replaced by the URL.
// Without it the URL is appended as the last argument.
const URLPlaceholder = "{url}"

// Opener opens a single URL.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, url string) error

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, url string) error {
	return f(ctx, url)
}

// =============================================================================
// COMMAND OPENER
// =============================================================================

// CommandOpener opens URLs by starting an external program.
type CommandOpener struct {
	Name string
	Args []string
}

// PlatformCommand returns the default opener program for goos.
func PlatformCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// NewCommandOpener builds an opener from a command line such as
// "firefox --new-tab". An empty command selects the platform default.
func NewCommandOpener(command string) (*CommandOpener, error) {
	var name string
	var args []string
	if fields := strings.Fields(command); len(fields) > 0 {
		name, args = fields[0], fields[1:]
	} else {
		name, args = PlatformCommand(runtime.GOOS)
	}

	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoOpener, name, err)
	}
	return &CommandOpener{Name: name, Args: args}, nil
}

// Command builds the process that opens url.
func (o *CommandOpener) Command(ctx context.Context, url string) *exec.Cmd {
	args := make([]string, 0, len(o.Args)+1)
	substituted := false
	for _, a := range o.Args {
		if strings.Contains(a, URLPlaceholder) {
			a = strings.ReplaceAll(a, URLPlaceholder, url)
			substituted = true
		}
		args = append(args, a)
	}
	if !substituted {
		args = append(args, url)
	}
	return exec.CommandContext(ctx, o.Name, args...)
}

// Open starts the opener and returns without waiting for the browser.
func (o *CommandOpener) Open(ctx context.Context, url string) error {
	// The browser may outlive the request; do not tie it to ctx.
	cmd := o.Command(context.WithoutCancel(ctx), url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", o.Name, err)
	}
	go cmd.Wait()
	return nil
}

// =============================================================================
// DRY RUN OPENER
// =============================================================================

// DryRunOpener prints URLs instead of opening them.
type DryRunOpener struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDryRunOpener writes "open <url>" lines to w.
func NewDryRunOpener(w io.Writer) *DryRunOpener {
	return &DryRunOpener{w: w}
}

// Open prints url.
func (o *DryRunOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintf(o.w, "open %s\n", url)
	return err
}
