// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Line prompt with history and tab completion.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/app"
	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/config"
)

// HistoryFileName is the prompt history file inside the config directory.
const HistoryFileName = "prompt_history"

// =============================================================================
// INPUT HISTORY
// =============================================================================

// PromptCLI provides input history and line editing for the prompt.
type PromptCLI struct {
	line        *liner.State
	historyFile string
}

// NewPromptCLI creates a line editor whose Tab completes with complete.
func NewPromptCLI(complete func(line string) []string) *PromptCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(complete)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	p := &PromptCLI{
		line:        line,
		historyFile: filepath.Join(configDir, HistoryFileName),
	}
	p.LoadHistory()
	return p
}

// LoadHistory loads command history from file.
func (p *PromptCLI) LoadHistory() {
	if f, err := os.Open(p.historyFile); err == nil {
		p.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (p *PromptCLI) ReadInput(prompt string) (string, error) {
	input, err := p.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		p.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history, readable by the owner only.
func (p *PromptCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(p.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	p.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (p *PromptCLI) Close() {
	p.SaveHistory()
	p.line.Close()
}

// completer offers canonical suggestions for the whole line.
func completer(a *app.App) func(line string) []string {
	return func(line string) []string {
		seen := make(map[string]bool)
		var out []string
		for _, s := range a.Suggest(line) {
			c := commands.Canonical(s)
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
		return out
	}
}

// =============================================================================
// PROMPT COMMAND
// =============================================================================

func newPromptCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Line prompt with tab completion",
		Long: `Read commands line by line. Tab completes from the suggestion list,
Up and Down walk the history, Ctrl+D or Ctrl+C quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, e)
		},
	}
}

// runPrompt runs the read-submit loop until EOF or Ctrl+C.
func runPrompt(cmd *cobra.Command, e *env) error {
	a, err := e.application(cmd)
	if err != nil {
		return err
	}

	p := NewPromptCLI(completer(a))
	defer p.Close()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for {
		input, err := p.ReadInput(PromptStyle.Render("sttp> "))
		if err != nil {
			// Ctrl+C (liner.ErrPromptAborted) and EOF both end the session.
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		submitLine(cmd, e, a, input, out, errOut)
	}
}

// submitLine submits one prompt line and prints the outcome.
func submitLine(cmd *cobra.Command, e *env, a *app.App, input string, out, errOut io.Writer) {
	res, err := a.Submit(cmd.Context(), input)
	if err != nil {
		msg := err.Error()
		if len(res.Hints) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(res.Hints, ", "))
		}
		fmt.Fprintf(errOut, "%s %s\n", ErrorStyle.Render("[Error]"), msg)
		return
	}
	if err := printAction(out, e, a, res); err != nil {
		fmt.Fprintf(errOut, "%s %v\n", ErrorStyle.Render("[Error]"), err)
	}
}
