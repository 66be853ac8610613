// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// resolve_cmd.go - "sttp resolve": print or open what text resolves to.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/app"
	"github.com/jeranaias/sttp/internal/commands"
)

// ResolutionInfo is the flattened, printable form of a Resolution.
type ResolutionInfo struct {
	Input       string `json:"input"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Key         string `json:"key,omitempty"`
	Name        string `json:"name,omitempty"`
	Redirect    string `json:"redirect,omitempty"`
	Term        string `json:"term,omitempty"`
	Path        string `json:"path,omitempty"`
	Special     string `json:"special,omitempty"`
}

// NewResolutionInfo flattens r for input.
func NewResolutionInfo(input string, r commands.Resolution) ResolutionInfo {
	info := ResolutionInfo{
		Input:       input,
		Kind:        r.Kind().String(),
		Description: commands.Describe(r),
	}
	if cmd, ok := commands.CommandOf(r); ok {
		info.Key, info.Name = cmd.Key, cmd.Name
	}
	info.Redirect, _ = commands.RedirectOf(r)

	switch v := r.(type) {
	case commands.SearchMatch:
		info.Term = v.Term
	case commands.FallbackMatch:
		info.Term = v.Term
	case commands.PathMatch:
		info.Path = v.Path
	case commands.SpecialMatch:
		info.Special = v.Token.String()
	}
	return info
}

func newResolveCmd(e *env) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "resolve <text>...",
		Short: "Print what text resolves to",
		Long: `Print what text resolves to. Arguments are joined with spaces.

With --open the redirect is opened and special commands run, exactly as
if the text had been entered on the startpage.`,
		Example: `  sttp resolve g:react
  sttp resolve --json "r/golang"
  sttp resolve --open y:lofi`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if open {
				return runSubmit(cmd, e, input)
			}

			a, err := e.application(cmd)
			if err != nil {
				return err
			}
			info := NewResolutionInfo(input, a.Resolve(input))
			return writeResult(cmd, e, "resolve", info, func(w io.Writer) error {
				return printResolution(w, info)
			})
		},
	}
	cmd.Flags().BoolVarP(&open, "open", "o", false, "open the redirect (or run the special command)")
	return cmd
}

// printResolution prints info as aligned "label: value" lines.
func printResolution(w io.Writer, info ResolutionInfo) error {
	rows := [][2]string{
		{"kind", info.Kind},
		{"status", info.Description},
		{"command", strings.TrimSpace(info.Key + " " + info.Name)},
		{"term", info.Term},
		{"path", info.Path},
		{"special", info.Special},
		{"redirect", info.Redirect},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", MutedStyle.Render(fmt.Sprintf("%-9s", row[0]+":")), row[1]); err != nil {
			return err
		}
	}
	return nil
}

// runSubmit submits input through the app and reports the outcome.
func runSubmit(cmd *cobra.Command, e *env, input string) error {
	a, err := e.application(cmd)
	if err != nil {
		return err
	}
	res, err := a.Submit(cmd.Context(), input)
	if err != nil {
		if len(res.Hints) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(res.Hints, ", "))
		}
		return failJSON(cmd, e, "resolve", err)
	}

	type submitInfo struct {
		ResolutionInfo
		Action  string `json:"action"`
		Opened  int    `json:"opened,omitempty"`
		Enabled *bool  `json:"enabled,omitempty"`
	}
	info := submitInfo{
		ResolutionInfo: NewResolutionInfo(input, res.Resolution),
		Action:         res.Action.String(),
		Opened:         res.Opened,
	}
	if res.Action == app.ActionInverted || res.Action == app.ActionKeysToggled {
		info.Enabled = &res.Enabled
	}

	return writeResult(cmd, e, "resolve", info, func(w io.Writer) error {
		return printAction(w, e, a, res)
	})
}

// printAction prints the human readable outcome of a submit.
func printAction(w io.Writer, e *env, a *app.App, res app.Result) error {
	var err error
	switch res.Action {
	case app.ActionOpened:
		if !e.opts.dryRun {
			_, err = fmt.Fprintln(w, SuccessStyle.Render("Opened "+res.URL))
		}
	case app.ActionBatchLaunched:
		_, err = fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Opened %d pages", res.Opened)))
	case app.ActionInverted:
		_, err = fmt.Fprintf(w, "Inverted colors: %s\n", onOff(res.Enabled))
	case app.ActionKeysToggled:
		_, err = fmt.Fprintf(w, "Show keys: %s\n", onOff(res.Enabled))
	case app.ActionHelp:
		cfg := a.Config()
		_, err = io.WriteString(w, renderMarkdown(cfg, helpMarkdown(cfg)))
	case app.ActionSettings:
		var data []byte
		if data, err = a.Config().ExportSettings(); err == nil {
			_, err = fmt.Fprintln(w, strings.TrimSpace(string(data)))
		}
	}
	return err
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
