// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest_cmd.go - "sttp suggest": print suggestions for partial text.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/commands"
)

// SuggestionInfo is one suggestion with the value it completes to.
type SuggestionInfo struct {
	Text      string `json:"text"`
	Canonical string `json:"canonical"`
}

func newSuggestCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <text>...",
		Short: "Print suggestions for partial text",
		Long: `Print suggestions for partial text, best first. The limit defaults to
suggestions.max and ignores suggestions.enabled.`,
		Example: `  sttp suggest goo
  sttp suggest --limit 10 r`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			if limit == 0 {
				limit = e.cfg.Suggestions.Max
			}

			partial := strings.Join(args, " ")
			items := e.cfg.NewSuggester().Suggest(partial, limit)

			infos := make([]SuggestionInfo, 0, len(items))
			for _, s := range items {
				infos = append(infos, SuggestionInfo{Text: s, Canonical: commands.Canonical(s)})
			}

			return writeResult(cmd, e, "suggest", infos, func(w io.Writer) error {
				for _, s := range items {
					if _, err := fmt.Fprintln(w, s); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of suggestions (default suggestions.max)")
	return cmd
}
