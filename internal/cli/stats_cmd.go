// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stats_cmd.go - "sttp stats": most used keywords.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/storage"
	"github.com/jeranaias/sttp/internal/util"
)

func newStatsCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the most used keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.opts.noStore {
				return errors.New("stats need the preference database; drop --no-store")
			}
			store, err := e.openStore()
			if err != nil {
				return err
			}

			stats, err := store.TopKeywords(cmd.Context(), limit)
			if err != nil {
				return failJSON(cmd, e, "stats", err)
			}
			if stats == nil {
				stats = []storage.KeywordStat{}
			}
			return writeResult(cmd, e, "stats", stats, func(w io.Writer) error {
				return printStats(w, stats)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of keywords")
	return cmd
}

// printStats prints keyword counts as an aligned table.
func printStats(w io.Writer, stats []storage.KeywordStat) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(w, MutedStyle.Render("No lookups recorded yet."))
		return err
	}

	width := len("KEYWORD")
	for _, s := range stats {
		width = max(width, util.StringWidth(s.Keyword))
	}

	if _, err := fmt.Fprintf(w, "%s  %-9s  %5s  %s\n", util.PadRight("KEYWORD", width), "OUTCOME", "COUNT", "LAST USED"); err != nil {
		return err
	}
	for _, s := range stats {
		_, err := fmt.Fprintf(w, "%s  %-9s  %5d  %s\n",
			util.PadRight(s.Keyword, width), s.Outcome, s.Count, s.LastUsed.Local().Format("2006-01-02 15:04"))
		if err != nil {
			return err
		}
	}
	return nil
}
