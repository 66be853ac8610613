// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// commands_cmd.go - "sttp commands": list the command table.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/util"
)

func newCommandsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "commands",
		Aliases: []string{"ls", "keys"},
		Short:   "List commands by category",
		Long: `List commands by category. The number before each category is the
digit of its "<n>!" launch token; quick launch commands are starred.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := e.cfg.Commands
			return writeResult(cmd, e, "commands", table, func(w io.Writer) error {
				return printCommands(w, table)
			})
		},
	}
}

// printCommands prints table grouped by category with aligned keys and
// names.
func printCommands(w io.Writer, table commands.Table) error {
	keyWidth, nameWidth := 0, 0
	for _, cmd := range table {
		keyWidth = max(keyWidth, util.StringWidth(cmd.Key))
		nameWidth = max(nameWidth, util.StringWidth(cmd.Name))
	}

	byCat := table.ByCategory()
	for i, cat := range table.Categories() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", MutedStyle.Render(fmt.Sprintf("%d!", i+1)), SectionStyle.Render(cat)); err != nil {
			return err
		}

		for _, cmd := range byCat[cat] {
			star := " "
			if cmd.QuickLaunch {
				star = "*"
			}
			target := cmd.URL
			if cmd.SupportsSearch() {
				target += MutedStyle.Render(" (search)")
			}
			_, err := fmt.Fprintf(w, "  %s %s %s  %s\n",
				star,
				KeyStyle.Render(util.PadRight(cmd.Key, keyWidth)),
				util.PadRight(cmd.Name, nameWidth),
				target)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
