// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/app"
)

// SuggestCommand returns the subcommand closest to input, or "" when none
// is close. Very short inputs are never corrected.
func SuggestCommand(root *cobra.Command, input string) string {
	if len(input) < 2 {
		return ""
	}

	// For very short commands (<=3 chars): allow 1 edit
	// For short and medium commands: allow 2 edits
	// For longer commands: allow 3 edits
	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}
	if len(input) > 8 {
		maxDistance = 3
	}

	var names []string
	for _, c := range root.Commands() {
		if c.Hidden {
			continue
		}
		names = append(names, c.Name())
		names = append(names, c.Aliases...)
	}

	if matches := app.DidYouMean(input, names, maxDistance); len(matches) > 0 {
		return matches[0]
	}
	return ""
}

// unknownCommandError formats the error for an unknown subcommand.
func unknownCommandError(root *cobra.Command, input string) error {
	if s := SuggestCommand(root, input); s != "" {
		return fmt.Errorf("unknown command %q\n\nDid you mean %q?", input, s)
	}
	return fmt.Errorf("unknown command %q (see 'sttp --help'; to resolve text use 'sttp resolve %s')", input, input)
}
