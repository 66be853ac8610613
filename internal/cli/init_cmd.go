// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// init_cmd.go - "sttp init": write a default configuration file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/config"
)

// ErrConfigExists is returned by "sttp init" when the file is present.
var ErrConfigExists = errors.New("config file already exists")

func newInitCmd(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration, including the built-in command
table, to ~/.sttp/config.toml (or the --config path) so it can be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.opts.configPath
			if path == "" {
				var err error
				if path, err = config.ConfigPathTOML(); err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return failJSON(cmd, e, "init", fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path))
			}

			if err := config.SaveTo(config.Default(), path); err != nil {
				return failJSON(cmd, e, "init", err)
			}
			e.logger.Info("config written", "path", path)

			data := map[string]string{"path": path}
			return writeResult(cmd, e, "init", data, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s Wrote default configuration to %s\n", SuccessStyle.Render("[OK]"), path)
				return err
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
