// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - "sttp config": show, edit, export and import settings.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/config"
)

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
		Long: `Show or change configuration. Keys use dot notation such as
"ui.show_keys" or "navigation.search_delimiter"; "sttp config keys" lists
them. Edits are validated before they are written.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(e),
		newConfigGetCmd(e),
		newConfigSetCmd(e),
		newConfigPathCmd(e),
		newConfigKeysCmd(e),
		newConfigExportCmd(e),
		newConfigImportCmd(e),
		newConfigResetCmd(e),
	)
	return cmd
}

// ===== SHOW / GET =====

func newConfigShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeResult(cmd, e, "config show", e.cfg, func(w io.Writer) error {
				return toml.NewEncoder(w).Encode(e.cfg)
			})
		},
	}
}

func newConfigGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			value, err := e.cfg.Get(key)
			if err != nil {
				return failJSON(cmd, e, "config get", err)
			}
			data := map[string]interface{}{"key": key, "value": value}
			return writeResult(cmd, e, "config get", data, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, formatValue(value))
				return err
			})
		},
	}
}

// formatValue prints slices as the comma separated form "config set"
// accepts.
func formatValue(v interface{}) string {
	if items, ok := v.([]string); ok {
		return strings.Join(items, ",")
	}
	return fmt.Sprint(v)
}

// ===== SET =====

func newConfigSetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value",
		Example: `  sttp config set ui.show_keys true
  sttp config set navigation.search_delimiter ";"
  sttp config set navigation.key_prefixed_paths r,u`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := strings.ToLower(args[0]), args[1]

			next := e.saved.Clone()
			if err := next.Set(key, value); err != nil {
				return failJSON(cmd, e, "config set", err)
			}
			if err := next.Validate(); err != nil {
				return failJSON(cmd, e, "config set", fmt.Errorf("invalid configuration value: %w", err))
			}
			if err := e.save(next); err != nil {
				return failJSON(cmd, e, "config set", fmt.Errorf("failed to save config: %w", err))
			}
			e.logger.Debug("config updated", "key", key)

			data := map[string]string{"key": key, "value": value}
			return writeResult(cmd, e, "config set", data, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %s = %s\n", SuccessStyle.Render("[OK]"), key, value)
				return err
			})
		},
	}
}

// ===== PATH / KEYS =====

func newConfigPathCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, loaded, err := configFile(e)
			if err != nil {
				return failJSON(cmd, e, "config path", err)
			}
			data := map[string]interface{}{"path": path, "exists": loaded}
			return writeResult(cmd, e, "config path", data, func(w io.Writer) error {
				if loaded {
					_, err := fmt.Fprintln(w, path)
					return err
				}
				_, err := fmt.Fprintf(w, "%s %s\n", path, MutedStyle.Render("(not created yet, using defaults)"))
				return err
			})
		},
	}
}

// configFile returns the file config edits are written to and whether
// the configuration was loaded from it.
func configFile(e *env) (string, bool, error) {
	if src := e.saved.Source(); src != "" {
		return src, true, nil
	}
	if e.opts.configPath != "" {
		return e.opts.configPath, false, nil
	}
	path, err := config.ConfigPathTOML()
	return path, false, err
}

// save writes cfg to the file reported by configFile.
func (e *env) save(cfg *config.Config) error {
	path, _, err := configFile(e)
	if err != nil {
		return err
	}
	return config.SaveTo(cfg, path)
}

func newConfigKeysCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys accepted by get and set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := config.GetAllKeys()
			return writeResult(cmd, e, "config keys", keys, func(w io.Writer) error {
				for _, k := range keys {
					if _, err := fmt.Fprintln(w, k); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// ===== PORTABLE SETTINGS =====

func newConfigExportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file|-]",
		Short: "Write the portable settings as JSON",
		Long: `Write the portable settings as JSON, to ` + config.SettingsFileName + `
in the current directory by default or to stdout with "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.SettingsFileName
			if len(args) == 1 {
				path = args[0]
			}

			if path == "-" {
				data, err := e.cfg.ExportSettings()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			if err := e.cfg.ExportSettingsFile(path); err != nil {
				return failJSON(cmd, e, "config export", err)
			}
			data := map[string]string{"path": path}
			return writeResult(cmd, e, "config export", data, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s Settings exported to %s\n", SuccessStyle.Render("[OK]"), path)
				return err
			})
		},
	}
}

func newConfigImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Apply a settings JSON file and save it",
		Long: `Apply a settings JSON file and save the result. Unknown keys are
ignored and keys missing from the file keep their current values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			next := e.saved.Clone()

			var applied []string
			var err error
			if args[0] == "-" {
				var data []byte
				if data, err = io.ReadAll(cmd.InOrStdin()); err == nil {
					applied, err = next.ImportSettings(data)
				}
			} else {
				applied, err = next.ImportSettingsFile(args[0])
			}
			if err != nil {
				return failJSON(cmd, e, "config import", err)
			}

			if err := e.save(next); err != nil {
				return failJSON(cmd, e, "config import", fmt.Errorf("failed to save config: %w", err))
			}
			e.logger.Info("settings imported", "keys", len(applied))

			if applied == nil {
				applied = []string{}
			}
			return writeResult(cmd, e, "config import", applied, func(w io.Writer) error {
				if len(applied) == 0 {
					_, err := fmt.Fprintln(w, MutedStyle.Render("No known settings in file."))
					return err
				}
				_, err := fmt.Fprintf(w, "%s Imported %s\n", SuccessStyle.Render("[OK]"), strings.Join(applied, ", "))
				return err
			})
		},
	}
}

func newConfigResetCmd(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the portable settings to their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && IsInteractive() && !e.opts.jsonOut {
				fmt.Fprint(cmd.OutOrStdout(), PromptStyle.Render("Reset all settings to defaults? [y/N] "))
				var answer string
				fmt.Fscanln(os.Stdin, &answer)
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return err
				}
			}

			next := e.saved.Clone()
			next.ResetSettings()
			if err := e.save(next); err != nil {
				return failJSON(cmd, e, "config reset", fmt.Errorf("failed to save config: %w", err))
			}

			return writeResult(cmd, e, "config reset", next.Settings(), func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s Settings reset to defaults\n", SuccessStyle.Render("[OK]"))
				return err
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
