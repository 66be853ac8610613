// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// root.go - Root command, global flags and shared command environment.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/app"
	"github.com/jeranaias/sttp/internal/config"
	"github.com/jeranaias/sttp/internal/launch"
	"github.com/jeranaias/sttp/internal/logging"
	"github.com/jeranaias/sttp/internal/storage"
	"github.com/jeranaias/sttp/internal/ui/startpage"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// GLOBAL OPTIONS
// =============================================================================

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	dbPath     string
	logLevel   string
	dryRun     bool
	jsonOut    bool
	noStore    bool
}

// env is built once per invocation in PersistentPreRunE.
type env struct {
	opts   *options
	cfg    *config.Config
	logger *slog.Logger

	// saved is cfg before flag overrides; config edits start from it
	saved *config.Config
	// loadErr is a config file error that fell back to defaults
	loadErr error

	store *storage.Store
	app   *app.App
}

// init loads configuration and logging.
func (e *env) init(cmd *cobra.Command) error {
	var cfg *config.Config
	var loadErr error
	if e.opts.configPath != "" {
		if _, err := os.Stat(e.opts.configPath); errors.Is(err, fs.ErrNotExist) {
			// "sttp init --config <new file>" starts from nothing.
			cfg = config.Default()
		} else if cfg, err = config.LoadFromPath(e.opts.configPath); err != nil {
			return err
		}
	} else {
		cfg, loadErr = config.Load()
		if cfg == nil {
			return loadErr
		}
	}

	e.saved = cfg.Clone()
	if e.opts.logLevel != "" {
		cfg.Log.Level = e.opts.logLevel
	}
	if e.opts.dbPath != "" {
		cfg.Storage.Path = e.opts.dbPath
	}

	e.cfg = cfg
	e.loadErr = loadErr
	e.logger = logging.FromConfig(cmd.ErrOrStderr(), cfg.Log)
	if loadErr != nil {
		e.logger.Warn("config load failed, using defaults", "error", loadErr)
	}
	config.SetGlobal(cfg)
	return nil
}

// openStore opens the preference database unless --no-store was given.
func (e *env) openStore() (*storage.Store, error) {
	if e.opts.noStore {
		return nil, nil
	}
	if e.store != nil {
		return e.store, nil
	}
	path, err := e.cfg.StoragePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	e.store = store
	return store, nil
}

// opener returns the URL opener for this invocation. Without a usable
// browser opener every launch fails with launch.ErrNoOpener.
func (e *env) opener(out io.Writer) launch.Opener {
	if e.opts.dryRun {
		return launch.NewDryRunOpener(out)
	}
	o, err := launch.NewCommandOpener(e.cfg.Launch.Opener)
	if err != nil {
		e.logger.Debug("no URL opener", "error", err)
		return launch.OpenerFunc(func(context.Context, string) error { return err })
	}
	return o
}

// application builds the shared app core, opening the store on demand.
func (e *env) application(cmd *cobra.Command) (*app.App, error) {
	if e.app != nil {
		return e.app, nil
	}
	store, err := e.openStore()
	if err != nil {
		e.logger.Warn("preferences unavailable", "error", err)
		store = nil
	}
	// Keep stdout clean for the JSON envelope.
	out := cmd.OutOrStdout()
	if e.opts.jsonOut {
		out = cmd.ErrOrStderr()
	}
	l := launch.NewLauncher(e.opener(out), e.cfg.Launch.Rate, e.cfg.Launch.Burst, e.logger)
	e.app = app.New(e.cfg, l, store, e.logger)
	return e.app, nil
}

// close releases the store.
func (e *env) close() error {
	if e.store == nil {
		return nil
	}
	err := e.store.Close()
	e.store = nil
	return err
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCmd builds the sttp command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	e := &env{opts: opts}

	root := &cobra.Command{
		Use:   "sttp",
		Short: "Keyboard-driven startpage for the terminal",
		Long: `sttp turns short commands into URLs: "g:react" searches GitHub,
"r/golang" opens a subreddit, a domain opens directly and anything else
goes to the default search engine.

Run without arguments for the startpage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return unknownCommandError(cmd, args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStartpage(cmd, e)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.sttp/config.toml)")
	pf.StringVar(&opts.dbPath, "db", "", "preference database (default ~/.sttp/sttp.db)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&opts.dryRun, "dry-run", false, "print URLs instead of opening them")
	pf.BoolVar(&opts.jsonOut, "json", false, "output JSON")
	pf.BoolVar(&opts.noStore, "no-store", false, "do not read or write the preference database")

	root.AddCommand(
		newPromptCmd(e),
		newResolveCmd(e),
		newSuggestCmd(e),
		newCommandsCmd(e),
		newConfigCmd(e),
		newStatsCmd(e),
		newInitCmd(e),
		newDoctorCmd(e),
		newVersionCmd(e),
	)
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// runStartpage opens the TUI, or the line prompt when not on a terminal.
func runStartpage(cmd *cobra.Command, e *env) error {
	if !IsInteractive() {
		return runPrompt(cmd, e)
	}

	a, err := e.application(cmd)
	if err != nil {
		return err
	}

	var opts []startpage.Option
	if w, err := startWatcher(e); err != nil {
		e.logger.Warn("config hot reload disabled", "error", err)
	} else {
		defer w.Close()
		updates, unsubscribe := w.Subscribe()
		defer unsubscribe()
		opts = append(opts, startpage.WithConfigUpdates(updates))
	}

	return startpage.Run(cmd.Context(), a, opts...)
}

// startWatcher watches the active config file for edits.
func startWatcher(e *env) (*config.Watcher, error) {
	path := e.cfg.Source()
	if path == "" {
		if err := config.EnsureConfigDir(); err != nil {
			return nil, err
		}
		var err error
		if path, err = config.ConfigPathTOML(); err != nil {
			return nil, err
		}
	}

	w, err := config.NewWatcher(path, config.DefaultDebounce, e.logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// writeResult prints data as JSON with --json, or calls text otherwise.
func writeResult(cmd *cobra.Command, e *env, name string, data interface{}, text func(w io.Writer) error) error {
	if e.opts.jsonOut {
		return NewJSONResponse(name, data).Write(cmd.OutOrStdout())
	}
	return text(cmd.OutOrStdout())
}

// ErrAlreadyReported wraps errors that were already printed as JSON;
// callers should exit non-zero without printing them again.
var ErrAlreadyReported = errors.New("error reported as JSON")

// failJSON reports err as a JSON envelope when --json is set.
func failJSON(cmd *cobra.Command, e *env, name string, err error) error {
	if !e.opts.jsonOut {
		return err
	}
	if werr := NewJSONErrorResponse(name, err).Write(cmd.OutOrStdout()); werr != nil {
		return werr
	}
	return fmt.Errorf("%w: %w", ErrAlreadyReported, err)
}
