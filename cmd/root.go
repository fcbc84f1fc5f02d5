// Package cmd implements the flowdo CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/activity"
	"github.com/twiced-technology-gmbh/flowdo/internal/app"
	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
	"github.com/twiced-technology-gmbh/flowdo/internal/config"
	"github.com/twiced-technology-gmbh/flowdo/internal/kv"
	"github.com/twiced-technology-gmbh/flowdo/internal/logging"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
	"github.com/twiced-technology-gmbh/flowdo/internal/persist"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagDir     string
	flagNoColor bool
	flagVerbose bool
)

// logger is the console logger; replaced in PersistentPreRun.
var logger = logging.Discard()

var rootCmd = &cobra.Command{
	Use:   "flowdo",
	Short: "A small local task list",
	Long: `flowdo keeps a prioritized task list on your machine.
Run flowdo without arguments to open the interactive list.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
		}
		logger = logging.New(os.Stderr, consoleLogOptions())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to flowdo data directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug details to stderr")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	cliErr := clierr.As(err)
	if outputFormat() == output.FormatJSON {
		output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
		os.Exit(cliErr.ExitCode())
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(cliErr.ExitCode())
}

func consoleLogOptions() logging.Options {
	opts := logging.DefaultOptions()
	if flagVerbose {
		opts.Level = log.DebugLevel
	}
	return opts
}

// resolveDir returns the data directory: --dir, then the nearest .flowdo
// above the working directory, then ~/.config/flowdo.
func resolveDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	dir, err := config.FindDir(cwd)
	if err == nil {
		return dir, nil
	}

	return config.HomeDir()
}

// loadConfig finds and loads the config. The per-user fallback directory is
// created on first use.
func loadConfig() (*config.Config, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err == nil {
		logger.Debug("loaded config", "dir", cfg.Dir(), "backend", cfg.Storage.Backend)
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotFound) {
		return nil, clierr.Wrap(clierr.InvalidConfig, err)
	}

	homeDir, homeErr := config.HomeDir()
	if homeErr != nil || dir != homeDir {
		if flagDir != "" {
			return nil, clierr.Newf(clierr.StoreNotFound,
				"no flowdo directory at %s (run 'flowdo init --dir %s')", flagDir, flagDir)
		}
		return nil, clierr.Wrap(clierr.StoreNotFound, err)
	}

	logger.Debug("creating per-user data directory", "dir", homeDir)
	return config.LoadOrInit(homeDir)
}

// session bundles an App with the resources it holds open.
type session struct {
	cfg   *config.Config
	app   *app.App
	store kv.Store
}

func (s *session) Close() {
	if err := kv.Close(s.store); err != nil {
		logger.Warn("closing storage", "err", err)
	}
}

// openSession loads the config and the persisted collection.
func openSession(l *log.Logger) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := kv.Open(cfg.Storage.Backend, cfg.Dir())
	if err != nil {
		return nil, clierr.Wrap(clierr.StorageError, err)
	}
	if cfg.Storage.Backend == kv.BackendMemory {
		l.Warn("memory backend: changes are lost when flowdo exits")
	}

	adapter := persist.New(store,
		persist.WithKey(cfg.Storage.Key),
		persist.WithLogger(l),
	)
	a := app.New(adapter,
		app.WithJournal(activity.New(cfg.Dir())),
		app.WithLogger(l),
		app.WithFilter(view.ParseFilter(cfg.Defaults.Filter)),
	)
	return &session{cfg: cfg, app: a, store: store}, nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// storageErr marks a failed save.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return clierr.Wrap(clierr.StorageError, err)
}
