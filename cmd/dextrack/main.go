package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/dextrack/internal/adapter"
	"github.com/mmcdole/dextrack/internal/adapter/source"
	"github.com/mmcdole/dextrack/internal/service"
	"github.com/mmcdole/dextrack/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

// app holds everything wired up by the root command's PersistentPreRunE
type app struct {
	cfg       *adapter.Config
	logger    *slog.Logger
	logCloser io.Closer
	store     *store.DocumentStore
	source    *source.FileSource
	progress  *service.ProgressionService
	profiles  *service.ProfileService
}

var current *app

var configFile string

var rootCmd = &cobra.Command{
	Use:   "dextrack",
	Short: "Track Pokédex progress, milestones and rewards",
	Long: `dextrack - Pokédex progress tracker with a milestone engine.

Reads a collection snapshot (Pokédex forme statuses and stored vault records),
computes national and regional completion, and lets you claim milestone rewards.

Examples:
  dextrack progress                 # Show dex and vault progress
  dextrack milestones --status claimable
  dextrack claim kanto_50           # Claim one milestone
  dextrack claim --all              # Claim everything that is ready
  dextrack transfer 10              # Record 10 duplicates released
  dextrack tui                      # Interactive milestone board`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipWiring(cmd) {
			return nil
		}
		a, err := wire(cmd)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if isTerminal(cmd.OutOrStdout()) {
			return runTUI(cmd, args)
		}
		return runProgress(cmd, args)
	},
}

func init() {
	// runs after every Execute, including failed ones, so the bolt lock is released
	cobra.OnFinalize(func() {
		if current == nil {
			return
		}
		if err := current.close(); err != nil {
			current.logger.Error("failed to close store", "error", err)
		}
		current = nil
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/dextrack/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "progression database path")
	rootCmd.PersistentFlags().String("snapshot", "", "collection snapshot file (.json or .yaml)")
	rootCmd.PersistentFlags().String("profile", "", "profile id to track")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(grantsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func skipWiring(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return cmd.Parent() == configCmd
}

// loadConfig reads the config file and environment, then applies flags the user set
func loadConfig(cmd *cobra.Command) (*adapter.Config, error) {
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.Path, _ = flags.GetString("db")
	}
	if flags.Changed("snapshot") {
		cfg.Collection.Snapshot, _ = flags.GetString("snapshot")
	}
	if flags.Changed("profile") {
		cfg.Profile.ID, _ = flags.GetString("profile")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	return cfg, nil
}

func wire(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, closer = adapter.NullLogger(), io.NopCloser(nil)
	}
	slog.SetDefault(logger)
	logger.Info("starting dextrack", "version", Version, "profile", cfg.Profile.ID)

	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		closer.Close()
		return nil, errors.WithHint(
			errors.Wrap(err, "failed to open progression store"),
			"is another dextrack process running?")
	}

	src := source.NewFileSource(cfg.Collection.Snapshot, logger)
	return &app{
		cfg:       cfg,
		logger:    logger,
		logCloser: closer,
		store:     st,
		source:    src,
		progress:  service.NewProgressionService(src, st, st, cfg.Profile.ID, logger),
		profiles:  service.NewProfileService(st, cfg.Profile.ID, logger),
	}, nil
}

func (a *app) close() error {
	err := a.store.Close()
	a.logger.Info("shutting down")
	a.logCloser.Close()
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			pterm.Info.Println(hint)
		}
		os.Exit(1)
	}
}
