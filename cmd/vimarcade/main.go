package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/willibrandon/vimarcade/internal/config"
	"github.com/willibrandon/vimarcade/internal/logger"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vimarcade",
		Short: "Timed vim command drills in your terminal",
		Long: `vimarcade asks you to perform small editing tasks with vim commands
against a sample buffer before the clock runs out. Scores are kept per player
in a local SQLite database or a shared PostgreSQL server.

Commands:
  vimarcade [play] [--player NAME]   Start a game (default)
  vimarcade scores                   Show the leaderboard
  vimarcade player NAME              Show one player's statistics
  vimarcade questions                List the question catalog`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/vimarcade/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	play := newPlayCmd()
	rootCmd.Flags().AddFlagSet(play.Flags())
	rootCmd.RunE = play.RunE

	rootCmd.AddCommand(
		play,
		newScoresCmd(),
		newPlayerCmd(),
		newQuestionsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

// setup loads the configuration and starts file logging.
func setup() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if err := logger.Init(logger.Options{Level: level, Path: config.DefaultLogPath()}); err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded",
		"driver", cfg.Storage.Driver,
		"duration", cfg.Game.Duration,
		"config", configPath)

	return cfg, nil
}
