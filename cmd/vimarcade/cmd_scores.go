package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/willibrandon/vimarcade/internal/app"
	"github.com/willibrandon/vimarcade/internal/config"
	"github.com/willibrandon/vimarcade/internal/storage"
)

var errNoStore = errors.New("scores are disabled (storage.driver is none)")

// withStore opens the configured store for one short command.
func withStore(cfg *config.Config, fn func(ctx context.Context, store storage.Store) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*cfg.Storage.Timeout)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return errors.New(app.FormatStorageError(err))
	}
	if store == nil {
		return errNoStore
	}
	defer store.Close()

	return fn(ctx, store)
}

func newScoresCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the leaderboard",
		Long:  `Show players ranked by games played, then by high score.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.UI.LeaderboardSize
			}

			return withStore(cfg, func(ctx context.Context, store storage.Store) error {
				players, err := store.TopPlayers(ctx, limit)
				if err != nil {
					return errors.New(app.FormatStorageError(err))
				}
				if len(players) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No games recorded yet. Be the first!")
					return nil
				}

				table, err := renderLeaderboard(players, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of players to show; 0 uses ui.leaderboard_size")
	return cmd
}
