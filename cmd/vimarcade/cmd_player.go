package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/willibrandon/vimarcade/internal/app"
	"github.com/willibrandon/vimarcade/internal/storage"
)

func newPlayerCmd() *cobra.Command {
	var games int

	cmd := &cobra.Command{
		Use:   "player NAME",
		Short: "Show one player's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			return withStore(cfg, func(ctx context.Context, store storage.Store) error {
				rec, err := store.GetPlayer(ctx, args[0])
				if errors.Is(err, storage.ErrPlayerNotFound) {
					return fmt.Errorf("player not found: %s", args[0])
				}
				if err != nil {
					return errors.New(app.FormatStorageError(err))
				}

				results, err := store.RecentResults(ctx, rec.Username, games)
				if err != nil {
					return errors.New(app.FormatStorageError(err))
				}

				fmt.Fprint(cmd.OutOrStdout(), renderPlayer(rec, results, cfg.UI.DateFormat, time.Now()))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&games, "games", "g", 10, "number of recent games to list (0 for all)")
	return cmd
}
