package app

import (
	"context"
	"fmt"

	"github.com/willibrandon/vimarcade/internal/config"
	"github.com/willibrandon/vimarcade/internal/logger"
	"github.com/willibrandon/vimarcade/internal/storage"
	"github.com/willibrandon/vimarcade/internal/storage/postgres"
	"github.com/willibrandon/vimarcade/internal/storage/sqlite"
)

// connectAttempts bounds PostgreSQL connection retries at startup.
const connectAttempts = 3

// OpenStore opens the score store selected by cfg.Storage.Driver. It returns
// a nil store and no error for the "none" driver.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverNone:
		logger.Info("score storage disabled")
		return nil, nil

	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, postgres.PoolOptions{
			DSN:      cfg.Storage.DSN,
			MaxConns: cfg.Storage.PoolMaxConns,
			Attempts: connectAttempts,
		})
		if err != nil {
			return nil, err
		}
		store, err := postgres.NewPlayerStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil

	case config.DriverSQLite, "":
		store, err := sqlite.OpenPlayerStore(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("opened score database", "path", cfg.Storage.Path)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
