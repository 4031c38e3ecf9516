// Package postgres provides PostgreSQL storage for player statistics, for
// sharing one leaderboard between several machines.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willibrandon/vimarcade/internal/logger"
)

// PoolOptions configures Connect.
type PoolOptions struct {
	DSN      string
	MaxConns int
	// Attempts is how many times to try before giving up (default 1).
	Attempts int
}

// Connect creates a connection pool and checks it with a round trip. Failed
// attempts back off 1s, 2s, 4s... capped at 30s, and stop early when ctx ends.
func Connect(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if opts.MaxConns > 0 {
		poolConfig.MaxConns = int32(opts.MaxConns)
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "vimarcade"

	attempts := max(1, opts.Attempts)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := backoff(attempt - 1)
			logger.Debug("Waiting before reconnection attempt", "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled after %d attempts: %w", attempt-1, lastErr)
			case <-time.After(delay):
			}
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			err = validate(ctx, pool)
			if err != nil {
				pool.Close()
			}
		}
		if err == nil {
			logger.Info("PostgreSQL connection pool created",
				"host", poolConfig.ConnConfig.Host,
				"database", poolConfig.ConnConfig.Database,
				"max_conns", poolConfig.MaxConns,
			)
			return pool, nil
		}

		lastErr = err
		logger.Warn("PostgreSQL connection attempt failed", "attempt", attempt, "error", err)
	}

	return nil, fmt.Errorf("connection refused: ensure PostgreSQL is running on %s:%d (error: %w)",
		poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port, lastErr)
}

// backoff returns the wait before retry n (1-based): 2^(n-1) seconds, capped
// at 30 seconds.
func backoff(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	if n > 6 {
		return 30 * time.Second
	}
	return min(time.Duration(1<<uint(n-1))*time.Second, 30*time.Second)
}

func validate(ctx context.Context, pool *pgxpool.Pool) error {
	var version string
	if err := pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return fmt.Errorf("connection validation failed: %w", err)
	}
	logger.Debug("Connected to PostgreSQL", "version", version)
	return nil
}
