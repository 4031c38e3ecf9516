package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willibrandon/vimarcade/internal/storage"
)

var _ storage.Store = (*PlayerStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	username TEXT PRIMARY KEY,
	times_played INTEGER NOT NULL DEFAULT 0,
	highest_score INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL,
	last_played TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS game_results (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL REFERENCES players(username) ON DELETE CASCADE,
	score INTEGER NOT NULL,
	answered INTEGER NOT NULL DEFAULT 0,
	correct INTEGER NOT NULL DEFAULT 0,
	hints INTEGER NOT NULL DEFAULT 0,
	avg_response_ms BIGINT NOT NULL DEFAULT 0,
	played_at TIMESTAMPTZ NOT NULL,
	seq BIGSERIAL
);

CREATE INDEX IF NOT EXISTS idx_players_leaderboard ON players(times_played DESC, highest_score DESC);
CREATE INDEX IF NOT EXISTS idx_game_results_player ON game_results(username, played_at DESC);
`

const playerColumns = `username, times_played, highest_score, created_at, last_played`

// PlayerStore provides PostgreSQL persistence for player statistics.
type PlayerStore struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPlayerStore creates the schema if needed and returns a store over pool.
// Closing the store closes the pool.
func NewPlayerStore(ctx context.Context, pool *pgxpool.Pool) (*PlayerStore, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &PlayerStore{pool: pool, now: time.Now}, nil
}

// RecordGame upserts the player aggregate and appends the result in one
// transaction.
func (s *PlayerStore) RecordGame(ctx context.Context, result storage.GameResult) (storage.PlayerRecord, error) {
	result, err := storage.PrepareResult(result, uuid.NewString, s.now())
	if err != nil {
		return storage.PlayerRecord{}, err
	}

	var rec storage.PlayerRecord
	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO players (username, times_played, highest_score, created_at, last_played)
			VALUES ($1, 1, $2, $3, $3)
			ON CONFLICT (username) DO UPDATE SET
				times_played = players.times_played + 1,
				highest_score = GREATEST(players.highest_score, EXCLUDED.highest_score),
				last_played = GREATEST(players.last_played, EXCLUDED.last_played)
			RETURNING `+playerColumns,
			result.Username, max(0, result.Score), result.PlayedAt)

		var err error
		if rec, err = scanPlayer(row); err != nil {
			return fmt.Errorf("failed to upsert player: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO game_results (id, username, score, answered, correct, hints, avg_response_ms, played_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, result.ID, result.Username, result.Score, result.Answered, result.Correct, result.Hints,
			result.AvgResponse.Milliseconds(), result.PlayedAt)
		if err != nil {
			return fmt.Errorf("failed to insert game result: %w", err)
		}
		return nil
	})
	if err != nil {
		return storage.PlayerRecord{}, err
	}
	return rec, nil
}

// GetPlayer returns one player's aggregate.
func (s *PlayerStore) GetPlayer(ctx context.Context, username string) (storage.PlayerRecord, error) {
	name, err := storage.NormalizeUsername(username)
	if err != nil {
		return storage.PlayerRecord{}, err
	}

	rec, err := scanPlayer(s.pool.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE username = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.PlayerRecord{}, fmt.Errorf("%w: %s", storage.ErrPlayerNotFound, name)
	}
	if err != nil {
		return storage.PlayerRecord{}, fmt.Errorf("failed to get player: %w", err)
	}
	return rec, nil
}

// TopPlayers returns the leaderboard.
// If n is 0, returns every player.
func (s *PlayerStore) TopPlayers(ctx context.Context, n int) ([]storage.PlayerRecord, error) {
	query := `SELECT ` + playerColumns + ` FROM players
		ORDER BY times_played DESC, highest_score DESC, username ASC`
	var args []any
	if n > 0 {
		query += " LIMIT $1"
		args = append(args, n)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var players []storage.PlayerRecord
	for rows.Next() {
		rec, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, rec)
	}
	return players, rows.Err()
}

// RecentResults returns a player's games, newest first.
// If limit is 0, returns all of them.
func (s *PlayerStore) RecentResults(ctx context.Context, username string, limit int) ([]storage.GameResult, error) {
	name, err := storage.NormalizeUsername(username)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, username, score, answered, correct, hints, avg_response_ms, played_at
		FROM game_results
		WHERE username = $1
		ORDER BY played_at DESC, seq DESC
	`
	args := []any{name}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []storage.GameResult
	for rows.Next() {
		var r storage.GameResult
		var avgMs int64
		if err := rows.Scan(&r.ID, &r.Username, &r.Score, &r.Answered, &r.Correct, &r.Hints, &avgMs, &r.PlayedAt); err != nil {
			return nil, err
		}
		r.AvgResponse = time.Duration(avgMs) * time.Millisecond
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the connection pool.
func (s *PlayerStore) Close() error {
	s.pool.Close()
	return nil
}

func scanPlayer(row pgx.Row) (storage.PlayerRecord, error) {
	var rec storage.PlayerRecord
	err := row.Scan(&rec.Username, &rec.TimesPlayed, &rec.HighestScore, &rec.CreatedAt, &rec.LastPlayed)
	return rec, err
}
