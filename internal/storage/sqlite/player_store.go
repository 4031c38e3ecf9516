package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/willibrandon/vimarcade/internal/storage"
)

var _ storage.Store = (*PlayerStore)(nil)

// PlayerStore provides SQLite persistence for player statistics.
type PlayerStore struct {
	db  *DB
	now func() time.Time
}

// NewPlayerStore creates a new PlayerStore. Closing the store closes db.
func NewPlayerStore(db *DB) *PlayerStore {
	return &PlayerStore{db: db, now: time.Now}
}

// OpenPlayerStore opens the database at path and wraps it in a store.
func OpenPlayerStore(path string) (*PlayerStore, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewPlayerStore(db), nil
}

// RecordGame upserts the player aggregate and appends the result in one
// transaction.
func (s *PlayerStore) RecordGame(ctx context.Context, result storage.GameResult) (storage.PlayerRecord, error) {
	result, err := storage.PrepareResult(result, uuid.NewString, s.now())
	if err != nil {
		return storage.PlayerRecord{}, err
	}

	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return storage.PlayerRecord{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	played := result.PlayedAt.UnixMilli()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO players (username, times_played, highest_score, created_at, last_played)
		VALUES (?, 1, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			times_played = players.times_played + 1,
			highest_score = MAX(players.highest_score, excluded.highest_score),
			last_played = MAX(players.last_played, excluded.last_played)
	`, result.Username, max(0, result.Score), played, played)
	if err != nil {
		return storage.PlayerRecord{}, fmt.Errorf("failed to upsert player: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO game_results (id, username, score, answered, correct, hints, avg_response_ms, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.Username, result.Score, result.Answered, result.Correct, result.Hints,
		result.AvgResponse.Milliseconds(), played)
	if err != nil {
		return storage.PlayerRecord{}, fmt.Errorf("failed to insert game result: %w", err)
	}

	rec, err := scanPlayer(tx.QueryRowContext(ctx, selectPlayer+" WHERE username = ?", result.Username))
	if err != nil {
		return storage.PlayerRecord{}, fmt.Errorf("failed to read player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.PlayerRecord{}, fmt.Errorf("failed to commit: %w", err)
	}
	return rec, nil
}

// GetPlayer returns one player's aggregate.
func (s *PlayerStore) GetPlayer(ctx context.Context, username string) (storage.PlayerRecord, error) {
	name, err := storage.NormalizeUsername(username)
	if err != nil {
		return storage.PlayerRecord{}, err
	}

	rec, err := scanPlayer(s.db.conn.QueryRowContext(ctx, selectPlayer+" WHERE username = ?", name))
	if errors.Is(err, sql.ErrNoRows) {
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
	query := selectPlayer + " ORDER BY times_played DESC, highest_score DESC, username ASC"
	var args []any
	if n > 0 {
		query += " LIMIT ?"
		args = append(args, n)
	}

	rows, err := s.db.conn.QueryContext(ctx, query, args...)
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
		WHERE username = ?
		ORDER BY played_at DESC, rowid DESC
	`
	args := []any{name}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []storage.GameResult
	for rows.Next() {
		var r storage.GameResult
		var avgMs, playedAt int64
		if err := rows.Scan(&r.ID, &r.Username, &r.Score, &r.Answered, &r.Correct, &r.Hints, &avgMs, &playedAt); err != nil {
			return nil, err
		}
		r.AvgResponse = time.Duration(avgMs) * time.Millisecond
		r.PlayedAt = time.UnixMilli(playedAt)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the underlying database.
func (s *PlayerStore) Close() error {
	return s.db.Close()
}

const selectPlayer = `SELECT username, times_played, highest_score, created_at, last_played FROM players`

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (storage.PlayerRecord, error) {
	var rec storage.PlayerRecord
	var created, last int64
	if err := row.Scan(&rec.Username, &rec.TimesPlayed, &rec.HighestScore, &created, &last); err != nil {
		return storage.PlayerRecord{}, err
	}
	rec.CreatedAt = time.UnixMilli(created)
	rec.LastPlayed = time.UnixMilli(last)
	return rec, nil
}
