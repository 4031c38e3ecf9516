// Package storage defines persistence of player statistics and game history.
// Backends live in the sqlite and postgres subpackages.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxUsernameLength is the longest accepted username, in characters.
const MaxUsernameLength = 32

var (
	// ErrPlayerNotFound is returned when a lookup names an unknown player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidPlayer is returned for empty or malformed usernames.
	ErrInvalidPlayer = errors.New("invalid player")
)

// PlayerRecord is the aggregate kept per player.
type PlayerRecord struct {
	Username     string
	TimesPlayed  int
	HighestScore int
	CreatedAt    time.Time
	LastPlayed   time.Time
}

// GameResult is one finished game.
type GameResult struct {
	ID       string
	Username string
	Score    int
	// Answered counts submitted answers, Correct the accepted ones and Hints
	// the questions where the hint was shown.
	Answered    int
	Correct     int
	Hints       int
	AvgResponse time.Duration
	PlayedAt    time.Time
}

// Store persists player statistics.
type Store interface {
	// RecordGame increments the player's play count, raises the high score if
	// result.Score beats it, appends result to the history and returns the
	// updated aggregate. The player is created on first use.
	RecordGame(ctx context.Context, result GameResult) (PlayerRecord, error)
	// GetPlayer returns ErrPlayerNotFound for unknown usernames.
	GetPlayer(ctx context.Context, username string) (PlayerRecord, error)
	// TopPlayers orders by times played, then high score, both descending.
	// n <= 0 returns every player.
	TopPlayers(ctx context.Context, n int) ([]PlayerRecord, error)
	// RecentResults returns the player's games, newest first. limit <= 0
	// returns all of them.
	RecentResults(ctx context.Context, username string, limit int) ([]GameResult, error)
	Close() error
}

// NormalizeUsername trims name and checks it is usable as a player key.
func NormalizeUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: username cannot be empty", ErrInvalidPlayer)
	}
	if utf8.RuneCountInString(name) > MaxUsernameLength {
		return "", fmt.Errorf("%w: username longer than %d characters", ErrInvalidPlayer, MaxUsernameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: username contains control characters", ErrInvalidPlayer)
		}
	}
	return name, nil
}

// PrepareResult validates the username and fills in defaults for the ID and
// timestamp. newID is called only when result.ID is empty.
func PrepareResult(result GameResult, newID func() string, now time.Time) (GameResult, error) {
	name, err := NormalizeUsername(result.Username)
	if err != nil {
		return GameResult{}, err
	}
	result.Username = name
	if result.ID == "" {
		result.ID = newID()
	}
	if result.PlayedAt.IsZero() {
		result.PlayedAt = now
	}
	return result, nil
}
