// Package ui provides Bubbletea TUI building blocks for vimarcade.
package ui

import (
	"time"

	"github.com/willibrandon/vimarcade/internal/game"
	"github.com/willibrandon/vimarcade/internal/storage"
)

// Timer messages. Each carries the number of the game that scheduled it so
// that timers left over from a previous game are dropped after a restart.

// TickMsg drives the countdown.
type TickMsg struct {
	Game uint64
	At   time.Time
}

// DebounceMsg fires after the input has been idle for the debounce delay.
type DebounceMsg struct {
	Game uint64
	Gen  uint64
}

// AdvanceMsg ends the pause after a correct answer.
type AdvanceMsg struct {
	Game uint64
}

// FeedbackExpiredMsg clears a feedback flash if it is still showing.
type FeedbackExpiredMsg struct {
	Game     uint64
	Feedback game.Feedback
}

// Storage result messages

// GameSavedMsg reports the outcome of recording a finished game.
type GameSavedMsg struct {
	Record storage.PlayerRecord
	Err    error
}

// LeaderboardMsg carries the top players.
type LeaderboardMsg struct {
	Players   []storage.PlayerRecord
	FetchedAt time.Time
	Err       error
}

// PlayerMsg carries the stored record of the player who just signed in.
// Err wraps storage.ErrPlayerNotFound for a first-time player.
type PlayerMsg struct {
	Record storage.PlayerRecord
	Err    error
}

// WindowTooSmallMsg indicates terminal is below minimum size.
type WindowTooSmallMsg struct {
	Width  int
	Height int
}
