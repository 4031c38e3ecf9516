package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/vimarcade/internal/config"
	"github.com/willibrandon/vimarcade/internal/game"
	"github.com/willibrandon/vimarcade/internal/logger"
	"github.com/willibrandon/vimarcade/internal/storage"
	"github.com/willibrandon/vimarcade/internal/ui"
)

// tickInterval is how often the countdown is updated.
const tickInterval = 100 * time.Millisecond

// openStore creates a command to open the score store
func openStore(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout*connectAttempts)
		defer cancel()

		store, err := OpenStore(ctx, cfg)
		if err != nil {
			logger.Error("failed to open score store", "driver", cfg.Storage.Driver, "error", err)
			return StoreFailedMsg{Err: err}
		}
		return StoreOpenedMsg{Store: store}
	}
}

// tick creates a command for the next countdown step of game gameNo
func tick(gameNo uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return ui.TickMsg{Game: gameNo, At: t}
	})
}

// debounce creates a command that fires once the input has been idle for delay
func debounce(gameNo, gen uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ui.DebounceMsg{Game: gameNo, Gen: gen}
	})
}

// advanceAfter creates a command that ends the pause after a correct answer
func advanceAfter(gameNo uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ui.AdvanceMsg{Game: gameNo}
	})
}

// expireFeedback creates a command that clears feedback f after delay
func expireFeedback(gameNo uint64, f game.Feedback, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ui.FeedbackExpiredMsg{Game: gameNo, Feedback: f}
	})
}

// recordGame creates a command to save a finished game
func recordGame(store storage.Store, timeout time.Duration, result storage.GameResult) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rec, err := store.RecordGame(ctx, result)
		if err != nil {
			logger.Error("failed to record game", "player", result.Username, "score", result.Score, "error", err)
			return ui.GameSavedMsg{Err: err}
		}
		logger.Info("game recorded",
			"player", rec.Username,
			"score", result.Score,
			"times_played", rec.TimesPlayed,
			"highest_score", rec.HighestScore,
		)
		return ui.GameSavedMsg{Record: rec}
	}
}

// loadLeaderboard creates a command to fetch the top n players
func loadLeaderboard(store storage.Store, timeout time.Duration, n int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		players, err := store.TopPlayers(ctx, n)
		if err != nil {
			logger.Warn("failed to load leaderboard", "error", err)
		}
		return ui.LeaderboardMsg{Players: players, FetchedAt: time.Now(), Err: err}
	}
}

// loadPlayer creates a command to fetch the stored totals of one player
func loadPlayer(store storage.Store, timeout time.Duration, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rec, err := store.GetPlayer(ctx, name)
		return ui.PlayerMsg{Record: rec, Err: err}
	}
}
