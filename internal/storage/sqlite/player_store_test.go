package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/willibrandon/vimarcade/internal/storage"
)

func setupTestPlayerStore(t *testing.T) (*PlayerStore, string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "player_store_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	store, err := OpenPlayerStore(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, dbPath, cleanup
}

func TestPlayerStore_RecordGame(t *testing.T) {
	store, _, cleanup := setupTestPlayerStore(t)
	defer cleanup()

	ctx := context.Background()

	rec, err := store.RecordGame(ctx, storage.GameResult{Username: "vimmer", Score: 5})
	if err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	if rec.TimesPlayed != 1 || rec.HighestScore != 5 {
		t.Errorf("first game: got %+v", rec)
	}

	rec, err = store.RecordGame(ctx, storage.GameResult{Username: "vimmer", Score: 3})
	if err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	if rec.TimesPlayed != 2 {
		t.Errorf("expected times_played 2, got %d", rec.TimesPlayed)
	}
	if rec.HighestScore != 5 {
		t.Errorf("lower score must not replace the high score, got %d", rec.HighestScore)
	}

	rec, err = store.RecordGame(ctx, storage.GameResult{Username: "vimmer", Score: 9})
	if err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	if rec.TimesPlayed != 3 || rec.HighestScore != 9 {
		t.Errorf("third game: got %+v", rec)
	}
}

func TestPlayerStore_RecordGame_NegativeScore(t *testing.T) {
	store, _, cleanup := setupTestPlayerStore(t)
	defer cleanup()

	rec, err := store.RecordGame(context.Background(), storage.GameResult{Username: "unlucky", Score: -1})
	if err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	if rec.HighestScore != 0 {
		t.Errorf("expected high score 0 for a negative first game, got %d", rec.HighestScore)
	}
}

func TestPlayerStore_RecordGame_InvalidPlayer(t *testing.T) {
	store, _, cleanup := setupTestPlayerStore(t)
	defer cleanup()

	_, err := store.RecordGame(context.Background(), storage.GameResult{Username: "  ", Score: 1})
	if !errors.Is(err, storage.ErrInvalidPlayer) {
		t.Errorf("expected ErrInvalidPlayer, got %v", err)
	}

	players, err := store.TopPlayers(context.Background(), 0)
	if err != nil {
		t.Fatalf("TopPlayers failed: %v", err)
	}
	if len(players) != 0 {
		t.Errorf("invalid game must not create a player, got %d", len(players))
	}
}

func TestPlayerStore_GetPlayer(t *testing.T) {
	store, _, cleanup := setupTestPlayerStore(t)
	defer cleanup()

	ctx := context.Background()
	played := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	if _, err := store.GetPlayer(ctx, "ghost"); !errors.Is(err, storage.ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}

	if _, err := store.RecordGame(ctx, storage.GameResult{Username: "vimmer", Score: 4, PlayedAt: played}); err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}

	rec, err := store.GetPlayer(ctx, " vimmer ")
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if rec.Username != "vimmer" || rec.TimesPlayed != 1 || rec.HighestScore != 4 {
		t.Errorf("unexpected record %+v", rec)
	}
	if !rec.LastPlayed.Equal(played) || !rec.CreatedAt.Equal(played) {
		t.Errorf("timestamps = %v / %v, want %v", rec.CreatedAt, rec.LastPlayed, played)
	}
}

func TestPlayerStore_TopPlayers(t *testing.T) {
	store, _, cleanup := setupTestPlayerStore(t)
	defer cleanup()

	ctx := context.Background()
	games := []struct {
		name  string
		score int
	}{
		{"alice", 3},
		{"alice", 4},
		{"bob", 10},
		{"carol", 2},
		{"carol", 8},
		{"dave", 1},
		{"erin", 10},
	}
	for _, g := range games {
		if _, err := store.RecordGame(ctx, storage.GameResult{Username: g.name, Score: g.score}); err != nil {
			t.Fatalf("RecordGame(%s) failed: %v", g.name, err)
		}
	}

	players, err := store.TopPlayers(ctx, 0)
	if err != nil {
		t.Fatalf("TopPlayers failed: %v", err)
	}

	want := []string{"carol", "alice", "bob", "erin", "dave"}
	if len(players) != len(want) {
		t.Fatalf("expected %d players, got %d", len(want), len(players))
	}
	for i, name := range want {
		if players[i].Username != name {
			t.Errorf("position %d: expected %s, got %s", i, name, players[i].Username)
		}
	}

	top, err := store.TopPlayers(ctx, 2)
	if err != nil {
		t.Fatalf("TopPlayers failed: %v", err)
	}
	if len(top) != 2 || top[0].Username != "carol" {
		t.Errorf("TopPlayers(2) = %+v", top)
	}
}

func TestPlayerStore_RecentResults(t *testing.T) {
	store, _, cleanup := setupTestPlayerStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		_, err := store.RecordGame(ctx, storage.GameResult{
			Username:    "vimmer",
			Score:       i,
			Answered:    i + 2,
			Correct:     i,
			Hints:       1,
			AvgResponse: 1500 * time.Millisecond,
			PlayedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}
	}
	if _, err := store.RecordGame(ctx, storage.GameResult{Username: "other", Score: 7}); err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}

	results, err := store.RecentResults(ctx, "vimmer", 0)
	if err != nil {
		t.Fatalf("RecentResults failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Score != 3-i {
			t.Errorf("result %d: expected score %d, got %d", i, 3-i, r.Score)
		}
		if r.ID == "" {
			t.Errorf("result %d has no id", i)
		}
	}
	first := results[0]
	if first.Answered != 5 || first.Correct != 3 || first.Hints != 1 || first.AvgResponse != 1500*time.Millisecond {
		t.Errorf("unexpected result fields %+v", first)
	}
	if !first.PlayedAt.Equal(base.Add(3 * time.Minute)) {
		t.Errorf("PlayedAt = %v", first.PlayedAt)
	}

	limited, err := store.RecentResults(ctx, "vimmer", 2)
	if err != nil {
		t.Fatalf("RecentResults failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 results, got %d", len(limited))
	}
}

func TestPlayerStore_Reopen(t *testing.T) {
	store, path, cleanup := setupTestPlayerStore(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := store.RecordGame(ctx, storage.GameResult{Username: "vimmer", Score: 2}); err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	store.Close()

	reopened, err := OpenPlayerStore(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	rec, err := reopened.RecordGame(ctx, storage.GameResult{Username: "vimmer", Score: 1})
	if err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	if rec.TimesPlayed != 2 || rec.HighestScore != 2 {
		t.Errorf("aggregate lost across reopen: %+v", rec)
	}
}
