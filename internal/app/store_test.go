package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/vimarcade/internal/config"
	"github.com/willibrandon/vimarcade/internal/storage"
)

func TestOpenStore_None(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Driver = config.DriverNone

	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.Path = filepath.Join(t.TempDir(), "nested", "scores.db")

	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	rec, err := store.RecordGame(context.Background(), storage.GameResult{Username: "vimmer", Score: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.TimesPlayed)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Driver = "redis"

	_, err := OpenStore(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestLoadBank(t *testing.T) {
	cfg := config.Default()

	bank, err := LoadBank(cfg)
	require.NoError(t, err)
	assert.Equal(t, 19, bank.Len())

	path := filepath.Join(t.TempDir(), "questions.yaml")
	catalog := `version: 1
questions:
  - id: top
    prompt: Go to the first line
    expected: ["gg"]
    category: motion
`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0644))
	cfg.Game.QuestionsFile = path

	bank, err = LoadBank(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, bank.Len())

	cfg.Game.QuestionsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = LoadBank(cfg)
	assert.Error(t, err)
}

func TestFormatStorageError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		headline string
	}{
		{"invalid player", fmt.Errorf("record: %w", storage.ErrInvalidPlayer), "Invalid player name."},
		{"locked", fmt.Errorf("failed to upsert player: database is locked"), "Score database is busy."},
		{"cannot open", fmt.Errorf("failed to ping database: unable to open database file"), "Cannot open the score database."},
		{"refused", fmt.Errorf("dial tcp 127.0.0.1:5432: connect: connection refused"), "Connection refused: PostgreSQL is not accepting connections."},
		{"auth", fmt.Errorf("FATAL: password authentication failed for user"), "Authentication failed: Invalid username or password."},
		{"missing db", fmt.Errorf(`FATAL: database "arcade" does not exist`), "Database does not exist."},
		{"deadline", context.DeadlineExceeded, "Score store timeout: the database did not respond in time."},
		{"other", fmt.Errorf("disk full"), "Score store error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted := FormatStorageError(tt.err)
			assert.Equal(t, tt.headline, Headline(formatted))
			assert.True(t, strings.Contains(formatted, tt.err.Error()), "original error must be included")
		})
	}

	assert.Equal(t, "", FormatStorageError(nil))
}
