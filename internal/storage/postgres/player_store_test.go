package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/willibrandon/vimarcade/internal/storage"
)

// PlayerStoreSuite runs the store against a throwaway PostgreSQL container.
type PlayerStoreSuite struct {
	suite.Suite
	ctx       context.Context
	cancel    context.CancelFunc
	container testcontainers.Container
	store     *PlayerStore
}

func TestPlayerStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(PlayerStoreSuite))
}

func (s *PlayerStoreSuite) SetupSuite() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err, "Failed to start PostgreSQL container")
	s.container = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, "5432")
	s.Require().NoError(err)

	dsn := "postgres://test:test@" + host + ":" + port.Port() + "/testdb?sslmode=disable"
	pool, err := Connect(s.ctx, PoolOptions{DSN: dsn, MaxConns: 4, Attempts: 3})
	s.Require().NoError(err)

	s.store, err = NewPlayerStore(s.ctx, pool)
	s.Require().NoError(err)
}

func (s *PlayerStoreSuite) TearDownSuite() {
	if s.store != nil {
		s.store.Close()
	}
	if s.container != nil {
		s.container.Terminate(s.ctx)
	}
	s.cancel()
}

func (s *PlayerStoreSuite) SetupTest() {
	_, err := s.store.pool.Exec(s.ctx, "TRUNCATE players CASCADE")
	s.Require().NoError(err)
}

func (s *PlayerStoreSuite) TestRecordGameAggregates() {
	rec, err := s.store.RecordGame(s.ctx, storage.GameResult{Username: "vimmer", Score: 5})
	s.Require().NoError(err)
	s.Equal(1, rec.TimesPlayed)
	s.Equal(5, rec.HighestScore)

	rec, err = s.store.RecordGame(s.ctx, storage.GameResult{Username: "vimmer", Score: 2})
	s.Require().NoError(err)
	s.Equal(2, rec.TimesPlayed)
	s.Equal(5, rec.HighestScore)

	rec, err = s.store.RecordGame(s.ctx, storage.GameResult{Username: "vimmer", Score: -1})
	s.Require().NoError(err)
	s.Equal(3, rec.TimesPlayed)
	s.Equal(5, rec.HighestScore)
}

func (s *PlayerStoreSuite) TestGetPlayer() {
	_, err := s.store.GetPlayer(s.ctx, "ghost")
	s.ErrorIs(err, storage.ErrPlayerNotFound)

	_, err = s.store.GetPlayer(s.ctx, "")
	s.ErrorIs(err, storage.ErrInvalidPlayer)

	_, err = s.store.RecordGame(s.ctx, storage.GameResult{Username: "vimmer", Score: 3})
	s.Require().NoError(err)

	rec, err := s.store.GetPlayer(s.ctx, "vimmer")
	s.Require().NoError(err)
	s.Equal("vimmer", rec.Username)
	s.Equal(3, rec.HighestScore)
	s.False(rec.LastPlayed.IsZero())
}

func (s *PlayerStoreSuite) TestTopPlayersOrdering() {
	for _, g := range []struct {
		name  string
		score int
	}{
		{"alice", 3}, {"alice", 4}, {"bob", 10}, {"carol", 2}, {"carol", 8}, {"erin", 10},
	} {
		_, err := s.store.RecordGame(s.ctx, storage.GameResult{Username: g.name, Score: g.score})
		s.Require().NoError(err)
	}

	players, err := s.store.TopPlayers(s.ctx, 0)
	s.Require().NoError(err)

	var names []string
	for _, p := range players {
		names = append(names, p.Username)
	}
	s.Equal([]string{"carol", "alice", "bob", "erin"}, names)

	top, err := s.store.TopPlayers(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(top, 1)
}

func (s *PlayerStoreSuite) TestRecentResults() {
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.store.RecordGame(s.ctx, storage.GameResult{
			Username:    "vimmer",
			Score:       i,
			Answered:    4,
			Correct:     i,
			AvgResponse: 800 * time.Millisecond,
			PlayedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}

	results, err := s.store.RecentResults(s.ctx, "vimmer", 2)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(2, results[0].Score)
	s.Equal(1, results[1].Score)
	s.Equal(800*time.Millisecond, results[0].AvgResponse)
	s.True(results[0].PlayedAt.Equal(base.Add(2 * time.Minute)))
	s.NotEmpty(results[0].ID)
}
