package sqlite

// initSchema creates the database schema if it doesn't exist.
// Timestamps are stored as Unix milliseconds.
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		username TEXT PRIMARY KEY,
		times_played INTEGER NOT NULL DEFAULT 0,
		highest_score INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		last_played INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS game_results (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL REFERENCES players(username) ON DELETE CASCADE,
		score INTEGER NOT NULL,
		answered INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		hints INTEGER NOT NULL DEFAULT 0,
		avg_response_ms INTEGER NOT NULL DEFAULT 0,
		played_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_players_leaderboard ON players(times_played DESC, highest_score DESC);
	CREATE INDEX IF NOT EXISTS idx_game_results_player ON game_results(username, played_at DESC);
	`

	_, err := db.conn.Exec(schema)
	return err
}
