// Package storage provides a SQLite-backed statistics collector.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and is gone when the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/stats"
)

// Store keeps game records in an in-memory SQLite database.
type Store struct {
	db *sql.DB
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Wins       int
	LastPlayed time.Time
}

// OpenMemory creates an empty in-memory database and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS game_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_game_records_player ON game_records(player_id);
		CREATE INDEX IF NOT EXISTS idx_game_records_top ON game_records(score DESC, id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Add records a finished session.
func (s *Store) Add(rec core.GameRecord) error {
	_, err := s.db.Exec(
		"INSERT INTO game_records (game_id, player_id, score, outcome) VALUES (?, ?, ?, ?)",
		rec.GameID, rec.PlayerID, rec.Score, int(rec.Outcome),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

// Average returns the integer mean score of all records, 0 when empty.
func (s *Store) Average() (int, error) {
	return s.average("SELECT COALESCE(SUM(score), 0), COUNT(*) FROM game_records")
}

// PlayerAverage returns the integer mean score of one player's records.
func (s *Store) PlayerAverage(playerID string) (int, error) {
	return s.average("SELECT COALESCE(SUM(score), 0), COUNT(*) FROM game_records WHERE player_id = ?", playerID)
}

func (s *Store) average(query string, args ...any) (int, error) {
	var sum int64
	var count int64
	if err := s.db.QueryRow(query, args...).Scan(&sum, &count); err != nil {
		return 0, fmt.Errorf("storage: cannot query average: %w", err)
	}
	if count == 0 {
		return 0, nil
	}
	return int(sum / count), nil
}

// Top retrieves the n highest-scoring records.
// Ties keep insertion order; n <= 0 yields nothing.
func (s *Store) Top(n int) ([]core.GameRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	return s.query(
		`SELECT game_id, player_id, score, outcome
		 FROM game_records
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		n,
	)
}

// PlayerTop retrieves one player's n highest-scoring records.
func (s *Store) PlayerTop(playerID string, n int) ([]core.GameRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	return s.query(
		`SELECT game_id, player_id, score, outcome
		 FROM game_records
		 WHERE player_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		playerID, n,
	)
}

// Records retrieves every record in insertion order.
func (s *Store) Records() ([]core.GameRecord, error) {
	return s.query(`SELECT game_id, player_id, score, outcome FROM game_records ORDER BY id ASC`)
}

func (s *Store) query(query string, args ...any) ([]core.GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []core.GameRecord
	for rows.Next() {
		var rec core.GameRecord
		var outcome int
		if err := rows.Scan(&rec.GameID, &rec.PlayerID, &rec.Score, &outcome); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Outcome = core.State(outcome)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GameStats retrieves aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0), MAX(created_at)
		 FROM game_records WHERE game_id = ?`,
		int(core.StateWon), gameID,
	).Scan(&gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &gs.Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	gs.LastPlayed = parseTime(lastPlayed)

	return gs, nil
}

// AllGamesStats retrieves statistics for all games that have been played.
func (s *Store) AllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), MAX(created_at)
		 FROM game_records
		 GROUP BY game_id`,
		int(core.StateWon),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &gs.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		all[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store implements the statistics collector
var _ stats.Store = (*Store)(nil)
