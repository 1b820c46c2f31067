// Package storage provides SQLite-based persistence for finished games and
// the best line count. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is the database location used when none is given.
const DefaultPath = "~/.tetromino/scores.db"

// Store manages the SQLite database connection. It is safe for
// concurrent use by several sessions.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	Player    string
	Lines     int
	Level     int
	Preset    string
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all finished games.
type Stats struct {
	GamesCount int
	BestLines  int
	AvgLines   float64
	TotalLines int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}
	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			lines INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			preset TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_lines ON games(lines DESC);
		CREATE INDEX IF NOT EXISTS idx_games_player ON games(player);

		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			lines INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished game. Returns the ID of the inserted record.
// The game's lines also count towards the high score.
func (s *Store) SaveScore(entry ScoreEntry) (int64, error) {
	if entry.Lines < 0 {
		return 0, fmt.Errorf("storage: negative line count %d", entry.Lines)
	}

	result, err := s.db.Exec(
		"INSERT INTO games (player, lines, level, preset) VALUES (?, ?, ?, ?)",
		entry.Player, entry.Lines, entry.Level, entry.Preset,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := s.RecordHighScore(entry.Lines); err != nil {
		return id, err
	}
	return id, nil
}

// RecordHighScore stores lines as the best line count if it beats the
// stored one. Lower values are ignored.
func (s *Store) RecordHighScore(lines int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, lines) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   lines = excluded.lines,
		   updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.lines > high_score.lines`,
		lines,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record high score: %w", err)
	}
	return nil
}

// HighScore returns the best line count ever recorded.
// Returns 0 if nothing was recorded.
func (s *Store) HighScore() (int, error) {
	var lines sql.NullInt64
	err := s.db.QueryRow("SELECT lines FROM high_score WHERE id = 1").Scan(&lines)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(lines.Int64), nil
}

// TopScores retrieves the N best games ordered by lines descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, player, lines, level, preset, created_at
		 FROM games
		 ORDER BY lines DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerScores retrieves the most recent games of one player.
func (s *Store) PlayerScores(player string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, player, lines, level, preset, created_at
		 FROM games
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Lines, &e.Level, &e.Preset, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes every game and the stored high score.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM games; DELETE FROM high_score;"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics over all games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(lines), 0), COALESCE(AVG(lines), 0), COALESCE(SUM(lines), 0), MAX(created_at)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.BestLines, &stats.AvgLines, &stats.TotalLines, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	// A new best reported mid-game may exceed every finished game.
	best, err := s.HighScore()
	if err != nil {
		return nil, err
	}
	if best > stats.BestLines {
		stats.BestLines = best
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes.
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
