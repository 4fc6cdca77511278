// Package storage keeps best clear times in a local SQLite database.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// BestTime is the fastest recorded clear of a level
type BestTime struct {
	Level     string
	Seconds   float64
	Coins     int
	UpdatedAt time.Time
}

// Store wraps the best-time database
type Store struct {
	db *sql.DB
}

// DefaultPath returns ~/.minijump/best.db
func DefaultPath() string {
	return filepath.Join("~", ".minijump", "best.db")
}

// Open opens or creates the database at dbPath
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot resolve home directory: %w", err)
		}
		dbPath = filepath.Join(home, strings.TrimPrefix(dbPath, "~"))
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: cannot connect: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS best_times (
		level      TEXT PRIMARY KEY,
		seconds    REAL NOT NULL,
		coins      INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("storage: cannot migrate: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordClear stores a clear time for level.
// An existing entry is only replaced by a strictly faster time.
func (s *Store) RecordClear(level string, seconds float64, coins int) (bool, error) {
	if seconds <= 0 {
		return false, fmt.Errorf("storage: clear time must be positive, got %v", seconds)
	}
	res, err := s.db.Exec(`
		INSERT INTO best_times (level, seconds, coins) VALUES (?, ?, ?)
		ON CONFLICT(level) DO UPDATE SET
			seconds = excluded.seconds,
			coins = excluded.coins,
			updated_at = CURRENT_TIMESTAMP
		WHERE excluded.seconds < best_times.seconds`,
		level, seconds, coins)
	if err != nil {
		return false, fmt.Errorf("storage: cannot record clear: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot record clear: %w", err)
	}
	return n > 0, nil
}

// Best returns the best time for level; ok is false if none is recorded
func (s *Store) Best(level string) (BestTime, bool, error) {
	var bt BestTime
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT level, seconds, coins, updated_at FROM best_times WHERE level = ?`, level,
	).Scan(&bt.Level, &bt.Seconds, &bt.Coins, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return BestTime{}, false, nil
	}
	if err != nil {
		return BestTime{}, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	bt.UpdatedAt = parseTime(updatedAt)
	return bt, true, nil
}

// All returns every recorded best time ordered by level name
func (s *Store) All() ([]BestTime, error) {
	rows, err := s.db.Query(
		`SELECT level, seconds, coins, updated_at FROM best_times ORDER BY level`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	var times []BestTime
	for rows.Next() {
		var bt BestTime
		var updatedAt any
		if err := rows.Scan(&bt.Level, &bt.Seconds, &bt.Coins, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan best time: %w", err)
		}
		bt.UpdatedAt = parseTime(updatedAt)
		times = append(times, bt)
	}
	return times, rows.Err()
}

// parseTime accepts both driver-decoded times and raw SQLite timestamps
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
