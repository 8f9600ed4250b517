// Package storage provides SQLite-based history of confirmed character picks.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// History is reporting data only. It never seeds the selection flow, whose
// shared state lives in memory for one session.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for pick history.
type Store struct {
	db *sql.DB
}

// Pick is one confirmed selection.
type Pick struct {
	ID        int64
	SessionID string
	Character string
	CreatedAt time.Time
}

// PickCount aggregates picks per character.
type PickCount struct {
	Character string
	Count     int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS picks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			character TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_picks_character ON picks(character);
		CREATE INDEX IF NOT EXISTS idx_picks_session ON picks(session_id);
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

// SavePick records a confirmed character for a session.
// Returns the ID of the inserted record.
func (s *Store) SavePick(sessionID, character string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO picks (session_id, character) VALUES (?, ?)",
		sessionID, character,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save pick: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentPicks returns the latest picks, newest first.
func (s *Store) RecentPicks(limit int) ([]Pick, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, character, created_at
		 FROM picks
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query picks: %w", err)
	}
	defer rows.Close()

	var picks []Pick
	for rows.Next() {
		var p Pick
		var createdAt any
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Character, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		picks = append(picks, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return picks, nil
}

// SessionPicks returns every pick made in one session, oldest first.
func (s *Store) SessionPicks(sessionID string) ([]Pick, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, character, created_at
		 FROM picks
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query picks: %w", err)
	}
	defer rows.Close()

	var picks []Pick
	for rows.Next() {
		var p Pick
		var createdAt any
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Character, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		picks = append(picks, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return picks, nil
}

// PickCounts returns how often each character was picked, most popular
// first, ties broken by name.
func (s *Store) PickCounts() ([]PickCount, error) {
	rows, err := s.db.Query(
		`SELECT character, COUNT(*) AS n
		 FROM picks
		 GROUP BY character
		 ORDER BY n DESC, character ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pick counts: %w", err)
	}
	defer rows.Close()

	var counts []PickCount
	for rows.Next() {
		var c PickCount
		if err := rows.Scan(&c.Character, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearPicks removes all history.
func (s *Store) ClearPicks() error {
	if _, err := s.db.Exec("DELETE FROM picks"); err != nil {
		return fmt.Errorf("storage: cannot clear picks: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
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
