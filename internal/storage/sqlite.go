// Package storage provides SQLite-based persistence for the visit log of
// the SSH greeting server.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// ErrVisitNotFound is returned when finishing a visit that was never started.
var ErrVisitNotFound = errors.New("storage: visit not found")

// timeLayout is how timestamps are written; it matches CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the visit log.
type Store struct {
	db *sql.DB
}

// Visit is one viewer session.
type Visit struct {
	ID        int64
	Viewer    string // SSH user name
	Remote    string // Remote address
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is open
	Bursts    int       // Fireworks launched during the session
}

// Open reports whether the session has not finished yet.
func (v Visit) Open() bool {
	return v.EndedAt.IsZero()
}

// Duration returns the session length, or zero for an open session.
func (v Visit) Duration() time.Duration {
	if v.Open() {
		return 0
	}
	return v.EndedAt.Sub(v.StartedAt)
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
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			viewer TEXT NOT NULL,
			remote TEXT NOT NULL DEFAULT '',
			started_at TEXT NOT NULL,
			ended_at TEXT,
			bursts INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_visits_started ON visits(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_visits_viewer ON visits(viewer);
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

// StartVisit records the beginning of a session.
// Returns the ID of the inserted record.
func (s *Store) StartVisit(viewer, remote string, at time.Time) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO visits (viewer, remote, started_at) VALUES (?, ?, ?)",
		viewer, remote, formatTime(at),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// FinishVisit closes a session with its end time and burst count.
func (s *Store) FinishVisit(id int64, at time.Time, bursts int) error {
	result, err := s.db.Exec(
		"UPDATE visits SET ended_at = ?, bursts = ? WHERE id = ?",
		formatTime(at), bursts, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish visit %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot finish visit %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrVisitNotFound, id)
	}
	return nil
}

// RecentVisits retrieves the most recent visits, newest first.
func (s *Store) RecentVisits(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, viewer, remote, started_at, ended_at, bursts
		 FROM visits
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var startedAt, endedAt any
		if err := rows.Scan(&v.ID, &v.Viewer, &v.Remote, &startedAt, &endedAt, &v.Bursts); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		v.StartedAt = parseTime(startedAt)
		v.EndedAt = parseTime(endedAt)
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return visits, nil
}

// VisitStats contains aggregated statistics over all visits.
type VisitStats struct {
	Visits    int
	Viewers   int // Distinct viewer names
	Bursts    int64
	LastVisit time.Time
}

// Stats retrieves aggregated statistics for the visit log.
func (s *Store) Stats() (*VisitStats, error) {
	stats := &VisitStats{}
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT viewer), COALESCE(SUM(bursts), 0), MAX(started_at)
		 FROM visits`,
	).Scan(&stats.Visits, &stats.Viewers, &stats.Bursts, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get visit stats: %w", err)
	}
	stats.LastVisit = parseTime(last)

	return stats, nil
}

// ClearVisits deletes the whole visit log.
func (s *Store) ClearVisits() error {
	if _, err := s.db.Exec("DELETE FROM visits"); err != nil {
		return fmt.Errorf("storage: cannot clear visits: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime handles both time.Time and string column values; NULL and
// unparsable values give the zero time.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(v)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
