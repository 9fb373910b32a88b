// Package storage keeps a log of finished gallery runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The default database lives in memory and disappears with the process. It is
// shared by every session the process hosts, so SSH players see each other's
// runs.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID           string // UUID, assigned by SaveRun when empty
	SessionID    string // Owning terminal or SSH session
	Name         string // Leaderboard name, empty if none was entered
	Score        int
	EndReason    string // "time" or "health"
	ShotsFired   int
	EnemyHits    int
	CivilianHits int
	EnemyEscapes int
	Duration     time.Duration
	CreatedAt    time.Time
}

// Accuracy returns the fraction of shots that hit any target.
func (r Run) Accuracy() float64 {
	if r.ShotsFired == 0 {
		return 0
	}
	return float64(r.EnemyHits+r.CivilianHits) / float64(r.ShotsFired)
}

// Open creates or opens a SQLite database. An empty path or MemoryDSN gives
// an in-memory database; anything else is a file path, with ~ expanded and
// parent directories created.
func Open(dbPath string) (*Store, error) {
	memory := dbPath == "" || dbPath == MemoryDSN
	if memory {
		dbPath = MemoryDSN
	} else {
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
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if memory {
		// Every new connection to :memory: would get its own empty database
		db.SetMaxOpenConns(1)
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			shots_fired INTEGER NOT NULL DEFAULT 0,
			enemy_hits INTEGER NOT NULL DEFAULT 0,
			civilian_hits INTEGER NOT NULL DEFAULT 0,
			enemy_escapes INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, session_id, name, score, end_reason, shots_fired, enemy_hits, civilian_hits, enemy_escapes, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.SessionID,
		run.Name,
		run.Score,
		run.EndReason,
		run.ShotsFired,
		run.EnemyHits,
		run.CivilianHits,
		run.EnemyEscapes,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// ErrRunNotFound is returned when a run ID is unknown.
var ErrRunNotFound = errors.New("storage: run not found")

// SetRunName attaches a leaderboard name to a saved run.
func (s *Store) SetRunName(id, name string) error {
	res, err := s.db.Exec("UPDATE runs SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("storage: cannot name run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot name run: %w", err)
	}
	if n == 0 {
		return ErrRunNotFound
	}
	return nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(selectRuns+" WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrRunNotFound
	}
	return &runs[0], nil
}

// TopRuns retrieves the best runs, highest score first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(selectRuns+" ORDER BY score DESC, created_at ASC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs, newest first. An empty
// sessionID matches every session.
func (s *Store) RecentRuns(sessionID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectRuns+` WHERE ? = '' OR session_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		sessionID, sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

const selectRuns = `SELECT id, session_id, name, score, end_reason, shots_fired,
		enemy_hits, civilian_hits, enemy_escapes, duration_ms, created_at
	 FROM runs`

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Name,
			&r.Score,
			&r.EndReason,
			&r.ShotsFired,
			&r.EnemyHits,
			&r.CivilianHits,
			&r.EnemyEscapes,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats contains aggregated statistics over the run log.
type Stats struct {
	Runs         int
	BestScore    int
	AvgScore     float64
	ShotsFired   int
	Hits         int
	CivilianHits int
	LastPlayed   time.Time
}

// Accuracy returns the fraction of all shots that hit a target.
func (st Stats) Accuracy() float64 {
	if st.ShotsFired == 0 {
		return 0
	}
	return float64(st.Hits) / float64(st.ShotsFired)
}

// GetStats aggregates every run in the log.
func (s *Store) GetStats() (*Stats, error) {
	st := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(shots_fired), 0), COALESCE(SUM(enemy_hits + civilian_hits), 0),
		        COALESCE(SUM(civilian_hits), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&st.Runs, &st.BestScore, &st.AvgScore, &st.ShotsFired, &st.Hits, &st.CivilianHits, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}
