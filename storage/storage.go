// Package storage provides SQLite-based logging of solve runs.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pflow-xyz/go-crosscells/solver"
)

// Store handles SQLite database operations for run logging.
type Store struct {
	db *sql.DB
}

// Run is one recorded solve attempt.
type Run struct {
	ID          string    `json:"id"`
	Puzzle      string    `json:"puzzle"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Cells       int       `json:"cells"`
	Constraints int       `json:"constraints"`
	Strategy    string    `json:"strategy"`
	Outcome     string    `json:"outcome"`
	Tries       uint64    `json:"tries"`
	ElapsedSecs float64   `json:"elapsed_secs"`
	Solution    string    `json:"solution,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Open creates a Store backed by the database at path, creating the
// schema on first use.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		puzzle TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		cells INTEGER NOT NULL,
		constraints INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		outcome TEXT NOT NULL,
		tries INTEGER NOT NULL DEFAULT 0,
		elapsed_secs REAL NOT NULL DEFAULT 0,
		solution TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_puzzle ON runs(puzzle);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun stores a completed solve report and returns the run id.
func (s *Store) RecordRun(name string, width, height, cells, constraints int, rep *solver.Report) (string, error) {
	id := uuid.New().String()
	solution := ""
	if rep.Solution != nil {
		solution = rep.Solution.Hex()
	}

	_, err := s.db.Exec(`
		INSERT INTO runs (id, puzzle, width, height, cells, constraints,
			strategy, outcome, tries, elapsed_secs, solution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, width, height, cells, constraints,
		rep.Strategy.String(), rep.Outcome.String(),
		rep.Tries, rep.Elapsed.Seconds(), solution, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// GetRun fetches a single run by id.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, puzzle, width, height, cells, constraints,
			strategy, outcome, tries, elapsed_secs, solution, created_at
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, puzzle, width, height, cells, constraints,
			strategy, outcome, tries, elapsed_secs, solution, created_at
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var solution sql.NullString
	err := row.Scan(&run.ID, &run.Puzzle, &run.Width, &run.Height,
		&run.Cells, &run.Constraints, &run.Strategy, &run.Outcome,
		&run.Tries, &run.ElapsedSecs, &solution, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	run.Solution = solution.String
	return &run, nil
}
