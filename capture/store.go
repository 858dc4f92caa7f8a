// Package capture provides the seed journal: a small SQLite index of runs
// and their seeds, so the seed behind a liked output can be recalled and
// replayed. Captured frames themselves live on the filesystem under
// <capture root>/<seed>/; this package only records which seeds ran.
package capture

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// Run is one journaled run (or reseed) of a sketch.
type Run struct {
	ID      int64
	Sketch  string
	Seed    uint64
	Started time.Time
}

// Store is the seed journal backed by a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the journal at path. The parent
// directory is created on demand.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("capture: journal path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("capture: create journal dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("capture: open journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("capture: enable WAL: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		// Seeds are stored as decimal text: they are uint64 and SQLite
		// integers are signed.
		`CREATE TABLE IF NOT EXISTS runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			sketch     TEXT NOT NULL,
			seed       TEXT NOT NULL,
			started_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS runs_sketch ON runs(sketch, started_at);`,
	}
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("capture: ensure schema: %w", err)
		}
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO meta(key, value) VALUES('schema', ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		strconv.Itoa(schemaVersion))
	if err != nil {
		return fmt.Errorf("capture: record schema version: %w", err)
	}
	return nil
}

// Close closes the journal.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record journals a seed for the named sketch at the given start time.
func (s *Store) Record(sketchName string, seed uint64, started time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO runs(sketch, seed, started_at) VALUES(?, ?, ?)`,
		sketchName,
		strconv.FormatUint(seed, 10),
		started.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("capture: record run: %w", err)
	}
	return nil
}

// Runs returns the journaled runs for a sketch, most recent first. An empty
// sketch name returns all runs.
func (s *Store) Runs(sketchName string) ([]Run, error) {
	query := `SELECT id, sketch, seed, started_at FROM runs`
	args := []any{}
	if sketchName != "" {
		query += ` WHERE sketch = ?`
		args = append(args, sketchName)
	}
	query += ` ORDER BY started_at DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("capture: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			seed    string
			started string
		)
		if err := rows.Scan(&r.ID, &r.Sketch, &seed, &started); err != nil {
			return nil, fmt.Errorf("capture: scan run: %w", err)
		}
		if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("capture: corrupt seed %q: %w", seed, err)
		}
		if r.Started, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("capture: corrupt timestamp %q: %w", started, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
