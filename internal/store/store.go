// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordlog/internal/model"
	"github.com/verte-zerg/wordlog/internal/puzzle"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for logged results.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY,
			puzzle_number INTEGER NOT NULL,
			name TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			hard_mode INTEGER NOT NULL,
			skill INTEGER NOT NULL,
			luck INTEGER NOT NULL,
			grid TEXT NOT NULL,
			played_on TEXT NOT NULL DEFAULT '',
			logged_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_name ON results(name);`,
		`CREATE INDEX IF NOT EXISTS idx_results_puzzle ON results(puzzle_number);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append stores one result row. Existing rows are never touched.
func (s *Store) Append(ctx context.Context, rec model.ResultRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (puzzle_number, name, attempts, hard_mode, skill, luck, grid, played_on, logged_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PuzzleNumber,
		rec.Name,
		int(rec.Attempts),
		rec.HardMode,
		rec.Skill,
		rec.Luck,
		strings.Join(rec.Grid, "\n"),
		puzzle.FormatDate(rec.PlayedOn),
		s.now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Rows returns every stored result in insertion order.
func (s *Store) Rows(ctx context.Context) ([]model.ResultRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT puzzle_number, name, attempts, hard_mode, skill, luck, grid, played_on
		FROM results
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.ResultRecord
	for rows.Next() {
		var rec model.ResultRecord
		var attempts int
		var grid, playedOn string
		if err := rows.Scan(&rec.PuzzleNumber, &rec.Name, &attempts, &rec.HardMode, &rec.Skill, &rec.Luck, &grid, &playedOn); err != nil {
			return nil, err
		}
		rec.Attempts = model.Attempts(attempts)
		if grid != "" {
			rec.Grid = strings.Split(grid, "\n")
		}
		if playedOn != "" {
			parsed, err := time.Parse("2006-01-02", playedOn)
			if err != nil {
				return nil, err
			}
			rec.PlayedOn = parsed
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
