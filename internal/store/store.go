// Package store persists fact-check runs to a local SQLite database so past
// reports can be listed and reloaded.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/claimlens/claimlens/internal/model"
)

// Store manages the run-history SQLite database
type Store struct {
	db *sql.DB
}

// RunSummary is one row of the run history listing
type RunSummary struct {
	ID         int64
	Document   string
	CheckedAt  time.Time
	Total      int
	Verified   int
	Inaccurate int
	False      int
	Pending    int
}

// Open opens or creates the history database at path, creating the schema
// if it does not exist
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document TEXT NOT NULL,
			checked_at TEXT NOT NULL,
			total INTEGER NOT NULL,
			verified INTEGER NOT NULL,
			inaccurate INTEGER NOT NULL,
			false_count INTEGER NOT NULL,
			pending INTEGER NOT NULL,
			report TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_checked_at ON runs(checked_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// SaveRun persists a completed report and returns its run ID
func (s *Store) SaveRun(report *model.Report) (int64, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("marshal report: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (document, checked_at, total, verified, inaccurate, false_count, pending, report)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.Document,
		report.CheckedAt.UTC().Format(time.RFC3339),
		report.Summary.Total,
		report.Summary.Verified,
		report.Summary.Inaccurate,
		report.Summary.False,
		report.Summary.Pending,
		string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first
func (s *Store) ListRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, document, checked_at, total, verified, inaccurate, false_count, pending
		 FROM runs ORDER BY checked_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var checkedAt string
		if err := rows.Scan(&r.ID, &r.Document, &checkedAt, &r.Total, &r.Verified, &r.Inaccurate, &r.False, &r.Pending); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, checkedAt); parseErr == nil {
			r.CheckedAt = t
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// LoadRun reloads the full report for a past run
func (s *Store) LoadRun(id int64) (*model.Report, error) {
	var data string
	err := s.db.QueryRow(`SELECT report FROM runs WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	return &report, nil
}
