// Package history keeps a SQLite audit trail of the token rewrites made by
// guard passes.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	apperrors "contrastguard/internal/errors"
	"contrastguard/internal/guard"
)

const schema = `
	CREATE TABLE IF NOT EXISTS adjustments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recorded_at TEXT NOT NULL,
		theme TEXT NOT NULL,
		mode TEXT NOT NULL,
		token TEXT NOT NULL,
		background TEXT NOT NULL,
		before_value TEXT NOT NULL,
		after_value TEXT NOT NULL,
		before_ratio REAL NOT NULL,
		after_ratio REAL NOT NULL,
		met INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_adjustments_recorded_at ON adjustments(recorded_at);
`

// Entry is one recorded foreground rewrite.
type Entry struct {
	At          time.Time
	Theme       string
	Mode        string
	Token       string
	Background  string
	Before      string
	After       string
	BeforeRatio float64
	AfterRatio  float64
	Met         bool
}

// Store is an open history database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the history database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, apperrors.New(apperrors.CodeHistoryFailed, "history path is empty", nil)
	}
	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, apperrors.New(apperrors.CodeHistoryFailed, "create history directory", err)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, apperrors.New(apperrors.CodeHistoryFailed, "open history db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeHistoryFailed, "ping history db", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeHistoryFailed, "create history schema", err)
	}
	return &Store{db: db, path: trimmed}, nil
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "journal_mode(WAL)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts entries in a single transaction.
func (s *Store) Record(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.New(apperrors.CodeHistoryFailed, "begin history tx", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO adjustments (
			recorded_at, theme, mode, token, background,
			before_value, after_value, before_ratio, after_ratio, met
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return apperrors.New(apperrors.CodeHistoryFailed, "prepare history insert", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, e := range entries {
		met := 0
		if e.Met {
			met = 1
		}
		if _, err := stmt.ExecContext(ctx,
			e.At.UTC().Format(time.RFC3339Nano), e.Theme, e.Mode, e.Token, e.Background,
			e.Before, e.After, e.BeforeRatio, e.AfterRatio, met,
		); err != nil {
			return apperrors.New(apperrors.CodeHistoryFailed, fmt.Sprintf("insert %s", e.Token), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperrors.New(apperrors.CodeHistoryFailed, "commit history tx", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT recorded_at, theme, mode, token, background,
			before_value, after_value, before_ratio, after_ratio, met
		FROM adjustments
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeHistoryFailed, "query history", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := []Entry{}
	for rows.Next() {
		var (
			e          Entry
			recordedAt string
			met        int
		)
		if err := rows.Scan(&recordedAt, &e.Theme, &e.Mode, &e.Token, &e.Background,
			&e.Before, &e.After, &e.BeforeRatio, &e.AfterRatio, &met); err != nil {
			return nil, apperrors.New(apperrors.CodeHistoryFailed, "scan history row", err)
		}
		at, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, apperrors.New(apperrors.CodeHistoryFailed, fmt.Sprintf("parse time %q", recordedAt), err)
		}
		e.At = at
		e.Met = met != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeHistoryFailed, "iterate history", err)
	}
	return entries, nil
}

// EntriesFromReport converts the applied results of a guard pass.
func EntriesFromReport(report guard.Report, theme, mode string, at time.Time) []Entry {
	var entries []Entry
	for _, res := range report.Results {
		if res.Status != guard.StatusApplied {
			continue
		}
		entries = append(entries, Entry{
			At:          at,
			Theme:       theme,
			Mode:        mode,
			Token:       res.Rule.Foreground,
			Background:  res.Rule.Background,
			Before:      res.Before,
			After:       res.After,
			BeforeRatio: res.BeforeRatio,
			AfterRatio:  res.AfterRatio,
			Met:         res.Met,
		})
	}
	return entries
}

// Recorder returns a callback that records every applied rewrite of a
// guard pass under the given theme and mode. Failures go to logf and never
// reach the guard.
func (s *Store) Recorder(ctx context.Context, logf func(string, ...any)) func(report guard.Report, theme, mode string) {
	return func(report guard.Report, themeName, mode string) {
		if s == nil {
			return
		}
		entries := EntriesFromReport(report, themeName, mode, time.Now())
		if err := s.Record(ctx, entries...); err != nil && logf != nil {
			logf("history: record failed: %v", err)
		}
	}
}
