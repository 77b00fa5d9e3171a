// Package store persists cached resources in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound reports a path with no cached copy.
var ErrNotFound = errors.New("resource not found")

// SQLite is a blob store keyed by manifest path.
type SQLite struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS resources (
	path       TEXT PRIMARY KEY,
	version    TEXT NOT NULL,
	fetched_at TEXT NOT NULL,
	body       BLOB NOT NULL
);
`

// Open opens (creating if needed) the database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Put stores body for path at the given version, replacing any prior copy.
func (s *SQLite) Put(ctx context.Context, path, version string, body []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resources (path, version, fetched_at, body) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET version=excluded.version, fetched_at=excluded.fetched_at, body=excluded.body`,
		path, version, time.Now().Format(time.RFC3339), body)
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", path, err)
	}
	return nil
}

// Get returns the stored body and version for path.
func (s *SQLite) Get(ctx context.Context, path string) ([]byte, string, error) {
	var body []byte
	var version string
	err := s.db.QueryRowContext(ctx,
		`SELECT body, version FROM resources WHERE path = ?`, path).Scan(&body, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return body, version, nil
}

// Has reports whether path is stored at exactly the given version.
func (s *SQLite) Has(ctx context.Context, path, version string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resources WHERE path = ? AND version = ?`, path, version).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return n > 0, nil
}

// Purge deletes every row whose version differs from keepVersion and returns
// the number of rows removed.
func (s *SQLite) Purge(ctx context.Context, keepVersion string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM resources WHERE version != ?`, keepVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to purge: %w", err)
	}
	return res.RowsAffected()
}
