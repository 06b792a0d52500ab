package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

const upsertDocument = `
INSERT INTO documents (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET
	value = excluded.value,
	updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now')`

// SQLite stores documents in a key-value table of an SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the SQLite database at path and runs
// migrations.
func NewSQLite(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// a single connection keeps ":memory:" databases alive and serialises
	// writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec pragma: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// NewMemory creates an in-memory store backend for testing.
func NewMemory() (*SQLite, error) {
	return NewSQLite(":memory:")
}

func (s *SQLite) migrate() error {
	var version int

	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= schemaVersion {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);`

	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))

	return err
}

// Get returns the document stored under key.
func (s *SQLite) Get(key string) ([]byte, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("get document %q: %w", key, err)
	}

	return []byte(value), nil
}

// Put overwrites the document stored under key.
func (s *SQLite) Put(key string, value []byte) error {
	_, err := s.db.Exec(upsertDocument, key, string(value))
	if err != nil {
		return fmt.Errorf("put document %q: %w", key, err)
	}

	return nil
}

// Update reads and rewrites the document stored under key inside an
// immediate transaction, which takes the write lock up front so that another
// process cannot slip a write in between.
func (s *SQLite) Update(
	key string,
	fn func(value []byte) ([]byte, error),
) (err error) {
	ctx := context.Background()

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}

	defer conn.Close()

	if _, err = conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if err != nil {
			_, _ = conn.ExecContext(ctx, "ROLLBACK")
		}
	}()

	var (
		current []byte
		value   string
	)

	err = conn.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key).
		Scan(&value)

	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("get document %q: %w", key, err)
	default:
		current = []byte(value)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, upsertDocument, key, string(next))
	if err != nil {
		return fmt.Errorf("put document %q: %w", key, err)
	}

	if _, err = conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
