// Package sqlite provides a SQLite-backed implementation of the
// storage.KeyValue interface.
//
// All state lives in a single table of (bucket, payload) rows, one
// row per entity kind, with the payload holding the serialized JSON
// array for that kind. The pure Go driver keeps the module CGO-free.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure Go SQLite driver (no CGO)

	"github.com/nechberman/berman/internal/storage"
)

// Ensure Store implements storage.KeyValue.
var _ storage.KeyValue = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS state (
    bucket TEXT PRIMARY KEY,
    payload BLOB NOT NULL
);
`

// Store implements storage.KeyValue using SQLite.
//
// The mutex serializes access: the layer targets a single operator on
// a single device, so contention is not a concern, but overlapping
// calls from the UI must not interleave inside the driver.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// New creates a Store at the given database path. Parent directories
// are created and the schema is migrated automatically.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Read returns the payload for a bucket, or storage.ErrNoValue if the
// bucket has never been written.
func (s *Store) Read(ctx context.Context, bucket string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM state WHERE bucket = ?", bucket,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoValue
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket %s: %w", bucket, err)
	}
	return payload, nil
}

// Write persists a full replacement of the bucket's payload.
func (s *Store) Write(ctx context.Context, bucket string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state (bucket, payload) VALUES (?, ?)
		 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
		bucket, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to write bucket %s: %w", bucket, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
