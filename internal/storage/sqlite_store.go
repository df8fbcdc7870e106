package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	key        TEXT NOT NULL,
	doc        TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
	PRIMARY KEY (collection, key)
);
`

// SQLiteStore is the default local cache backend: one documents table with
// JSON text payloads, keyed by collection and key.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Open() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context, collection, key string) (json.RawMessage, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE collection = ? AND key = ?`, collection, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s/%s: %w", collection, key, err)
	}
	return json.RawMessage(doc), nil
}

func (s *SQLiteStore) Write(ctx context.Context, collection, key string, doc json.RawMessage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, key, doc) VALUES (?, ?, ?)
		 ON CONFLICT (collection, key) DO UPDATE SET
			doc = excluded.doc,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')`,
		collection, key, string(doc))
	if err != nil {
		return fmt.Errorf("failed to write document %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc FROM documents WHERE collection = ? ORDER BY key`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	return docs, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, collection, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND key = ?`, collection, key); err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
