package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	key        TEXT NOT NULL,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, key)
)`

// ErrEmbeddedCredentials is returned for connection strings carrying a
// password. Credentials belong in the OS keyring, the environment, or .pgpass.
var ErrEmbeddedCredentials = errors.New("connection string must not contain a password")

// HasEmbeddedCredentials reports whether a URL-style connection string embeds
// a password.
func HasEmbeddedCredentials(connStr string) bool {
	if !strings.HasPrefix(connStr, "postgres://") && !strings.HasPrefix(connStr, "postgresql://") {
		return false
	}
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// PostgresStore is the remote document store: one JSONB documents table keyed
// by collection and key. Transient failures on individual operations are
// retried briefly before the caller's fallback logic takes over.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// Open connects and ensures the documents table exists. An unreachable server
// surfaces here, at process start, so the caller can route everything to the
// local cache instead.
func (s *PostgresStore) Open(ctx context.Context) error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open remote store: %w", err)
	}
	if err := s.withRetry(ctx, func() error { return db.PingContext(ctx) }); err != nil {
		db.Close()
		return fmt.Errorf("remote store unreachable: %w", err)
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize remote schema: %w", err)
	}
	s.db = db
	return nil
}

// withRetry runs op with a short exponential backoff. The budget is kept tight
// so a down network degrades to the local cache quickly.
func (s *PostgresStore) withRetry(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = 3 * time.Second
	return backoff.Retry(op, backoff.WithContext(policy, ctx))
}

func (s *PostgresStore) Read(ctx context.Context, collection, key string) (json.RawMessage, error) {
	var doc []byte
	err := s.withRetry(ctx, func() error {
		err := s.db.QueryRowContext(ctx,
			`SELECT doc FROM documents WHERE collection = $1 AND key = $2`, collection, key).Scan(&doc)
		if errors.Is(err, sql.ErrNoRows) {
			return backoff.Permanent(ErrNotFound)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document %s/%s: %w", collection, key, err)
	}
	return doc, nil
}

func (s *PostgresStore) Write(ctx context.Context, collection, key string, doc json.RawMessage) error {
	err := s.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO documents (collection, key, doc) VALUES ($1, $2, $3)
			 ON CONFLICT (collection, key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
			collection, key, []byte(doc))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write document %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	err := s.withRetry(ctx, func() error {
		rows, err := s.db.QueryContext(ctx,
			`SELECT doc FROM documents WHERE collection = $1 ORDER BY key`, collection)
		if err != nil {
			return err
		}
		defer rows.Close()

		docs = docs[:0]
		for rows.Next() {
			var doc []byte
			if err := rows.Scan(&doc); err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	return docs, nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, key string) error {
	err := s.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`DELETE FROM documents WHERE collection = $1 AND key = $2`, collection, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
