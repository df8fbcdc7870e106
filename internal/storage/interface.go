package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a document does not exist. Absence is a normal
// outcome on every read path; callers must not treat it as a failure.
var ErrNotFound = errors.New("document not found")

// DocumentStore is the uniform contract over keyed JSON documents. Two
// interchangeable families implement it: a remote networked store (Postgres)
// and local on-device stores (SQLite, JSON file). The Fallback store composes
// one of each with the remote as primary.
type DocumentStore interface {
	// Read returns the document at collection/key, or ErrNotFound.
	Read(ctx context.Context, collection, key string) (json.RawMessage, error)
	// Write stores the document at collection/key, replacing any previous
	// payload in full.
	Write(ctx context.Context, collection, key string, doc json.RawMessage) error
	// List returns every document in the collection, in no particular order.
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Delete removes the document at collection/key. Deleting an absent
	// document is not an error.
	Delete(ctx context.Context, collection, key string) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	Close() error
}
