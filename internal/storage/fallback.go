package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mchou/travelpulse/internal/logger"
)

// Fallback composes a remote primary with a local cache behind the plain
// DocumentStore contract. With no remote configured (or unreachable at process
// start) every operation uses the local store alone. With a remote, writes go
// to the remote and mirror to the local cache so a later offline session sees
// the latest state; reads prefer the remote and fall back to the cache on any
// error or absence. Remote failures are swallowed here and logged, never
// surfaced as hard failures.
type Fallback struct {
	remote DocumentStore // nil when unconfigured or unreachable at start
	local  DocumentStore
}

func NewFallback(remote, local DocumentStore) *Fallback {
	return &Fallback{remote: remote, local: local}
}

// RemoteConfigured reports whether a remote primary is in play.
func (f *Fallback) RemoteConfigured() bool { return f.remote != nil }

func (f *Fallback) Read(ctx context.Context, collection, key string) (json.RawMessage, error) {
	if f.remote != nil {
		doc, err := f.remote.Read(ctx, collection, key)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Remote read failed, falling back to local cache",
				"collection", collection, "key", key, "error", err)
		}
	}
	return f.local.Read(ctx, collection, key)
}

func (f *Fallback) Write(ctx context.Context, collection, key string, doc json.RawMessage) error {
	if f.remote != nil {
		if err := f.remote.Write(ctx, collection, key, doc); err != nil {
			logger.Warn("Remote write failed, keeping local copy only",
				"collection", collection, "key", key, "error", err)
		}
	}
	// The local mirror is updated even when the remote write succeeded, so at
	// least one durable copy always carries the latest state.
	return f.local.Write(ctx, collection, key, doc)
}

func (f *Fallback) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if f.remote != nil {
		docs, err := f.remote.List(ctx, collection)
		if err == nil {
			return docs, nil
		}
		logger.Warn("Remote list failed, falling back to local cache",
			"collection", collection, "error", err)
	}
	return f.local.List(ctx, collection)
}

func (f *Fallback) Delete(ctx context.Context, collection, key string) error {
	if f.remote != nil {
		if err := f.remote.Delete(ctx, collection, key); err != nil {
			logger.Warn("Remote delete failed",
				"collection", collection, "key", key, "error", err)
		}
	}
	return f.local.Delete(ctx, collection, key)
}

func (f *Fallback) Ping(ctx context.Context) error {
	if f.remote != nil {
		return f.remote.Ping(ctx)
	}
	return f.local.Ping(ctx)
}

func (f *Fallback) Close() error {
	var err error
	if f.remote != nil {
		err = f.remote.Close()
	}
	if lerr := f.local.Close(); lerr != nil && err == nil {
		err = lerr
	}
	return err
}
