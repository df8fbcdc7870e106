package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/logger"
	"github.com/mchou/travelpulse/internal/storage"
	"github.com/mchou/travelpulse/internal/trip"
)

// Syncer keeps the durable trip document eventually consistent with the
// in-memory state without writing on every keystroke. Each mutation restarts
// a debounce timer; only a quiet period triggers a write-through, carrying the
// full state after the last mutation. Restarting the timer is the only
// cancellation primitive: a write already handed to the store is not recalled,
// it is simply superseded by the next cycle (last write wins).
type Syncer struct {
	mu      sync.Mutex
	store   *trip.Store
	docs    storage.DocumentStore
	delay   time.Duration
	timer   *time.Timer
	pending bool
	// lastHash is the hash of the most recently persisted state; an unchanged
	// hash makes a flush a no-op.
	lastHash uint64
	hasHash  bool
}

func New(store *trip.Store, docs storage.DocumentStore) *Syncer {
	s := &Syncer{
		store: store,
		docs:  docs,
		delay: constants.SaveDebounce,
	}
	store.OnChange(s.notify)
	return s
}

// NewWithDelay is New with a custom debounce window.
func NewWithDelay(store *trip.Store, docs storage.DocumentStore, delay time.Duration) *Syncer {
	s := New(store, docs)
	s.delay = delay
	return s
}

// notify (re)starts the debounce timer. The store suppresses change callbacks
// while read-only and on load paths, so every call here represents a real
// user mutation of the live trip.
func (s *Syncer) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if err := s.Flush(context.Background()); err != nil {
			logger.Warn("Debounced save failed", "error", err)
		}
	})
}

// Flush writes any pending state immediately and cancels the timer. Commands
// call it before process exit so the debounce window never loses an edit.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.pending {
		s.mu.Unlock()
		return nil
	}
	s.pending = false
	s.mu.Unlock()

	return s.write(ctx)
}

func (s *Syncer) write(ctx context.Context) error {
	if s.store.ReadOnly() {
		return nil
	}
	state := s.store.Snapshot()

	hash, err := hashstructure.Hash(state, hashstructure.FormatV2, nil)
	if err == nil {
		s.mu.Lock()
		unchanged := s.hasHash && s.lastHash == hash
		s.mu.Unlock()
		if unchanged {
			return nil
		}
	}

	doc, err := storage.Encode(state)
	if err != nil {
		return err
	}
	// Full-state replacement: fields cleared in memory must not resurface
	// from a stale persisted document.
	if err := s.docs.Write(ctx, constants.TripCollection, constants.TripKey, doc); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastHash = hash
	s.hasHash = true
	s.mu.Unlock()
	logger.Debug("Trip document saved", "key", constants.TripKey)
	return nil
}

// Load reads the trip document through the fallback chain and applies it to
// the store, leaving defaults untouched when nothing exists anywhere. It also
// clears any archive view, returning the store to the live trip.
func (s *Syncer) Load(ctx context.Context) error {
	s.store.SetReadOnly(false)

	doc, err := s.docs.Read(ctx, constants.TripCollection, constants.TripKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Trip load failed, keeping in-memory defaults", "error", err)
		}
		return nil
	}
	if !json.Valid(doc) {
		logger.Warn("Persisted trip document is malformed, treating as absent")
		return nil
	}
	if err := s.store.ApplyDocument(doc); err != nil {
		// Malformed payloads are absence, not a crash.
		logger.Warn("Persisted trip document is malformed, treating as absent", "error", err)
		return nil
	}

	// Seed the dirty-check so a load alone never triggers a write-back.
	if hash, err := hashstructure.Hash(s.store.Snapshot(), hashstructure.FormatV2, nil); err == nil {
		s.mu.Lock()
		s.lastHash = hash
		s.hasHash = true
		s.pending = false
		s.mu.Unlock()
	}
	return nil
}
