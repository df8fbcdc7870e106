package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/logger"
	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/storage"
	"github.com/mchou/travelpulse/internal/trip"
)

// ErrArchiveNotFound is returned when looking up an archive id that does not
// exist.
var ErrArchiveNotFound = errors.New("archive not found")

// Manager owns the collection of immutable trip snapshots. Archives are a
// separate record from the live trip: creating one never mutates or aliases
// the live state, and viewing one never engages the synchronizer's write path.
type Manager struct {
	docs storage.DocumentStore
	now  func() time.Time
}

func NewManager(docs storage.DocumentStore) *Manager {
	return &Manager{docs: docs, now: time.Now}
}

// Archive snapshots the given state into a new immutable archive and persists
// it under a generated key.
func (m *Manager) Archive(ctx context.Context, state models.TripState) (models.ArchivedTrip, error) {
	now := m.now()
	arc := models.ArchivedTrip{
		ID:          fmt.Sprintf("%s%d", constants.ArchiveKeyPrefix, now.UnixMilli()),
		Timestamp:   now.UnixMilli(),
		Destination: state.Destination,
		StartDate:   state.StartDate,
		EndDate:     state.EndDate,
		CoverImage:  state.CoverImage,
		Data:        state.Clone(),
	}

	doc, err := storage.Encode(arc)
	if err != nil {
		return models.ArchivedTrip{}, err
	}
	if err := m.docs.Write(ctx, constants.ArchiveCollection, arc.ID, doc); err != nil {
		return models.ArchivedTrip{}, fmt.Errorf("failed to persist archive %s: %w", arc.ID, err)
	}
	logger.Info("Trip archived", "id", arc.ID, "destination", arc.Destination)
	return arc, nil
}

// List returns every archive, in no particular order; callers sort by
// timestamp descending for display. Entries that fail to parse are skipped,
// not fatal.
func (m *Manager) List(ctx context.Context) ([]models.ArchivedTrip, error) {
	docs, err := m.docs.List(ctx, constants.ArchiveCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}

	archives := make([]models.ArchivedTrip, 0, len(docs))
	for _, doc := range docs {
		var arc models.ArchivedTrip
		if err := json.Unmarshal(doc, &arc); err != nil {
			logger.Warn("Skipping malformed archive document", "error", err)
			continue
		}
		archives = append(archives, arc)
	}
	return archives, nil
}

// Get returns one archive by id.
func (m *Manager) Get(ctx context.Context, id string) (models.ArchivedTrip, error) {
	doc, err := m.docs.Read(ctx, constants.ArchiveCollection, id)
	if errors.Is(err, storage.ErrNotFound) {
		return models.ArchivedTrip{}, ErrArchiveNotFound
	}
	if err != nil {
		return models.ArchivedTrip{}, fmt.Errorf("failed to read archive %s: %w", id, err)
	}
	var arc models.ArchivedTrip
	if err := json.Unmarshal(doc, &arc); err != nil {
		return models.ArchivedTrip{}, fmt.Errorf("malformed archive document %s: %w", id, err)
	}
	return arc, nil
}

// Delete removes one archive by id. Deleting an id that is already absent is
// not an error.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.docs.Delete(ctx, constants.ArchiveCollection, id); err != nil {
		return fmt.Errorf("failed to delete archive %s: %w", id, err)
	}
	logger.Info("Archive deleted", "id", id)
	return nil
}

// View loads an archive's snapshot into the trip store for read-only
// browsing. The store's read-only flag suppresses every mutator and with it
// the synchronizer, so viewing can never overwrite the live trip document.
func (m *Manager) View(arc models.ArchivedTrip, store *trip.Store) {
	store.ReplaceState(arc.Data, true)
}
