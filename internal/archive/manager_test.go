package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/models"
	"github.com/mchou/travelpulse/internal/storage"
	"github.com/mchou/travelpulse/internal/trip"
)

func newTestManager(t *testing.T) (*Manager, storage.DocumentStore) {
	t.Helper()
	docs := storage.NewJSONStore(filepath.Join(t.TempDir(), "cache.json"))
	if err := docs.Open(); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return NewManager(docs), docs
}

func sampleState() models.TripState {
	return models.TripState{
		Destination: "大阪",
		StartDate:   "2026-04-01",
		EndDate:     "2026-04-05",
		CoverImage:  "https://example.com/cover.jpg",
		ItineraryItems: []models.ItineraryItem{
			{ID: "i1", Date: "2026-04-01", StartTime: "09:00", Duration: "1h", Activity: "城"},
		},
	}
}

func TestArchive_GeneratesTimestampedID(t *testing.T) {
	m, _ := newTestManager(t)
	at := time.Date(2026, 4, 10, 12, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return at }

	arc, err := m.Archive(context.Background(), sampleState())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	wantID := fmt.Sprintf("%s%d", constants.ArchiveKeyPrefix, at.UnixMilli())
	if arc.ID != wantID {
		t.Errorf("id = %q, want %q", arc.ID, wantID)
	}
	if arc.Timestamp != at.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", arc.Timestamp, at.UnixMilli())
	}
	if arc.Destination != "大阪" || arc.StartDate != "2026-04-01" || arc.EndDate != "2026-04-05" {
		t.Errorf("denormalized fields wrong: %+v", arc)
	}
}

func TestArchive_SnapshotIsIndependentOfLiveState(t *testing.T) {
	m, _ := newTestManager(t)
	state := sampleState()

	arc, err := m.Archive(context.Background(), state)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	state.ItineraryItems[0].Activity = "edited after archiving"
	state.Destination = "moved on"

	if arc.Data.ItineraryItems[0].Activity != "城" {
		t.Error("archive snapshot aliases the live itinerary")
	}
	if arc.Data.Destination != "大阪" {
		t.Error("archive snapshot aliases the live destination")
	}
}

func TestArchive_RoundTripsThroughStore(t *testing.T) {
	m, _ := newTestManager(t)

	arc, err := m.Archive(context.Background(), sampleState())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	got, err := m.Get(context.Background(), arc.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Destination != arc.Destination || got.Timestamp != arc.Timestamp {
		t.Errorf("round trip changed the archive: %+v vs %+v", got, arc)
	}
	if len(got.Data.ItineraryItems) != 1 || got.Data.ItineraryItems[0].Activity != "城" {
		t.Errorf("snapshot payload lost in round trip: %+v", got.Data)
	}
}

func TestList_SkipsMalformedDocuments(t *testing.T) {
	m, docs := newTestManager(t)
	ctx := context.Background()

	if _, err := m.Archive(ctx, sampleState()); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	docs.Write(ctx, constants.ArchiveCollection, "archive_bad", json.RawMessage(`{broken`))

	archives, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(archives) != 1 {
		t.Errorf("expected malformed entry to be skipped, got %d archives", len(archives))
	}
}

func TestGet_NotFound(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.Get(context.Background(), "archive_0"); !errors.Is(err, ErrArchiveNotFound) {
		t.Errorf("expected ErrArchiveNotFound, got %v", err)
	}
}

func TestDelete_IsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	arc, err := m.Archive(ctx, sampleState())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	if err := m.Delete(ctx, arc.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := m.Delete(ctx, arc.ID); err != nil {
		t.Errorf("second delete must not error: %v", err)
	}
	if _, err := m.Get(ctx, arc.ID); !errors.Is(err, ErrArchiveNotFound) {
		t.Errorf("archive survived delete: %v", err)
	}
}

func TestView_PresentsSnapshotReadOnly(t *testing.T) {
	m, _ := newTestManager(t)

	arc, err := m.Archive(context.Background(), sampleState())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	store := trip.NewStore()
	fired := 0
	store.OnChange(func() { fired++ })

	m.View(arc, store)

	if !store.ReadOnly() {
		t.Error("View must leave the store read-only")
	}
	if got := store.Snapshot().Destination; got != "大阪" {
		t.Errorf("viewed destination = %q", got)
	}

	// Editing while viewing must be a silent no-op with no change signal.
	store.SetDestination("vandalism")
	if fired != 0 {
		t.Errorf("mutator fired %d change callbacks while viewing", fired)
	}
	if got := store.Snapshot().Destination; got != "大阪" {
		t.Errorf("archive view mutated: %q", got)
	}
}
