package trip

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/models"
)

// Store holds the single in-memory TripState and is the source of truth the
// synchronizer persists. All editing features mutate through it. While an
// archive is being viewed the store is read-only and every mutator silently
// does nothing; this is enforced here, not just in the UI layer.
type Store struct {
	mu       sync.RWMutex
	state    models.TripState
	readOnly bool
	onChange func()
}

func NewStore() *Store {
	return &Store{state: DefaultState()}
}

// DefaultState is the fresh trip installed on first run and by Reset.
func DefaultState() models.TripState {
	today := time.Now().Format(constants.DateFormat)
	return models.TripState{
		Destination:    constants.DefaultDestination,
		StartDate:      today,
		EndDate:        today,
		CoverImage:     constants.DefaultCoverImage,
		DailyMaps:      map[string]string{},
		Debts:          []models.DebtItem{},
		Flights:        []models.Flight{},
		Hotels:         []models.Hotel{},
		ItineraryItems: []models.ItineraryItem{},
		ShoppingItems:  []models.ShoppingItem{},
	}
}

// OnChange registers the callback invoked after every effective mutation.
// Load paths do not trigger it.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns a structurally independent copy of the current state.
func (s *Store) Snapshot() models.TripState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) ReadOnly() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readOnly
}

// mutate runs fn against the state unless the store is read-only, then fires
// the change callback outside the lock.
func (s *Store) mutate(fn func(*models.TripState)) {
	s.mu.Lock()
	if s.readOnly {
		s.mu.Unlock()
		return
	}
	fn(&s.state)
	notify := s.onChange
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
}

func (s *Store) SetDestination(destination string) {
	s.mutate(func(st *models.TripState) { st.Destination = destination })
}

func (s *Store) SetDates(start, end string) {
	s.mutate(func(st *models.TripState) {
		st.StartDate = start
		st.EndDate = end
	})
}

func (s *Store) SetCoverImage(url string) {
	s.mutate(func(st *models.TripState) { st.CoverImage = url })
}

func (s *Store) SetDailyMap(date, url string) {
	s.mutate(func(st *models.TripState) {
		if st.DailyMaps == nil {
			st.DailyMaps = map[string]string{}
		}
		st.DailyMaps[date] = url
	})
}

// List-valued fields are replaced wholesale on every mutation; there is no
// partial-update API.

func (s *Store) SetDebts(debts []models.DebtItem) {
	s.mutate(func(st *models.TripState) { st.Debts = append([]models.DebtItem(nil), debts...) })
}

func (s *Store) SetFlights(flights []models.Flight) {
	s.mutate(func(st *models.TripState) { st.Flights = append([]models.Flight(nil), flights...) })
}

func (s *Store) SetHotels(hotels []models.Hotel) {
	s.mutate(func(st *models.TripState) { st.Hotels = append([]models.Hotel(nil), hotels...) })
}

func (s *Store) SetItineraryItems(items []models.ItineraryItem) {
	s.mutate(func(st *models.TripState) { st.ItineraryItems = append([]models.ItineraryItem(nil), items...) })
}

func (s *Store) SetShoppingItems(items []models.ShoppingItem) {
	s.mutate(func(st *models.TripState) { st.ShoppingItems = append([]models.ShoppingItem(nil), items...) })
}

// Reset replaces the entire state with a fresh default trip and clears the
// read-only flag. Reset is the one mutator that works while read-only, since
// it is how the user leaves an archive view for a new trip.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = DefaultState()
	s.readOnly = false
	notify := s.onChange
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// tripDocument mirrors TripState with every field optional, so a partial
// persisted document only overwrites what it actually carries.
type tripDocument struct {
	Destination    *string                 `json:"destination"`
	StartDate      *string                 `json:"startDate"`
	EndDate        *string                 `json:"endDate"`
	CoverImage     *string                 `json:"coverImage"`
	DailyMaps      *map[string]string      `json:"dailyMaps"`
	Debts          *[]models.DebtItem      `json:"debts"`
	Flights        *[]models.Flight        `json:"flights"`
	Hotels         *[]models.Hotel         `json:"hotels"`
	ItineraryItems *[]models.ItineraryItem `json:"itineraryItems"`
	ShoppingItems  *[]models.ShoppingItem  `json:"shoppingItems"`
}

// ApplyDocument merges a loaded document into the state, overwriting only the
// fields present. It is a load-path operation: it bypasses the read-only
// guard and does not fire the change callback.
func (s *Store) ApplyDocument(doc json.RawMessage) error {
	var parsed tripDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("malformed trip document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if parsed.Destination != nil {
		s.state.Destination = *parsed.Destination
	}
	if parsed.StartDate != nil {
		s.state.StartDate = *parsed.StartDate
	}
	if parsed.EndDate != nil {
		s.state.EndDate = *parsed.EndDate
	}
	if parsed.CoverImage != nil {
		s.state.CoverImage = *parsed.CoverImage
	}
	if parsed.DailyMaps != nil {
		s.state.DailyMaps = *parsed.DailyMaps
	}
	if parsed.Debts != nil {
		s.state.Debts = *parsed.Debts
	}
	if parsed.Flights != nil {
		s.state.Flights = *parsed.Flights
	}
	if parsed.Hotels != nil {
		s.state.Hotels = *parsed.Hotels
	}
	if parsed.ItineraryItems != nil {
		s.state.ItineraryItems = *parsed.ItineraryItems
	}
	if parsed.ShoppingItems != nil {
		s.state.ShoppingItems = *parsed.ShoppingItems
	}
	return nil
}

// ReplaceState swaps in a complete state, silently. The archive manager uses
// it to present snapshots read-only; the synchronizer's load path uses it to
// return to the live trip.
func (s *Store) ReplaceState(state models.TripState, readOnly bool) {
	s.mu.Lock()
	s.state = state.Clone()
	s.readOnly = readOnly
	s.mu.Unlock()
}

// SetReadOnly toggles the archive-view flag without touching state.
func (s *Store) SetReadOnly(readOnly bool) {
	s.mu.Lock()
	s.readOnly = readOnly
	s.mu.Unlock()
}
