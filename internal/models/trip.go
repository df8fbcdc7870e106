package models

// TripState is the single live trip being planned. JSON field names match the
// persisted document layout, so a document written by one storage backend can
// be read back by any other.
type TripState struct {
	Destination    string            `json:"destination"`
	StartDate      string            `json:"startDate"` // YYYY-MM-DD
	EndDate        string            `json:"endDate"`   // YYYY-MM-DD
	CoverImage     string            `json:"coverImage"`
	DailyMaps      map[string]string `json:"dailyMaps"` // date -> map URL
	Debts          []DebtItem        `json:"debts"`
	Flights        []Flight          `json:"flights"`
	Hotels         []Hotel           `json:"hotels"`
	ItineraryItems []ItineraryItem   `json:"itineraryItems"`
	ShoppingItems  []ShoppingItem    `json:"shoppingItems"`
}

// Clone returns a structurally independent deep copy. Archives and the
// synchronizer both depend on snapshots never aliasing the live state.
func (s TripState) Clone() TripState {
	out := s
	if s.DailyMaps != nil {
		out.DailyMaps = make(map[string]string, len(s.DailyMaps))
		for k, v := range s.DailyMaps {
			out.DailyMaps[k] = v
		}
	}
	out.Debts = append([]DebtItem(nil), s.Debts...)
	out.Flights = make([]Flight, len(s.Flights))
	for i, f := range s.Flights {
		out.Flights[i] = f.Clone()
	}
	out.Hotels = make([]Hotel, len(s.Hotels))
	for i, h := range s.Hotels {
		out.Hotels[i] = h.Clone()
	}
	out.ItineraryItems = append([]ItineraryItem(nil), s.ItineraryItems...)
	out.ShoppingItems = append([]ShoppingItem(nil), s.ShoppingItems...)
	return out
}
