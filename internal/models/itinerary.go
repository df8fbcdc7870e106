package models

type ItemType string

const (
	ItemAttraction ItemType = "attraction"
	ItemFood       ItemType = "food"
	ItemTransport  ItemType = "transport"
	ItemRest       ItemType = "rest"
)

type ItineraryItem struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`      // YYYY-MM-DD
	StartTime      string   `json:"startTime"` // HH:MM
	Duration       string   `json:"duration"`  // "30m", "1.5h", "全天", ...
	Activity       string   `json:"activity"`
	Location       string   `json:"location"`
	LocationURL    string   `json:"locationUrl,omitempty"`
	Type           ItemType `json:"type"`
	Transportation string   `json:"transportation,omitempty"`
	Note           string   `json:"note,omitempty"`
	Attachment     string   `json:"attachment,omitempty"` // image URL
}

// FindItineraryItem resolves an id against a list of items. Shopping items
// hold weak references to itinerary items, so a missing id is a normal
// outcome, not an error.
func FindItineraryItem(items []ItineraryItem, id string) (ItineraryItem, bool) {
	if id == "" {
		return ItineraryItem{}, false
	}
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return ItineraryItem{}, false
}
