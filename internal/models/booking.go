package models

type FlightType string

const (
	FlightDeparture FlightType = "departure"
	FlightReturn    FlightType = "return"
)

type Flight struct {
	ID            string     `json:"id"`
	Airline       string     `json:"airline"`
	FlightNumber  string     `json:"flightNumber"`
	Departure     string     `json:"departure"`
	Arrival       string     `json:"arrival"`
	DepartureTime string     `json:"departureTime"` // HH:MM
	ArrivalTime   string     `json:"arrivalTime"`   // HH:MM
	Price         float64    `json:"price,omitempty"`
	Date          string     `json:"date"` // YYYY-MM-DD
	TicketURL     string     `json:"ticketUrl,omitempty"`
	Type          FlightType `json:"type"`
}

func (f Flight) Clone() Flight { return f }

type Hotel struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Rating         float64  `json:"rating"`
	PricePerPerson float64  `json:"pricePerPerson"`
	Currency       string   `json:"currency"`
	Address        string   `json:"address"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	Images         []string `json:"images"`
	// IsSelected marks the hotel the trip is booked around. Other features
	// read it by convention only; nothing enforces a single selection.
	IsSelected bool   `json:"isSelected"`
	URL        string `json:"url,omitempty"`
}

func (h Hotel) Clone() Hotel {
	out := h
	out.Pros = append([]string(nil), h.Pros...)
	out.Cons = append([]string(nil), h.Cons...)
	out.Images = append([]string(nil), h.Images...)
	return out
}
