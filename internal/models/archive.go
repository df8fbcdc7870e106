package models

// ArchivedTrip is an immutable point-in-time snapshot of a TripState.
// Destination, dates and cover image are denormalized from Data so archive
// lists can render without deserializing the full payload. Data is a value
// copy, never aliased with the live trip.
type ArchivedTrip struct {
	ID          string    `json:"id"`        // archive_<creation unix millis>
	Timestamp   int64     `json:"timestamp"` // creation instant, unix millis
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	CoverImage  string    `json:"coverImage"`
	Data        TripState `json:"data"`
}
