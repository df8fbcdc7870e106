package models

type DebtItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // non-negative
	Currency    string  `json:"currency"`
	Payer       string  `json:"payer"`
	Date        string  `json:"date"` // YYYY-MM-DD
}

type ShoppingItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	IsChecked bool    `json:"isChecked"` // purchased
	// ItineraryItemID is a weak reference: the linked itinerary item may be
	// deleted independently, leaving this dangling. Consumers treat a
	// dangling id as "unlinked".
	ItineraryItemID string `json:"itineraryItemId,omitempty"`
	ForWhom         string `json:"forWhom"`
	Image           string `json:"image,omitempty"`
}
