package constants

import "time"

const (
	AppName            = "travelpulse"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/travelpulse"
	Version            = "v0.3.0"

	// EnvDBConnection is the environment variable checked for a PostgreSQL
	// connection string before falling back to the OS keyring.
	EnvDBConnection = "TRAVELPULSE_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Document identity. The live trip is a single well-known document; archives
	// are a growing collection keyed by generated ids.
	TripCollection    = "trips"
	ArchiveCollection = "archives"
	TripKey           = "travel_pulse_default_trip"
	ArchiveKeyPrefix  = "archive_"

	// SaveDebounce is the quiet period after the last mutation before the
	// synchronizer writes the trip document through to storage.
	SaveDebounce = 1000 * time.Millisecond

	// Defaults installed by a trip reset.
	DefaultDestination = "新旅程"
	DefaultCoverImage  = "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?q=80&w=2094&auto=format&fit=crop"

	// Quick-add defaults for itinerary items.
	DefaultStartTime      = "10:00"
	DefaultDuration       = "1h"
	DefaultActivity       = "新行程"
	DefaultTransportation = "步行"

	// AllDay is the duration token for a whole-day activity. It does not
	// advance the clock during a schedule cascade.
	AllDay = "全天"

	// DefaultForWhom is the buyer label a shopping item normalizes to when
	// none is given.
	DefaultForWhom = "自己"

	// DefaultCurrency is the ledger base currency.
	DefaultCurrency = "TWD"
)

// DurationTokens are the fixed duration choices offered when adding an
// itinerary item. Free-form "<n>h"/"<n>m" strings are also accepted.
var DurationTokens = []string{"30m", "1h", "1.5h", "2h", "3h", "4h", "5h", AllDay}

// Currencies supported by the expense ledger.
var Currencies = []string{"TWD", "JPY", "USD"}
