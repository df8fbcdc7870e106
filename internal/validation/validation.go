package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/utils"
)

// ValidateDate returns an error for anything but a YYYY-MM-DD date.
func ValidateDate(date string) error {
	if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

// ValidateTime returns an error for anything but an HH:MM clock time.
func ValidateTime(t string) error {
	if !utils.ValidateTimeFormat(t) {
		return fmt.Errorf("invalid time %q, expected HH:MM", t)
	}
	return nil
}

// ValidateDuration accepts the fixed duration tokens plus free-form "<n>h"
// (fractional allowed) and "<n>m" (whole minutes) strings.
func ValidateDuration(d string) error {
	if d == constants.AllDay {
		return nil
	}
	if strings.HasSuffix(d, "h") {
		if _, err := strconv.ParseFloat(strings.TrimSuffix(d, "h"), 64); err == nil {
			return nil
		}
	}
	if strings.HasSuffix(d, "m") {
		if _, err := strconv.Atoi(strings.TrimSuffix(d, "m")); err == nil {
			return nil
		}
	}
	return fmt.Errorf("invalid duration %q, expected one of %s or \"<n>h\"/\"<n>m\"",
		d, strings.Join(constants.DurationTokens, ", "))
}

// ValidateCurrency restricts ledger entries to the supported currency set.
func ValidateCurrency(c string) error {
	for _, cur := range constants.Currencies {
		if c == cur {
			return nil
		}
	}
	return fmt.Errorf("unsupported currency %q, expected one of %s", c, strings.Join(constants.Currencies, ", "))
}

// ValidateItemType restricts itinerary items to the known activity types.
func ValidateItemType(t string) error {
	switch t {
	case "attraction", "food", "transport", "rest":
		return nil
	}
	return fmt.Errorf("invalid item type %q, expected attraction, food, transport or rest", t)
}

// ValidateAmount rejects negative ledger amounts.
func ValidateAmount(a float64) error {
	if a < 0 {
		return fmt.Errorf("amount must not be negative, got %v", a)
	}
	return nil
}
