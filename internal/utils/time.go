package utils

import (
	"time"

	"github.com/mchou/travelpulse/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// DateRange enumerates every date from start to end inclusive. An invalid or
// inverted range yields nil.
func DateRange(start, end string) []string {
	from, err := time.Parse(constants.DateFormat, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(constants.DateFormat, end)
	if err != nil {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constants.DateFormat))
	}
	return dates
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}
