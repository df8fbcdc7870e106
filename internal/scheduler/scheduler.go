package scheduler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/models"
)

// Engine owns the per-day ordering of itinerary items and the duration-driven
// start-time cascade triggered by manual reordering.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// DayItems returns the items for one date in display order: ascending start
// time, ties broken by insertion order (stable sort).
func (e *Engine) DayItems(items []models.ItineraryItem, date string) []models.ItineraryItem {
	var day []models.ItineraryItem
	for _, item := range items {
		if item.Date == date {
			day = append(day, item)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].StartTime < day[j].StartTime
	})
	return day
}

// Reorder moves the item at position from to position to within the given
// date's display list, then recomputes start times: each item after the first
// starts when its predecessor ends. The first item anchors the day and keeps
// its own start time, wherever it came from. Items on other dates are
// returned untouched, in their original order. Moving within a list of 0 or 1
// items, or onto the same position, is a no-op.
func (e *Engine) Reorder(items []models.ItineraryItem, date string, from, to int) ([]models.ItineraryItem, error) {
	day := e.DayItems(items, date)
	if len(day) < 2 || from == to {
		return items, nil
	}
	if from < 0 || from >= len(day) || to < 0 || to >= len(day) {
		return nil, fmt.Errorf("reorder position out of range: %d -> %d of %d items", from, to, len(day))
	}

	day = arrayMove(day, from, to)
	for i := 1; i < len(day); i++ {
		prev := day[i-1]
		next, err := AddDuration(prev.StartTime, prev.Duration)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", prev.Activity, err)
		}
		day[i].StartTime = next
	}

	out := make([]models.ItineraryItem, 0, len(items))
	for _, item := range items {
		if item.Date != date {
			out = append(out, item)
		}
	}
	return append(out, day...), nil
}

// MoveItem is Reorder addressed by item ids, the shape a drag gesture
// produces. Both ids must belong to the same date's list; a cross-date move
// is rejected rather than silently reassigning the item's date.
func (e *Engine) MoveItem(items []models.ItineraryItem, date, fromID, toID string) ([]models.ItineraryItem, error) {
	if fromID == toID {
		return items, nil
	}
	day := e.DayItems(items, date)
	from, to := -1, -1
	for i, item := range day {
		switch item.ID {
		case fromID:
			from = i
		case toID:
			to = i
		}
	}
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("items %s and %s are not both scheduled on %s", fromID, toID, date)
	}
	return e.Reorder(items, date, from, to)
}

// arrayMove returns a copy of list with the element at from moved to to.
func arrayMove(list []models.ItineraryItem, from, to int) []models.ItineraryItem {
	out := append([]models.ItineraryItem(nil), list...)
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.ItineraryItem{item}, out[to:]...)...)
	return out
}

// AddDuration advances an HH:MM clock time by a duration token. "全天" leaves
// the time unchanged. Tokens ending in "h" are (possibly fractional) hours,
// tokens ending in "m" whole minutes; anything else advances by zero. The
// clock wraps modulo 24 hours with no date rollover — a cascade past midnight
// stays on the same date.
func AddDuration(start, duration string) (string, error) {
	if duration == constants.AllDay {
		return start, nil
	}

	parts := strings.SplitN(start, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q", start)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid time %q", start)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid time %q", start)
	}

	total := hours*60 + minutes + DurationMinutes(duration)
	total %= 24 * 60
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// DurationMinutes converts a duration token to minutes. Unrecognized tokens
// (including "全天") count as zero.
func DurationMinutes(duration string) int {
	if strings.HasSuffix(duration, "h") {
		if h, err := strconv.ParseFloat(strings.TrimSuffix(duration, "h"), 64); err == nil {
			return int(h * 60)
		}
	} else if strings.HasSuffix(duration, "m") {
		if m, err := strconv.Atoi(strings.TrimSuffix(duration, "m")); err == nil {
			return m
		}
	}
	return 0
}
