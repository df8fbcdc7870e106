package scheduler

import (
	"testing"

	"github.com/mchou/travelpulse/internal/models"
)

func TestReorder_CascadesStartTimes(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "a", Date: "2026-04-01", StartTime: "09:00", Duration: "1h", Activity: "Museum"},
		{ID: "b", Date: "2026-04-01", StartTime: "10:00", Duration: "30m", Activity: "Coffee"},
		{ID: "c", Date: "2026-04-01", StartTime: "13:00", Duration: "2h", Activity: "Temple"},
	}

	// Move the last item to the front: it anchors the day at its own start
	// time and everything after it cascades from duration.
	result, err := engine.Reorder(items, "2026-04-01", 2, 0)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	day := engine.DayItems(result, "2026-04-01")
	if len(day) != 3 {
		t.Fatalf("expected 3 items, got %d", len(day))
	}

	want := []struct {
		id    string
		start string
	}{
		{"c", "13:00"},
		{"a", "15:00"},
		{"b", "16:00"},
	}
	for i, w := range want {
		if day[i].ID != w.id {
			t.Errorf("position %d: expected item %s, got %s", i, w.id, day[i].ID)
		}
		if day[i].StartTime != w.start {
			t.Errorf("item %s: expected start %s, got %s", day[i].ID, w.start, day[i].StartTime)
		}
	}
}

func TestReorder_AllDayDoesNotAdvance(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "a", Date: "2026-04-01", StartTime: "08:00", Duration: "全天"},
		{ID: "b", Date: "2026-04-01", StartTime: "09:00", Duration: "1h"},
	}

	result, err := engine.Reorder(items, "2026-04-01", 1, 0)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	day := engine.DayItems(result, "2026-04-01")
	// "b" anchors at 09:00 with a 1h duration, "a" follows at 10:00; its
	// all-day duration then contributes nothing further.
	if day[0].ID != "b" || day[0].StartTime != "09:00" {
		t.Errorf("expected b at 09:00, got %s at %s", day[0].ID, day[0].StartTime)
	}
	if day[1].ID != "a" || day[1].StartTime != "10:00" {
		t.Errorf("expected a at 10:00, got %s at %s", day[1].ID, day[1].StartTime)
	}
}

func TestReorder_WrapsPastMidnight(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "a", Date: "2026-04-01", StartTime: "23:30", Duration: "1h"},
		{ID: "b", Date: "2026-04-01", StartTime: "23:45", Duration: "30m"},
	}

	result, err := engine.Reorder(items, "2026-04-01", 1, 0)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	day := engine.DayItems(result, "2026-04-01")
	// b anchors at 23:45 + 30m = 00:15 for a, same date: sorting puts the
	// wrapped time first.
	var a models.ItineraryItem
	for _, item := range day {
		if item.ID == "a" {
			a = item
		}
		if item.Date != "2026-04-01" {
			t.Errorf("item %s changed date to %s", item.ID, item.Date)
		}
	}
	if a.StartTime != "00:15" {
		t.Errorf("expected a to wrap to 00:15, got %s", a.StartTime)
	}
}

func TestReorder_NoOpOnSinglePositionOrEmptyDay(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "a", Date: "2026-04-01", StartTime: "09:00", Duration: "1h"},
	}

	result, err := engine.Reorder(items, "2026-04-01", 0, 0)
	if err != nil {
		t.Fatalf("same-position move failed: %v", err)
	}
	if len(result) != 1 || result[0].StartTime != "09:00" {
		t.Errorf("same-position move should leave items untouched")
	}

	result, err = engine.Reorder(items, "2026-04-02", 0, 1)
	if err != nil {
		t.Fatalf("move on empty day should be a no-op, got: %v", err)
	}
	if len(result) != 1 {
		t.Errorf("expected 1 item after empty-day no-op, got %d", len(result))
	}
}

func TestReorder_OutOfRange(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "a", Date: "2026-04-01", StartTime: "09:00", Duration: "1h"},
		{ID: "b", Date: "2026-04-01", StartTime: "10:00", Duration: "1h"},
	}

	if _, err := engine.Reorder(items, "2026-04-01", 0, 5); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, err := engine.Reorder(items, "2026-04-01", -1, 1); err == nil {
		t.Error("expected out-of-range error for negative index")
	}
}

func TestReorder_LeavesOtherDatesUntouched(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "x", Date: "2026-04-02", StartTime: "07:00", Duration: "1h"},
		{ID: "a", Date: "2026-04-01", StartTime: "09:00", Duration: "1h"},
		{ID: "b", Date: "2026-04-01", StartTime: "10:00", Duration: "1h"},
		{ID: "y", Date: "2026-04-03", StartTime: "20:00", Duration: "2h"},
	}

	result, err := engine.Reorder(items, "2026-04-01", 1, 0)
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	for _, item := range result {
		switch item.ID {
		case "x":
			if item.StartTime != "07:00" {
				t.Errorf("item x on another date changed to %s", item.StartTime)
			}
		case "y":
			if item.StartTime != "20:00" {
				t.Errorf("item y on another date changed to %s", item.StartTime)
			}
		}
	}
	if len(result) != 4 {
		t.Errorf("expected 4 items, got %d", len(result))
	}
}

func TestMoveItem_RejectsCrossDateMove(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "a", Date: "2026-04-01", StartTime: "09:00", Duration: "1h"},
		{ID: "b", Date: "2026-04-02", StartTime: "10:00", Duration: "1h"},
	}

	if _, err := engine.MoveItem(items, "2026-04-01", "a", "b"); err == nil {
		t.Error("expected cross-date move to be rejected")
	}
}

func TestMoveItem_SameIDIsNoOp(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "a", Date: "2026-04-01", StartTime: "09:00", Duration: "1h"},
		{ID: "b", Date: "2026-04-01", StartTime: "10:00", Duration: "1h"},
	}

	result, err := engine.MoveItem(items, "2026-04-01", "a", "a")
	if err != nil {
		t.Fatalf("MoveItem failed: %v", err)
	}
	if result[0].StartTime != "09:00" || result[1].StartTime != "10:00" {
		t.Error("same-id move should leave items untouched")
	}
}

func TestDayItems_SortsByStartTimeStable(t *testing.T) {
	engine := New()

	items := []models.ItineraryItem{
		{ID: "late", Date: "2026-04-01", StartTime: "14:00"},
		{ID: "tie1", Date: "2026-04-01", StartTime: "09:00"},
		{ID: "other", Date: "2026-04-02", StartTime: "08:00"},
		{ID: "tie2", Date: "2026-04-01", StartTime: "09:00"},
	}

	day := engine.DayItems(items, "2026-04-01")
	if len(day) != 3 {
		t.Fatalf("expected 3 items, got %d", len(day))
	}
	want := []string{"tie1", "tie2", "late"}
	for i, id := range want {
		if day[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, day[i].ID)
		}
	}
}

func TestAddDuration(t *testing.T) {
	tests := []struct {
		start    string
		duration string
		want     string
	}{
		{"09:00", "1h", "10:00"},
		{"09:00", "1.5h", "10:30"},
		{"09:00", "30m", "09:30"},
		{"09:45", "30m", "10:15"},
		{"23:30", "1h", "00:30"},
		{"08:00", "全天", "08:00"},
		{"08:00", "whatever", "08:00"},
	}

	for _, tt := range tests {
		got, err := AddDuration(tt.start, tt.duration)
		if err != nil {
			t.Errorf("AddDuration(%q, %q) failed: %v", tt.start, tt.duration, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddDuration(%q, %q) = %q, want %q", tt.start, tt.duration, got, tt.want)
		}
	}

	if _, err := AddDuration("not-a-time", "1h"); err == nil {
		t.Error("expected error for malformed start time")
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"1h", 60},
		{"1.5h", 90},
		{"2h", 120},
		{"30m", 30},
		{"90m", 90},
		{"全天", 0},
		{"", 0},
		{"xh", 0},
	}

	for _, tt := range tests {
		if got := DurationMinutes(tt.duration); got != tt.want {
			t.Errorf("DurationMinutes(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}
