package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFindItineraryItem(t *testing.T) {
	items := []ItineraryItem{
		{ID: "i1", Activity: "Shrine"},
		{ID: "i2", Activity: "Market"},
	}

	if item, ok := FindItineraryItem(items, "i2"); !ok || item.Activity != "Market" {
		t.Errorf("FindItineraryItem(i2) = %+v, %v", item, ok)
	}

	// A dangling reference is a normal outcome, never a panic or error.
	if _, ok := FindItineraryItem(items, "deleted-long-ago"); ok {
		t.Error("dangling id must report not found")
	}
	if _, ok := FindItineraryItem(items, ""); ok {
		t.Error("empty id must report not found")
	}
	if _, ok := FindItineraryItem(nil, "i1"); ok {
		t.Error("nil list must report not found")
	}
}

func TestTripStateClone_Independence(t *testing.T) {
	state := TripState{
		Destination: "首爾",
		DailyMaps:   map[string]string{"2026-04-01": "url"},
		Hotels: []Hotel{
			{ID: "h1", Name: "Inn", Pros: []string{"cheap"}, Images: []string{"a.jpg"}},
		},
		ItineraryItems: []ItineraryItem{{ID: "i1", Activity: "Palace"}},
		ShoppingItems:  []ShoppingItem{{ID: "s1", Name: "Snacks"}},
	}

	clone := state.Clone()
	clone.DailyMaps["2026-04-01"] = "tampered"
	clone.Hotels[0].Pros[0] = "tampered"
	clone.ItineraryItems[0].Activity = "tampered"
	clone.ShoppingItems[0].Name = "tampered"

	if state.DailyMaps["2026-04-01"] != "url" {
		t.Error("clone aliases DailyMaps")
	}
	if state.Hotels[0].Pros[0] != "cheap" {
		t.Error("clone aliases hotel slices")
	}
	if state.ItineraryItems[0].Activity != "Palace" {
		t.Error("clone aliases the itinerary list")
	}
	if state.ShoppingItems[0].Name != "Snacks" {
		t.Error("clone aliases the shopping list")
	}
}

func TestTripState_WireFieldNames(t *testing.T) {
	state := TripState{
		Destination: "x",
		StartDate:   "2026-04-01",
		ItineraryItems: []ItineraryItem{
			{ID: "i1", StartTime: "09:00", LocationURL: "u"},
		},
		ShoppingItems: []ShoppingItem{
			{ID: "s1", IsChecked: true, ItineraryItemID: "i1"},
		},
	}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// Persisted documents use the original camelCase layout so every backend
	// reads every other backend's writes.
	for _, field := range []string{
		`"startDate"`, `"coverImage"`, `"dailyMaps"`, `"itineraryItems"`,
		`"startTime"`, `"locationUrl"`, `"isChecked"`, `"itineraryItemId"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshaled state missing wire field %s", field)
		}
	}
}
