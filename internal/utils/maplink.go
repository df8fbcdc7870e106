package utils

import (
	"net/url"
	"strings"

	"github.com/mchou/travelpulse/internal/models"
)

// IsGoogleMapLink reports whether a free-text location is already a Google
// Maps URL.
func IsGoogleMapLink(s string) bool {
	return s != "" && (strings.Contains(s, "google.com/maps") || strings.Contains(s, "goo.gl/maps"))
}

// FinalMapLink resolves the map link for an itinerary item: an explicit
// location URL wins, then a location that is itself a maps link, then a maps
// search for the location text.
func FinalMapLink(item models.ItineraryItem) string {
	if item.LocationURL != "" {
		return item.LocationURL
	}
	if IsGoogleMapLink(item.Location) {
		return item.Location
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(item.Location)
}
