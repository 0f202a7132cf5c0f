package ui

import "busfinder/internal/booking"

// SelectTabMsg is sent when the user switches tabs (tab/shift+tab, 1-4,
// or a SPC binding).
type SelectTabMsg struct {
	Tab booking.Tab
}

// SearchMsg is sent when the user triggers the Search Bus action.
type SearchMsg struct{}
