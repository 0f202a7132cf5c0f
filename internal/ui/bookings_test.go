package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"busfinder/internal/booking"
)

func TestBookingsView_EmptyState(t *testing.T) {
	v := NewBookingsView(booking.NewState(""))
	if !strings.Contains(v.View(), "No bookings found.") {
		t.Error("empty list should render the no-bookings notice")
	}
}

func TestBookingsView_ShowsRecordAfterRefresh(t *testing.T) {
	state := booking.NewState("")
	v := NewBookingsView(state)

	state.SetOrigin("City A")
	state.SetDestination("City B")
	state.Search()
	v.Refresh()

	view := v.View()
	for _, want := range []string{"City A", "City B", "Express Bus 101"} {
		if !strings.Contains(view, want) {
			t.Errorf("bookings view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "No bookings found.") {
		t.Error("empty notice shown alongside a booking")
	}
}

func TestBookingsView_TinyTerminalClampsHeight(t *testing.T) {
	state := booking.NewState("")
	v := NewBookingsView(state)
	state.Search()
	v.Refresh()

	v.Update(tea.WindowSizeMsg{Width: 40, Height: 3})
	if h := v.list.Height(); h < 0 {
		t.Errorf("list height = %d, want >= 0", h)
	}
	v.View() // must not panic on a 3-row terminal
}

func TestBookingItem_Title(t *testing.T) {
	item := bookingItem{Record: booking.Record{
		Origin:      "A",
		Destination: "B",
		Date:        "2026-08-27",
		BusLabel:    booking.BusLabel,
	}}
	want := "From: A | To: B | Date: 2026-08-27 | Bus: Express Bus 101"
	if got := item.Title(); got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}
