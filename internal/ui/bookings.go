package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"busfinder/internal/booking"
)

// bookingItem implements list.Item for a booking record.
type bookingItem struct {
	booking.Record
}

func (b bookingItem) FilterValue() string { return b.Origin + " " + b.Destination }
func (b bookingItem) Title() string {
	return fmt.Sprintf("From: %s | To: %s | Date: %s | Bus: %s", b.Origin, b.Destination, b.Date, b.BusLabel)
}
func (b bookingItem) Description() string { return "" }

// BookingsView is the My Booking panel: the current booking list, or an
// empty notice before the first search.
type BookingsView struct {
	state *booking.State
	list  list.Model
}

var _ View = (*BookingsView)(nil)

// NewBookingsView creates the bookings panel over the shared state.
func NewBookingsView(state *booking.State) *BookingsView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "My Bookings"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	v := &BookingsView{state: state, list: l}
	v.Refresh()
	return v
}

// Refresh rebuilds the list items from the booking state. The app calls
// this after every search.
func (v *BookingsView) Refresh() {
	items := make([]list.Item, len(v.state.Bookings))
	for i, rec := range v.state.Bookings {
		items[i] = bookingItem{Record: rec}
	}
	v.list.SetItems(items)
}

// Init implements View.
func (v *BookingsView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *BookingsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.list.SetWidth(size.Width)
		height := size.Height - 6 // Reserve space for the tab bar
		if height < 0 {
			height = 0
		}
		v.list.SetHeight(height)
		return v, nil
	}
	// list.Model handles j/k navigation natively.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *BookingsView) View() string {
	if len(v.state.Bookings) == 0 {
		return Styles.Title.Render("My Bookings") + "\n\n" +
			Styles.Empty.Render("No bookings found.")
	}
	// Default dimensions if no WindowSizeMsg arrived (for tests)
	if v.list.Width() == 0 {
		v.list.SetWidth(80)
	}
	if v.list.Height() == 0 {
		v.list.SetHeight(20)
	}
	return v.list.View()
}
