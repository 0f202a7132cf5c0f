package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"busfinder/internal/booking"
)

// RoutesView lists the fixed route table. It renders the same three
// route strings regardless of any other state.
type RoutesView struct{}

var _ View = (*RoutesView)(nil)

// NewRoutesView creates the routes panel.
func NewRoutesView() *RoutesView {
	return &RoutesView{}
}

// Init implements View.
func (r *RoutesView) Init() tea.Cmd { return nil }

// Update implements View.
func (r *RoutesView) Update(tea.Msg) (View, tea.Cmd) { return r, nil }

// View implements View.
func (r *RoutesView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Available Routes") + "\n\n")
	for _, route := range booking.Routes() {
		b.WriteString("  " + Styles.Normal.Render(route.Display()) + "\n")
	}
	return b.String()
}
