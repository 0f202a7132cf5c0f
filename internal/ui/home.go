package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"busfinder/internal/booking"
)

// Field IDs for the home form, in focus order.
const (
	fieldOrigin      = "origin"
	fieldDestination = "destination"
	fieldDate        = "date"
	fieldSearch      = "search"
)

// HomeView is the search form: origin, destination, a date picker, and
// the "Search Bus" action. Every edit is pushed straight into the
// booking state; pressing search emits SearchMsg for the app to handle.
type HomeView struct {
	state       *booking.State
	origin      textinput.Model
	destination textinput.Model
	date        DateField
	focus       *FocusManager
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the home form with the origin field focused.
func NewHomeView(state *booking.State) *HomeView {
	origin := textinput.New()
	origin.Placeholder = "From"
	origin.Width = 24

	destination := textinput.New()
	destination.Placeholder = "To"
	destination.Width = 24

	h := &HomeView{
		state:       state,
		origin:      origin,
		destination: destination,
		date:        NewDateField(state.Query.Date),
		focus: &FocusManager{
			Order: []string{fieldOrigin, fieldDestination, fieldDate, fieldSearch},
		},
	}
	h.applyFocus(fieldOrigin)
	return h
}

// Editing reports whether a form field currently has keyboard focus.
// While editing, global single-key bindings are suspended so typed
// characters (including spaces) reach the field.
func (h *HomeView) Editing() bool {
	return h.focus.Current != ""
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if !h.Editing() {
		switch key.String() {
		case "enter", "i":
			h.applyFocus(fieldOrigin)
			return h, textinput.Blink
		}
		return h, nil
	}

	switch key.String() {
	case "esc":
		h.applyFocus("")
		return h, nil
	case "enter":
		if h.focus.Current == fieldSearch {
			return h, func() tea.Msg { return SearchMsg{} }
		}
		h.applyFocus(h.focus.Next())
		return h, nil
	case "tab":
		h.applyFocus(h.focus.Next())
		return h, nil
	case "shift+tab":
		h.applyFocus(h.focus.Prev())
		return h, nil
	}

	var cmd tea.Cmd
	switch h.focus.Current {
	case fieldOrigin:
		h.origin, cmd = h.origin.Update(msg)
		h.state.SetOrigin(h.origin.Value())
	case fieldDestination:
		h.destination, cmd = h.destination.Update(msg)
		h.state.SetDestination(h.destination.Value())
	case fieldDate:
		var changed bool
		h.date, changed = h.date.Update(key)
		if changed {
			h.state.SetDate(h.date.Value)
		}
	}
	return h, cmd
}

// applyFocus moves keyboard focus to the named field ("" blurs all).
func (h *HomeView) applyFocus(id string) {
	if id == "" {
		h.focus.Blur()
	} else {
		h.focus.SetFocus(id)
	}
	h.origin.Blur()
	h.destination.Blur()
	h.date.Blur()
	switch id {
	case fieldOrigin:
		h.origin.Focus()
	case fieldDestination:
		h.destination.Focus()
	case fieldDate:
		h.date.Focus()
	}
}

// View implements View.
func (h *HomeView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Find a Bus") + "\n\n")

	b.WriteString(h.fieldLabel("From", fieldOrigin) + h.origin.View() + "\n")
	b.WriteString(h.fieldLabel("To", fieldDestination) + h.destination.View() + "\n")
	b.WriteString(h.fieldLabel("Date", fieldDate) + h.date.View() + "\n\n")

	button := "[ Search Bus ]"
	if h.focus.Current == fieldSearch {
		b.WriteString(Styles.Selected.Render("▸ " + button))
	} else {
		b.WriteString(Styles.Normal.Render("  " + button))
	}
	b.WriteString("\n")

	if res := h.state.LastResult; res != nil {
		b.WriteString("\n" + Styles.Notice.Render("Booking confirmed!") + "\n")
		if res.Match != nil {
			m := res.Match
			b.WriteString(Styles.Status.Render(fmt.Sprintf("Bus Found: %s | Departure: %s | Arrival: %s", m.Bus, m.Departure, m.Arrival)) + "\n")
		} else {
			b.WriteString(Styles.Muted.Render("No buses found for the selected route.") + "\n")
		}
	}

	if h.Editing() {
		b.WriteString("\n" + Styles.Hint.Render("tab: next field  enter: next/search  esc: leave form"))
	} else {
		b.WriteString("\n" + Styles.Hint.Render("enter: edit form"))
	}
	return b.String()
}

// fieldLabel renders a left-hand label, marking the focused field.
func (h *HomeView) fieldLabel(label, id string) string {
	marker := "  "
	style := Styles.Muted
	if h.focus.Current == id {
		marker = "▸ "
		style = Styles.Section
	}
	return marker + style.Render(fmt.Sprintf("%-6s", label))
}
