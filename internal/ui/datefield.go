package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// dateDisplayLayout is how the picker renders its value on screen.
// Booking records format the date separately via booking.State.
const dateDisplayLayout = "Mon, 02 Jan 2006"

// DateField is a single-date picker driven by the arrow keys:
// left/right move a day, up/down a week, pgup/pgdn a month, t jumps to
// today. Exactly one date is selected at any time; there are no ranges
// and no invalid inputs.
type DateField struct {
	Value   time.Time
	focused bool
}

// NewDateField creates a picker initialized to the given date.
func NewDateField(value time.Time) DateField {
	return DateField{Value: value}
}

// Focus gives the field keyboard focus.
func (d *DateField) Focus() { d.focused = true }

// Blur removes keyboard focus.
func (d *DateField) Blur() { d.focused = false }

// Focused reports whether the field has keyboard focus.
func (d DateField) Focused() bool { return d.focused }

// Update applies a key event to the field. Returns the updated field
// and whether the value changed.
func (d DateField) Update(msg tea.KeyMsg) (DateField, bool) {
	if !d.focused {
		return d, false
	}
	switch msg.String() {
	case "left":
		d.Value = d.Value.AddDate(0, 0, -1)
	case "right":
		d.Value = d.Value.AddDate(0, 0, 1)
	case "up":
		d.Value = d.Value.AddDate(0, 0, -7)
	case "down":
		d.Value = d.Value.AddDate(0, 0, 7)
	case "pgup":
		d.Value = d.Value.AddDate(0, -1, 0)
	case "pgdown":
		d.Value = d.Value.AddDate(0, 1, 0)
	case "t":
		y, m, day := time.Now().Date()
		d.Value = time.Date(y, m, day, 0, 0, 0, 0, time.Local)
	default:
		return d, false
	}
	return d, true
}

// View renders the field; arrows appear when focused.
func (d DateField) View() string {
	text := d.Value.Format(dateDisplayLayout)
	if d.focused {
		return Styles.Selected.Render("◂ " + text + " ▸")
	}
	return Styles.Normal.Render("  " + text)
}
