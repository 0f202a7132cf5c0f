package ui

import tea "github.com/charmbracelet/bubbletea"

// TrackView is the Track Bus panel. Tracking is not implemented; the
// panel shows a fixed placeholder.
type TrackView struct{}

var _ View = (*TrackView)(nil)

// NewTrackView creates the track panel.
func NewTrackView() *TrackView {
	return &TrackView{}
}

// Init implements View.
func (t *TrackView) Init() tea.Cmd { return nil }

// Update implements View.
func (t *TrackView) Update(tea.Msg) (View, tea.Cmd) { return t, nil }

// View implements View.
func (t *TrackView) View() string {
	return Styles.Title.Render("Track Bus") + "\n\n" +
		Styles.Empty.Render("Feature coming soon with real-time tracking.")
}
