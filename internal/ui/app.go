package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"busfinder/internal/booking"
	"busfinder/internal/telemetry"
)

// AppModel is the root model: the shared booking state, one view per
// tab, and the leader-key handler.
type AppModel struct {
	State      *booking.State
	Home       *HomeView
	Track      *TrackView
	Routes     *RoutesView
	Bookings   *BookingsView
	KeyHandler *KeyHandler
	Tracer     *telemetry.Tracer

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. tracer may be nil.
func NewAppModel(state *booking.State, tracer *telemetry.Tracer) *AppModel {
	a := &AppModel{
		State:    state,
		Home:     NewHomeView(state),
		Track:    NewTrackView(),
		Routes:   NewRoutesView(),
		Bookings: NewBookingsView(state),
		Tracer:   tracer,
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for i, tab := range booking.AllTabs {
		tab := tab
		cmd := func() tea.Msg { return SelectTabMsg{Tab: tab} }
		seq := string(rune('1' + i))
		reg.Bind(seq, cmd)
		reg.BindWithDesc("SPC "+seq, cmd, tab.String())
	}
	reg.Bind("tab", func() tea.Msg { return SelectTabMsg{Tab: state.Active.Next()} })
	reg.Bind("shift+tab", func() tea.Msg { return SelectTabMsg{Tab: state.Active.Prev()} })
	reg.BindWithDescForTab("SPC s", func() tea.Msg { return SearchMsg{} }, "Search Bus", []booking.Tab{booking.TabHome})
	a.KeyHandler = NewKeyHandler(reg)

	if state.OnChange == nil {
		state.OnChange = func() {
			log.Trace().Msg("state transition")
		}
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Home.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// Every panel gets the new size, visible or not.
		for _, v := range a.views() {
			v.Update(msg)
		}
		return a, nil

	case SelectTabMsg:
		from := a.State.Active
		a.State.SelectTab(msg.Tab)
		log.Debug().Stringer("from", from).Stringer("to", msg.Tab).Msg("tab selected")
		a.Tracer.Action(context.Background(), "ui.select_tab",
			attribute.String("tab", msg.Tab.String()))
		return a, a.currentView().Init()

	case SearchMsg:
		res := a.State.Search()
		a.Bookings.Refresh()
		log.Info().
			Str("origin", res.Record.Origin).
			Str("destination", res.Record.Destination).
			Str("date", res.Record.Date).
			Bool("route_matched", res.Match != nil).
			Msg("search booked")
		a.Tracer.Action(context.Background(), "ui.search",
			attribute.String("origin", res.Record.Origin),
			attribute.String("destination", res.Record.Destination),
			attribute.Bool("route_matched", res.Match != nil))
		return a, nil

	case tea.KeyMsg:
		// ctrl+c quits even mid-edit.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// While a form field is focused, keys belong to the form so
		// typed text (spaces included) is never swallowed by bindings.
		if a.State.Active == booking.TabHome && a.Home.Editing() {
			break
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderTabBar() + "\n\n")
	b.WriteString(a.currentView().View())
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.State.Active))
	}
	return b.String()
}

// renderTabBar renders the four-way tab selector; exactly one tab is
// marked active.
func (a *appModelAdapter) renderTabBar() string {
	labels := make([]string, 0, len(booking.AllTabs))
	for _, tab := range booking.AllTabs {
		label := tab.String()
		if tab == a.State.Active {
			labels = append(labels, Styles.TabActive.Render(label))
		} else {
			labels = append(labels, Styles.TabInactive.Render(label))
		}
	}
	return " " + strings.Join(labels, Styles.Muted.Render("  │  "))
}

func (a *appModelAdapter) currentView() View {
	switch a.State.Active {
	case booking.TabTrack:
		return a.Track
	case booking.TabRoutes:
		return a.Routes
	case booking.TabBookings:
		return a.Bookings
	default:
		return a.Home
	}
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.State.Active {
	case booking.TabHome:
		if h, ok := v.(*HomeView); ok {
			a.Home = h
		}
	case booking.TabTrack:
		if t, ok := v.(*TrackView); ok {
			a.Track = t
		}
	case booking.TabRoutes:
		if r, ok := v.(*RoutesView); ok {
			a.Routes = r
		}
	case booking.TabBookings:
		if bk, ok := v.(*BookingsView); ok {
			a.Bookings = bk
		}
	}
}

func (a *appModelAdapter) views() []View {
	return []View{a.Home, a.Track, a.Routes, a.Bookings}
}
