package booking

import "time"

// SearchResult captures what the last search produced: the record that
// replaced the booking list plus the route-table match, if any. The
// match only feeds the hint on the Home tab; the record's bus label is
// the placeholder constant either way.
type SearchResult struct {
	Record Record
	Match  *Route
}

// State owns every piece of mutable application state: the in-progress
// query, the booking list, the active tab, and the outcome of the last
// search. It is mutated only through its transition methods, one UI
// event at a time; there is no concurrent access.
type State struct {
	Query      Query
	Bookings   []Record
	Active     Tab
	LastResult *SearchResult

	// DateFormat is the layout for the formatted date on new records.
	DateFormat string

	// OnChange, when set, is invoked after every transition. The UI
	// uses it as its redraw subscription.
	OnChange func()
}

// NewState returns the initial state: empty query dated today, no
// bookings, Home tab active.
func NewState(dateFormat string) *State {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	return &State{
		Query:      Query{Date: today()},
		Active:     TabHome,
		DateFormat: dateFormat,
	}
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// SetOrigin replaces the query origin unconditionally.
func (s *State) SetOrigin(text string) {
	s.Query.Origin = text
	s.LastResult = nil
	s.notify()
}

// SetDestination replaces the query destination unconditionally.
func (s *State) SetDestination(text string) {
	s.Query.Destination = text
	s.LastResult = nil
	s.notify()
}

// SetDate replaces the query date with a single selected date.
func (s *State) SetDate(date time.Time) {
	s.Query.Date = date
	s.LastResult = nil
	s.notify()
}

// Search snapshots the current query into one booking record and
// replaces the booking list with it. It never fails: empty fields are
// carried into the record as-is. The returned result also names the
// route-table match, if any, for display.
func (s *State) Search() SearchResult {
	res := SearchResult{
		Record: NewRecord(s.Query, s.DateFormat),
		Match:  FindRoute(s.Query.Origin, s.Query.Destination),
	}
	s.Bookings = []Record{res.Record}
	s.LastResult = &res
	s.notify()
	return res
}

// SelectTab replaces the active tab. Display concern only; no other
// state is touched.
func (s *State) SelectTab(tab Tab) {
	s.Active = tab
	s.notify()
}

func (s *State) notify() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
