package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryLastWriteWins(t *testing.T) {
	s := NewState("")

	s.SetOrigin("City A")
	s.SetOrigin("City C")
	s.SetDestination("City B")
	s.SetDestination("City D")

	assert.Equal(t, "City C", s.Query.Origin)
	assert.Equal(t, "City D", s.Query.Destination)

	d := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.Local)
	s.SetDate(d)
	assert.Equal(t, d, s.Query.Date)
}

func TestSearchDerivesRecordFromQuery(t *testing.T) {
	s := NewState("")
	s.SetOrigin("A")
	s.SetDestination("B")
	s.SetDate(time.Date(2026, time.September, 3, 0, 0, 0, 0, time.Local))

	s.Search()

	require.Len(t, s.Bookings, 1)
	rec := s.Bookings[0]
	assert.Equal(t, "A", rec.Origin)
	assert.Equal(t, "B", rec.Destination)
	assert.Equal(t, "2026-09-03", rec.Date)
	assert.Equal(t, "Express Bus 101", rec.BusLabel)
}

func TestSearchReplacesPriorBooking(t *testing.T) {
	s := NewState("")
	s.SetOrigin("A")
	s.SetDestination("B")
	s.Search()

	s.SetOrigin("X")
	s.SetDestination("Y")
	s.Search()

	require.Len(t, s.Bookings, 1, "search must replace, not accumulate")
	assert.Equal(t, "X", s.Bookings[0].Origin)
	assert.Equal(t, "Y", s.Bookings[0].Destination)
}

func TestSearchAllowsEmptyFields(t *testing.T) {
	s := NewState("")

	s.Search()

	require.Len(t, s.Bookings, 1)
	assert.Empty(t, s.Bookings[0].Origin)
	assert.Empty(t, s.Bookings[0].Destination)
	assert.Equal(t, BusLabel, s.Bookings[0].BusLabel)
}

func TestSearchReportsRouteMatch(t *testing.T) {
	s := NewState("")
	s.SetOrigin("city a")
	s.SetDestination("CITY B")

	res := s.Search()

	require.NotNil(t, res.Match, "route lookup is case-insensitive")
	assert.Equal(t, "Express 101", res.Match.Bus)
	// The record's label stays the placeholder constant regardless.
	assert.Equal(t, BusLabel, res.Record.BusLabel)
}

func TestSearchReportsNoMatch(t *testing.T) {
	s := NewState("")
	s.SetOrigin("Nowhere")
	s.SetDestination("Elsewhere")

	res := s.Search()

	assert.Nil(t, res.Match)
	require.Len(t, s.Bookings, 1)
}

func TestEditingClearsLastResult(t *testing.T) {
	s := NewState("")
	s.Search()
	require.NotNil(t, s.LastResult)

	s.SetOrigin("A")
	assert.Nil(t, s.LastResult)

	s.Search()
	s.SetDestination("B")
	assert.Nil(t, s.LastResult)

	s.Search()
	s.SetDate(time.Now())
	assert.Nil(t, s.LastResult)
}

func TestSelectTabAllTransitionsAllowed(t *testing.T) {
	s := NewState("")
	assert.Equal(t, TabHome, s.Active)

	for _, from := range AllTabs {
		for _, to := range AllTabs {
			s.Active = from
			s.SelectTab(to)
			assert.Equal(t, to, s.Active)
		}
	}
}

func TestOnChangeFiresPerTransition(t *testing.T) {
	s := NewState("")
	var calls int
	s.OnChange = func() { calls++ }

	s.SetOrigin("A")
	s.SetDestination("B")
	s.SetDate(time.Now())
	s.Search()
	s.SelectTab(TabRoutes)

	assert.Equal(t, 5, calls)
}
