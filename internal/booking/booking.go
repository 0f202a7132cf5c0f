// Package booking holds the in-memory state behind the busfinder UI:
// the in-progress search query, the booking list it produces, and the
// fixed route table. It knows nothing about rendering; the ui package
// projects this state onto the screen.
package booking

import "time"

// BusLabel is the placeholder label attached to every booking record.
const BusLabel = "Express Bus 101"

// DefaultDateFormat is the layout used for the formatted date on a
// booking record unless the caller overrides it.
const DefaultDateFormat = "2006-01-02"

// Query is the in-progress, user-edited origin/destination/date tuple.
// Fields are replaced unconditionally as the user types; no value is
// ever rejected.
type Query struct {
	Origin      string
	Destination string
	Date        time.Time
}

// Record is an immutable snapshot produced by a search. Its fields are
// a deterministic function of the Query captured at the moment the
// search ran; none of them is edited afterwards.
type Record struct {
	Origin      string
	Destination string
	Date        string // formatted for display, never re-parsed
	BusLabel    string
}

// NewRecord derives a booking record from a query. The bus label is
// always the placeholder constant, whatever the query holds.
func NewRecord(q Query, dateFormat string) Record {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	return Record{
		Origin:      q.Origin,
		Destination: q.Destination,
		Date:        q.Date.Format(dateFormat),
		BusLabel:    BusLabel,
	}
}
