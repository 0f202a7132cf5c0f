package booking

import "strings"

// Route is one entry in the fixed route table. The table is placeholder
// data; nothing updates it at runtime.
type Route struct {
	Origin      string
	Destination string
	Bus         string
	Departure   string
	Arrival     string
}

// routes is the fixed table shown on the Routes tab and consulted by
// the match hint on the Home tab.
var routes = []Route{
	{Origin: "City A", Destination: "City B", Bus: "Express 101", Departure: "09:00", Arrival: "12:00"},
	{Origin: "City C", Destination: "City D", Bus: "Rapid 202", Departure: "14:00", Arrival: "18:00"},
	{Origin: "City E", Destination: "City F", Bus: "Deluxe 303", Departure: "07:00", Arrival: "11:00"},
}

// Routes returns the fixed route table. Callers must not mutate the
// returned slice.
func Routes() []Route {
	return routes
}

// Display returns the route string shown on the Routes tab,
// e.g. "City A - City B".
func (r Route) Display() string {
	return r.Origin + " - " + r.Destination
}

// FindRoute looks up a route by origin and destination,
// case-insensitively. Returns nil when no route matches.
func FindRoute(origin, destination string) *Route {
	for i := range routes {
		if strings.EqualFold(routes[i].Origin, origin) && strings.EqualFold(routes[i].Destination, destination) {
			return &routes[i]
		}
	}
	return nil
}
