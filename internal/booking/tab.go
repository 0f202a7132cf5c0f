package booking

// Tab identifies one of the four mutually exclusive panels. Any tab is
// reachable from any other; there are no guards.
type Tab int

const (
	TabHome Tab = iota
	TabTrack
	TabRoutes
	TabBookings
)

// AllTabs lists the tabs in display order.
var AllTabs = []Tab{TabHome, TabTrack, TabRoutes, TabBookings}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabTrack:
		return "Track Bus"
	case TabRoutes:
		return "Routes"
	case TabBookings:
		return "My Booking"
	default:
		return "Unknown"
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(AllTabs))
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(AllTabs) - 1) % len(AllTabs))
}
