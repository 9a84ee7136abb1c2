package order

// transitions lists the legal next states for each status. Delivered and
// cancelled are terminal and have no entries.
var transitions = map[Status][]Status{
	StatusPending:    {StatusInDelivery, StatusCancelled},
	StatusInDelivery: {StatusDelivered, StatusCancelled},
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
func IsTerminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether moving from one status to the other is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
