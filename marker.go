package ledgerfmt

import "fmt"

// Marker is the reconciliation status of a transaction or of a posting.
type Marker int

const (
	// None means no explicit status.
	None Marker = iota
	// Pending is written "!".
	Pending
	// Cleared is written "*".
	Cleared
)

// Symbol returns the textual form of the marker: "", "!" or "*".
func (m Marker) Symbol() string {
	switch m {
	case Pending:
		return "!"
	case Cleared:
		return "*"
	default:
		return ""
	}
}

func (m Marker) String() string {
	switch m {
	case None:
		return "none"
	case Pending:
		return "pending"
	case Cleared:
		return "cleared"
	default:
		return fmt.Sprintf("Marker(%d)", int(m))
	}
}

// ParseMarker parses a marker from its symbol or its name.
func ParseMarker(s string) (Marker, error) {
	switch s {
	case "", "none":
		return None, nil
	case "!", "pending":
		return Pending, nil
	case "*", "cleared":
		return Cleared, nil
	default:
		return None, fmt.Errorf("unknown marker %q", s)
	}
}

// markerOf converts a marker symbol byte.
func markerOf(c byte) (Marker, bool) {
	switch c {
	case '!':
		return Pending, true
	case '*':
		return Cleared, true
	}
	return None, false
}

// toggled is the binary cycle used by interactive toggling.
//
// Pending goes back to None, it never becomes Cleared in one step.
func (m Marker) toggled() Marker {
	if m == None {
		return Cleared
	}
	return None
}
