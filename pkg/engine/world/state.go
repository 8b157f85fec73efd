package world

// State is the single display/search state of a cell.
// A cell is in exactly one State at a time.
type State int

// Cell states
const (
	Empty State = iota
	Start
	End
	Barrier
	Open
	Closed
	Path
)

// AllStates returns every state in declaration order
func AllStates() []State {
	return []State{Empty, Start, End, Barrier, Open, Closed, Path}
}

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case End:
		return "End"
	case Barrier:
		return "Barrier"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the state is one of the declared states
func (s State) IsValid() bool {
	return s >= Empty && s <= Path
}

// IsMarker returns true for the states placed by the user rather than the search
// (Start, End and Barrier).
func (s State) IsMarker() bool {
	return s == Start || s == End || s == Barrier
}

// IsSearchMark returns true for the states written by a search run.
func (s State) IsSearchMark() bool {
	return s == Open || s == Closed || s == Path
}
