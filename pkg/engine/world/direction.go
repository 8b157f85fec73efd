package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the directions in neighbor scan order:
// down, up, right, left. Search tie-breaks depend on this order.
func AllDirections() []Direction {
	return []Direction{South, North, East, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// DirectionBetween returns the direction leading from a to an adjacent cell b.
// ok is false when the cells are not orthogonally adjacent.
func DirectionBetween(a, b *Cell) (dir Direction, ok bool) {
	if !a.IsAdjacent(b) {
		return North, false
	}
	for _, d := range AllDirections() {
		dr, dc := d.Delta()
		if a.Row+dr == b.Row && a.Col+dc == b.Col {
			return d, true
		}
	}
	return North, false
}
