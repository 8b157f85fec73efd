package search

import "gridpath/pkg/engine/world"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// On a 4-connected unit-cost grid it never overestimates and is consistent.
func Manhattan(a, b *world.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
