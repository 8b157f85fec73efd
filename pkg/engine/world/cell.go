// Package world provides the grid primitives used by the path search:
// cells with a single mutually exclusive state, cardinal directions, and the
// square grid that owns them.
package world

import "fmt"

// Cell represents a single square of the grid.
// Row and Col are its identity; X, Y and Size describe where a presentation
// layer draws it.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Pixel geometry
	X    int
	Y    int
	Size int

	state State

	// Neighbor set as of the last Grid.RefreshAllNeighbors call
	neighbors []*Cell
}

// NewCell creates a new empty cell at the given position
func NewCell(row, col, size int) *Cell {
	return &Cell{
		Row:   row,
		Col:   col,
		X:     row * size,
		Y:     col * size,
		Size:  size,
		state: Empty,
	}
}

// Pos returns the row and column of the cell
func (c *Cell) Pos() (row, col int) {
	return c.Row, c.Col
}

// String returns "row:col"
func (c *Cell) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// State returns the current state of the cell
func (c *Cell) State() State {
	return c.state
}

// SetState replaces the state of the cell
func (c *Cell) SetState(s State) {
	if c == nil || !s.IsValid() {
		return
	}
	c.state = s
}

// Reset sets the cell back to Empty
func (c *Cell) Reset() {
	c.SetState(Empty)
}

// IsEmpty returns true if the cell is Empty
func (c *Cell) IsEmpty() bool { return c.state == Empty }

// IsStart returns true if the cell is the Start marker
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd returns true if the cell is the End marker
func (c *Cell) IsEnd() bool { return c.state == End }

// IsBarrier returns true if the cell cannot be traversed
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsOpen returns true if the cell is on the search frontier
func (c *Cell) IsOpen() bool { return c.state == Open }

// IsClosed returns true if the cell has been expanded
func (c *Cell) IsClosed() bool { return c.state == Closed }

// IsPath returns true if the cell is part of a reconstructed path
func (c *Cell) IsPath() bool { return c.state == Path }

// Neighbors returns the neighbor set computed by the last refresh.
// It is not updated when barriers change; call Grid.RefreshAllNeighbors first.
func (c *Cell) Neighbors() []*Cell {
	if c == nil {
		return nil
	}
	return c.neighbors
}

// IsAdjacent returns true if other is orthogonally next to c
func (c *Cell) IsAdjacent(other *Cell) bool {
	if c == nil || other == nil {
		return false
	}
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}
