package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive grid size or cell size.
	ErrInvalidSize = errors.New("world: grid size and cell size must be positive")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("world: position outside grid")
)

// Grid is a square lattice of cells, Size() x Size().
// It only stores per-cell state; keeping a single Start and End is the
// caller's job.
type Grid struct {
	cells    [][]*Cell
	size     int
	cellSize int
}

// NewGrid creates an n x n grid of Empty cells, each cellSize pixels wide
func NewGrid(n, cellSize int) (*Grid, error) {
	g := &Grid{}
	if err := g.Build(n, cellSize); err != nil {
		return nil, err
	}
	return g, nil
}

// Build (re)initializes the grid with the given dimensions
func (g *Grid) Build(n, cellSize int) error {
	if n <= 0 || cellSize <= 0 {
		return fmt.Errorf("%w: n=%d cellSize=%d", ErrInvalidSize, n, cellSize)
	}

	g.size = n
	g.cellSize = cellSize
	g.cells = make([][]*Cell, n)

	for row := 0; row < n; row++ {
		g.cells[row] = make([]*Cell, n)
		for col := 0; col < n; col++ {
			g.cells[row][col] = NewCell(row, col, cellSize)
		}
	}
	return nil
}

// Size returns the number of rows (and columns) in the grid
func (g *Grid) Size() int {
	return g.size
}

// CellSize returns the pixel width of one cell
func (g *Grid) CellSize() int {
	return g.cellSize
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if g == nil || !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// Contains returns true if c is a cell owned by this grid
func (g *Grid) Contains(c *Cell) bool {
	if c == nil {
		return false
	}
	return g.GetCell(c.Row, c.Col) == c
}

// CellAt maps a pixel position to grid coordinates by integer division.
// The result is not clamped; validate it before indexing.
func (g *Grid) CellAt(x, y int) (row, col int) {
	return x / g.cellSize, y / g.cellSize
}

// CellAtPixel returns the cell under a pixel position, or ErrOutOfBounds
func (g *Grid) CellAtPixel(x, y int) (*Cell, error) {
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: pixel (%d,%d)", ErrOutOfBounds, x, y)
	}
	row, col := g.CellAt(x, y)
	c := g.GetCell(row, col)
	if c == nil {
		return nil, fmt.Errorf("%w: pixel (%d,%d) -> %d:%d", ErrOutOfBounds, x, y, row, col)
	}
	return c, nil
}

// NeighborsOf returns the in-bounds, non-barrier cells orthogonally adjacent
// to c, computed from the current cell states.
func (g *Grid) NeighborsOf(c *Cell) []*Cell {
	if c == nil {
		return nil
	}

	neighbors := make([]*Cell, 0, 4)
	for _, dir := range AllDirections() {
		adj := g.GetCellRelative(c, dir)
		if adj == nil || adj.IsBarrier() {
			continue
		}
		neighbors = append(neighbors, adj)
	}
	return neighbors
}

// RefreshAllNeighbors recomputes the stored neighbor set of every cell.
// Call it once after editing barriers and before starting a search.
func (g *Grid) RefreshAllNeighbors() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		cell.neighbors = g.NeighborsOf(cell)
	})
}

// ResetCell sets a cell back to Empty
func (g *Grid) ResetCell(c *Cell) {
	if !g.Contains(c) {
		return
	}
	c.Reset()
}

// Clear resets every cell to Empty and drops stored neighbor sets
func (g *Grid) Clear() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		cell.Reset()
		cell.neighbors = nil
	})
}

// ClearSearch resets Open, Closed and Path cells to Empty, keeping
// Start, End and Barrier markers.
func (g *Grid) ClearSearch() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.State().IsSearchMark() {
			cell.Reset()
		}
	})
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// CellsInState returns the cells currently in state s, in row-major order
func (g *Grid) CellsInState(s State) []*Cell {
	var out []*Cell
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.State() == s {
			out = append(out, cell)
		}
	})
	return out
}

// CountStates returns how many cells are in each state
func (g *Grid) CountStates() map[State]int {
	counts := make(map[State]int, len(AllStates()))
	g.ForEachCell(func(row, col int, cell *Cell) {
		counts[cell.State()]++
	})
	return counts
}
