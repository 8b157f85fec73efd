// Package state holds the caller-owned editing context around a grid: the
// single Start and End cells, pointer-to-cell translation, and the trigger
// that runs a search.
package state

import (
	"context"
	"fmt"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
)

const maxMessages = 5

// Board is the editable grid plus the Start/End bookkeeping the grid itself
// does not enforce. At most one Start and one End exist at any time.
type Board struct {
	grid  *world.Grid
	start *world.Cell
	end   *world.Cell

	Messages []string

	// Runs counts Solve calls that reached the search
	Runs int
}

// NewBoard wraps an existing grid. Existing Start/End markers are adopted;
// extra ones are reset so the single-marker invariant holds.
func NewBoard(grid *world.Grid) *Board {
	b := &Board{
		grid:     grid,
		Messages: make([]string, 0),
	}
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		switch {
		case cell.IsStart() && b.start == nil:
			b.start = cell
		case cell.IsEnd() && b.end == nil:
			b.end = cell
		case cell.IsStart() || cell.IsEnd():
			cell.Reset()
		}
	})
	return b
}

// NewBoardSized creates a board over a fresh n x n grid
func NewBoardSized(n, cellSize int) (*Board, error) {
	grid, err := world.NewGrid(n, cellSize)
	if err != nil {
		return nil, err
	}
	return NewBoard(grid), nil
}

// Grid returns the underlying grid
func (b *Board) Grid() *world.Grid {
	return b.grid
}

// Start returns the start cell, or nil if none is placed
func (b *Board) Start() *world.Cell {
	return b.start
}

// End returns the end cell, or nil if none is placed
func (b *Board) End() *world.Cell {
	return b.end
}

// Ready returns true when both Start and End are placed
func (b *Board) Ready() bool {
	return b.start != nil && b.end != nil
}

func (b *Board) cellAt(row, col int) (*world.Cell, error) {
	cell := b.grid.GetCell(row, col)
	if cell == nil {
		return nil, fmt.Errorf("%w: %d:%d", world.ErrOutOfBounds, row, col)
	}
	return cell, nil
}

func (b *Board) own(cell *world.Cell) error {
	if !b.grid.Contains(cell) {
		return fmt.Errorf("%w: cell %v", world.ErrOutOfBounds, cell)
	}
	return nil
}

// forget drops the Start/End pointer held for cell
func (b *Board) forget(cell *world.Cell) {
	if cell == b.start {
		b.start = nil
	}
	if cell == b.end {
		b.end = nil
	}
}

// SetStart moves the Start marker to cell
func (b *Board) SetStart(cell *world.Cell) error {
	if err := b.own(cell); err != nil {
		return err
	}
	b.forget(cell)
	if b.start != nil {
		b.start.Reset()
	}
	cell.SetState(world.Start)
	b.start = cell
	return nil
}

// SetEnd moves the End marker to cell
func (b *Board) SetEnd(cell *world.Cell) error {
	if err := b.own(cell); err != nil {
		return err
	}
	b.forget(cell)
	if b.end != nil {
		b.end.Reset()
	}
	cell.SetState(world.End)
	b.end = cell
	return nil
}

// SetBarrier turns cell into a barrier, removing Start/End from it if present
func (b *Board) SetBarrier(cell *world.Cell) error {
	if err := b.own(cell); err != nil {
		return err
	}
	b.forget(cell)
	cell.SetState(world.Barrier)
	return nil
}

// Place applies the primary-button rule to the cell at row, col: the first
// placement sets Start, the next sets End, and later ones add barriers.
// Start and End cells are left untouched. It returns the cell's new state.
func (b *Board) Place(row, col int) (world.State, error) {
	cell, err := b.cellAt(row, col)
	if err != nil {
		return world.Empty, err
	}

	switch {
	case b.start == nil && cell != b.end:
		err = b.SetStart(cell)
	case b.end == nil && cell != b.start:
		err = b.SetEnd(cell)
	case cell != b.start && cell != b.end:
		err = b.SetBarrier(cell)
	}
	return cell.State(), err
}

// Erase applies the secondary-button rule: the cell goes back to Empty, and
// if it was the Start or End, that marker is removed.
func (b *Board) Erase(row, col int) error {
	cell, err := b.cellAt(row, col)
	if err != nil {
		return err
	}
	b.forget(cell)
	b.grid.ResetCell(cell)
	return nil
}

// PlaceAtPixel translates a pointer position and calls Place
func (b *Board) PlaceAtPixel(x, y int) (world.State, error) {
	cell, err := b.grid.CellAtPixel(x, y)
	if err != nil {
		return world.Empty, err
	}
	return b.Place(cell.Row, cell.Col)
}

// EraseAtPixel translates a pointer position and calls Erase
func (b *Board) EraseAtPixel(x, y int) error {
	cell, err := b.grid.CellAtPixel(x, y)
	if err != nil {
		return err
	}
	return b.Erase(cell.Row, cell.Col)
}

// Clear resets every cell and removes Start and End
func (b *Board) Clear() {
	b.grid.Clear()
	b.start = nil
	b.end = nil
}

// ResetSearch removes Open, Closed and Path marks from a previous run
func (b *Board) ResetSearch() {
	b.grid.ClearSearch()
}

// Solve clears the previous run's marks, refreshes every neighbor set and
// searches from Start to End.
func (b *Board) Solve(ctx context.Context, onStep search.StepFunc, opts ...search.Option) (search.Result, error) {
	b.ResetSearch()
	b.grid.RefreshAllNeighbors()
	b.Runs++
	return search.Run(ctx, b.grid, b.start, b.end, onStep, opts...)
}

// AddMessage adds a message to the board's message log
func (b *Board) AddMessage(msg string) {
	b.Messages = append(b.Messages, msg)

	// Keep only the last maxMessages
	if len(b.Messages) > maxMessages {
		b.Messages = b.Messages[len(b.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (b *Board) ClearMessages() {
	b.Messages = make([]string, 0)
}
