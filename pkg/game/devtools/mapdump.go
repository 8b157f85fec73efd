// Package devtools provides plain-text grid layouts for tests, debugging and
// the command line.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

var (
	// ErrEmptyLayout indicates a layout with no rows.
	ErrEmptyLayout = errors.New("devtools: layout has no rows")
	// ErrNotSquare indicates a row whose length differs from the row count.
	ErrNotSquare = errors.New("devtools: layout must be square")
	// ErrUnknownSymbol indicates a rune with no cell state.
	ErrUnknownSymbol = errors.New("devtools: unknown layout symbol")
)

// Legend is the rune used for each state in layouts and dumps.
var Legend = map[world.State]rune{
	world.Empty:   '.',
	world.Start:   'S',
	world.End:     'E',
	world.Barrier: '#',
	world.Open:    'o',
	world.Closed:  'x',
	world.Path:    '*',
}

// CellSymbol returns the layout rune for a cell
func CellSymbol(cell *world.Cell) rune {
	if cell == nil {
		return '#'
	}
	if r, ok := Legend[cell.State()]; ok {
		return r
	}
	return '?'
}

func stateForSymbol(r rune) (world.State, bool) {
	for s, sym := range Legend {
		if sym == r {
			return s, true
		}
	}
	return world.Empty, false
}

// DumpGrid writes one line per row, one rune per cell.
func DumpGrid(w io.Writer, grid *world.Grid) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < grid.Size(); row++ {
		for col := 0; col < grid.Size(); col++ {
			bw.WriteRune(CellSymbol(grid.GetCell(row, col)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpString returns DumpGrid's output as a string
func DumpString(grid *world.Grid) string {
	var sb strings.Builder
	DumpGrid(&sb, grid)
	return sb.String()
}

// LoadLayout reads a square layout and returns a board over it. Blank lines
// and lines starting with ';' are skipped. Search marks in the layout are
// accepted so dumps can be loaded back.
func LoadLayout(r io.Reader, cellSize int) (*state.Board, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}

	grid, err := world.NewGrid(len(rows), cellSize)
	if err != nil {
		return nil, err
	}
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, row, len(runes), len(rows))
		}
		for col, ch := range runes {
			s, ok := stateForSymbol(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d:%d", ErrUnknownSymbol, ch, row, col)
			}
			grid.GetCell(row, col).SetState(s)
		}
	}
	return state.NewBoard(grid), nil
}

// ParseLayout is LoadLayout over a string
func ParseLayout(layout string, cellSize int) (*state.Board, error) {
	return LoadLayout(strings.NewReader(layout), cellSize)
}
