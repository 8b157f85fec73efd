package generator

import (
	"math/rand"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

// LineWalkerGenerator draws barrier walls by walking lines in random
// directions with a branching probability. Start and End are kept; when
// missing they are placed in opposite corners first.
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate adds walls to the board
func (g *LineWalkerGenerator) Generate(b *state.Board, rng *rand.Rand) error {
	grid := b.Grid()
	n := grid.Size()
	if n < 2 {
		return ErrTooSmall
	}

	if b.Start() == nil {
		if err := b.SetStart(firstFree(b, grid.GetCell(0, 0), grid.GetCell(0, n-1))); err != nil {
			return err
		}
	}
	if b.End() == nil {
		if err := b.SetEnd(firstFree(b, grid.GetCell(n-1, n-1), grid.GetCell(n-1, 0))); err != nil {
			return err
		}
	}

	// Wall count and length grow with the board
	walls := 1 + n/3
	minDist := 2 + n/10
	maxDist := 4 + n/5
	branchProb := float32(0.25)

	for i := 0; i < walls; i++ {
		g.buildWallRandom(grid, rng, rng.Intn(n), rng.Intn(n), branchProb, minDist, maxDist)
	}
	return nil
}

// firstFree returns the first candidate that is not already a marker
func firstFree(b *state.Board, candidates ...*world.Cell) *world.Cell {
	for _, c := range candidates {
		if c != b.Start() && c != b.End() {
			return c
		}
	}
	return nil
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection(rng *rand.Rand) world.Direction {
	return world.Direction(rng.Intn(4))
}

func (g *LineWalkerGenerator) buildWallRandom(grid *world.Grid, rng *rand.Rand, row, col int, branchProbability float32, minDist, maxDist int) {
	g.buildWall(grid, rng, row, col, g.randomDirection(rng), branchProbability, minDist, maxDist)
}

// buildWall lays barriers from (row, col) in dir. Only Empty cells become
// barriers; the walk stops at the grid edge.
func (g *LineWalkerGenerator) buildWall(grid *world.Grid, rng *rand.Rand, row, col int, dir world.Direction, branchProbability float32, minDist, maxDist int) {
	if !dir.IsValid() {
		dir = g.randomDirection(rng)
	}

	rowDelta, colDelta := dir.Delta()
	distance := minDist + rng.Intn(maxDist-minDist+1)

	for segment := 0; segment <= distance; segment++ {
		if cell := grid.GetCell(row, col); cell != nil && cell.IsEmpty() {
			cell.SetState(world.Barrier)
		}

		if !grid.IsValidPosition(row+rowDelta, col+colDelta) {
			return
		}

		if rng.Float32() < branchProbability {
			g.buildWallRandom(grid, rng, row, col, branchProbability-.1, minDist, maxDist)
		}

		row += rowDelta
		col += colDelta
	}
}
