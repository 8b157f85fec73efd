package search

import (
	"context"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

// unreached is the score of a cell that has no known path yet
const unreached = math.MaxInt

// Run searches grid for a shortest path from start to end.
//
// Every cell's neighbor set must have been refreshed since the last barrier
// edit (see world.Grid.RefreshAllNeighbors or WithRefresh). onStep may be nil.
//
// Cells discovered by the search are marked Open, expanded cells Closed and
// path cells Path. The start and end markers are never overwritten.
func Run(ctx context.Context, grid *world.Grid, start, end *world.Cell, onStep StepFunc, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(grid, start, end); err != nil {
		return Result{}, err
	}
	if onStep == nil {
		onStep = func() {}
	}
	if cfg.Refresh {
		grid.RefreshAllNeighbors()
	}

	cfg.Logger.Printf("search %v -> %v on %dx%d grid", start, end, grid.Size(), grid.Size())

	r := &runner{
		ctx:      ctx,
		start:    start,
		end:      end,
		onStep:   onStep,
		cameFrom: make(map[*world.Cell]*world.Cell),
		gScore:   make(map[*world.Cell]int),
		fScore:   make(map[*world.Cell]int),
		open:     newOpenSet(),
		closed:   mapset.New[*world.Cell](),
	}
	res := r.run()

	cfg.Logger.Printf("search %v: cost=%d expanded=%d pushes=%d steps=%d",
		res.Outcome, res.Cost, res.Expanded, r.open.pushes(), res.Steps)
	return res, nil
}

func validate(grid *world.Grid, start, end *world.Cell) error {
	switch {
	case grid == nil:
		return ErrNilGrid
	case start == nil:
		return ErrMissingStart
	case end == nil:
		return ErrMissingEnd
	case !grid.Contains(start):
		return fmt.Errorf("%w: start %v", ErrForeignCell, start)
	case !grid.Contains(end):
		return fmt.Errorf("%w: end %v", ErrForeignCell, end)
	case start == end:
		return fmt.Errorf("%w: %v", ErrSameCell, start)
	case start.IsBarrier():
		return fmt.Errorf("%w: start %v", ErrBarrierEndpoint, start)
	case end.IsBarrier():
		return fmt.Errorf("%w: end %v", ErrBarrierEndpoint, end)
	}
	return nil
}

// runner holds the per-call search record. It is discarded when Run returns.
type runner struct {
	ctx    context.Context
	start  *world.Cell
	end    *world.Cell
	onStep StepFunc

	cameFrom map[*world.Cell]*world.Cell
	gScore   map[*world.Cell]int
	fScore   map[*world.Cell]int
	open     *openSet
	closed   mapset.Set[*world.Cell]

	expanded int
	steps    int
}

func (r *runner) run() Result {
	r.gScore[r.start] = 0
	r.fScore[r.start] = Manhattan(r.start, r.end)
	r.open.push(r.start, r.fScore[r.start])

	if r.ctx.Err() != nil {
		return r.result(Cancelled)
	}

	for !r.open.empty() {
		e, _ := r.open.pop()
		current := e.cell
		if r.isStale(e) {
			continue
		}
		r.open.release(current)
		r.closed.Put(current)

		if current == r.end {
			return r.reconstruct()
		}

		for _, neighbor := range current.Neighbors() {
			r.relax(current, neighbor)
		}
		r.expanded++

		if !r.step() {
			return r.result(Cancelled)
		}

		if current != r.start {
			current.SetState(world.Closed)
		}
	}

	return r.result(NotFound)
}

// isStale reports whether a popped entry was superseded by a cheaper one
func (r *runner) isStale(e entry) bool {
	return r.closed.Has(e.cell) || e.f != r.score(r.fScore, e.cell)
}

// relax tries to reach neighbor through current at unit cost
func (r *runner) relax(current, neighbor *world.Cell) {
	if neighbor.IsBarrier() {
		return
	}

	tentative := r.gScore[current] + 1
	if tentative >= r.score(r.gScore, neighbor) {
		return
	}

	r.cameFrom[neighbor] = current
	r.gScore[neighbor] = tentative
	r.fScore[neighbor] = tentative + Manhattan(neighbor, r.end)

	if r.open.contains(neighbor) {
		// Superseding entry; the old one is dropped by isStale.
		r.open.push(neighbor, r.fScore[neighbor])
		return
	}

	r.closed.Remove(neighbor)
	r.open.push(neighbor, r.fScore[neighbor])
	if neighbor != r.end && neighbor != r.start {
		neighbor.SetState(world.Open)
	}
}

// reconstruct walks cameFrom back from end, marking each intermediate cell
// as Path and yielding after each one.
func (r *runner) reconstruct() Result {
	var reversed []*world.Cell

	current := r.end
	for {
		prev, ok := r.cameFrom[current]
		if !ok || prev == r.start {
			break
		}
		prev.SetState(world.Path)
		reversed = append(reversed, prev)
		if !r.step() {
			return r.result(Cancelled)
		}
		current = prev
	}
	r.end.SetState(world.End)

	path := make([]*world.Cell, 0, len(reversed)+2)
	path = append(path, r.start)
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	path = append(path, r.end)

	res := r.result(Found)
	res.Path = path
	res.Cost = r.gScore[r.end]
	return res
}

// step yields to the caller and reports whether the search may continue
func (r *runner) step() bool {
	r.onStep()
	r.steps++
	return r.ctx.Err() == nil
}

func (r *runner) score(m map[*world.Cell]int, c *world.Cell) int {
	if v, ok := m[c]; ok {
		return v
	}
	return unreached
}

func (r *runner) result(o Outcome) Result {
	return Result{
		Outcome:  o,
		Expanded: r.expanded,
		Steps:    r.steps,
	}
}
