// Package search implements A* shortest-path search over a world.Grid.
//
// The search is single-threaded and cooperative: it runs to completion inside
// Run and hands control back to the caller only through the StepFunc callback,
// once after every cell expansion and once after every path cell is marked.
// Cancellation is observed through the context after each callback returns.
//
// Outcomes:
//
//   - Found:     a shortest path exists; Result.Path holds it, start and end inclusive.
//   - NotFound:  start and end are disconnected. This is a normal result, not an error.
//   - Cancelled: the context was done when a callback returned; cell markings are left as is.
//
// Errors are reserved for precondition violations and all wrap ErrPrecondition.
//
// Open-set policy: the heap has no decrease-key. When an already-open cell
// improves, a second entry is pushed with the better key and the older entry
// is discarded when it is eventually popped.
package search

import (
	"errors"
	"fmt"
	"io"
	"log"

	"gridpath/pkg/engine/world"
)

// Sentinel errors returned by Run. All of them wrap ErrPrecondition.
var (
	// ErrPrecondition is the kind shared by every input the caller must prevent.
	ErrPrecondition = errors.New("search: precondition violated")

	// ErrNilGrid indicates that no grid was passed.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrPrecondition)

	// ErrMissingStart indicates that the start cell is not set.
	ErrMissingStart = fmt.Errorf("%w: start cell not set", ErrPrecondition)

	// ErrMissingEnd indicates that the end cell is not set.
	ErrMissingEnd = fmt.Errorf("%w: end cell not set", ErrPrecondition)

	// ErrSameCell indicates that start and end are the same cell.
	ErrSameCell = fmt.Errorf("%w: start and end are the same cell", ErrPrecondition)

	// ErrBarrierEndpoint indicates that start or end is a barrier.
	ErrBarrierEndpoint = fmt.Errorf("%w: start or end is a barrier", ErrPrecondition)

	// ErrForeignCell indicates that start or end does not belong to the grid.
	ErrForeignCell = fmt.Errorf("%w: cell does not belong to grid", ErrPrecondition)
)

// Outcome is the kind of result a search run produced
type Outcome int

// Search outcomes
const (
	NotFound Outcome = iota
	Found
	Cancelled
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "NotFound"
	case Found:
		return "Found"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// StepFunc is called after each expansion and after each path cell is marked.
// It takes no arguments; read cell states through the grid.
type StepFunc func()

// Result is the outcome of one Run.
type Result struct {
	Outcome Outcome

	// Path is ordered from start to end, both inclusive. Nil unless Found.
	Path []*world.Cell

	// Cost is the number of unit moves along Path (len(Path)-1). Zero unless Found.
	Cost int

	// Expanded counts cells whose neighbors were relaxed.
	Expanded int

	// Steps counts StepFunc invocations.
	Steps int
}

// Options configures a search run.
type Options struct {
	Logger  *log.Logger // Trace output; discarded by default
	Refresh bool        // Recompute every neighbor set before searching
}

// Option is a functional option for Run.
type Option func(*Options)

// WithLogger sets the logger used for run tracing.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRefresh makes Run call Grid.RefreshAllNeighbors before searching.
func WithRefresh() Option {
	return func(o *Options) {
		o.Refresh = true
	}
}

// DefaultOptions returns options with a discarding logger and no refresh.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard, "", 0),
	}
}
