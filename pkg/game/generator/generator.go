// Package generator lays out barriers on a board so searches have
// something to route around.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"gridpath/pkg/game/state"
)

// ErrTooSmall is returned for boards that cannot hold both a start and an end
var ErrTooSmall = errors.New("generator: board needs at least 2 rows")

// ErrUnknownGenerator is returned by Lookup for names not in Available
var ErrUnknownGenerator = errors.New("generator: unknown generator")

// BarrierGenerator is an interface for layout algorithms
type BarrierGenerator interface {
	Generate(b *state.Board, rng *rand.Rand) error
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
	BSP        = &BSPGenerator{}
)

// DefaultGenerator is the default layout generator
var DefaultGenerator BarrierGenerator = BSP

var byName = map[string]BarrierGenerator{
	"lines": LineWalker,
	"bsp":   BSP,
}

// Names returns the names accepted by Lookup
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the generator registered under name
func Lookup(name string) (BarrierGenerator, error) {
	g, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownGenerator, name, Names())
	}
	return g, nil
}
