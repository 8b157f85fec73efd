// Package renderer connects a Renderer to the search's per-step callback.
package renderer

import (
	"time"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/game/state"
)

// StepFunc returns a search callback that redraws the board after every
// search step and then waits delay. A nil renderer yields a callback that
// only waits.
func StepFunc(r Renderer, b *state.Board, delay time.Duration) search.StepFunc {
	return func() {
		if r != nil {
			r.Clear()
			r.RenderFrame(b)
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}

// Show clears the display and renders one frame
func Show(r Renderer, b *state.Board) {
	if r == nil {
		return
	}
	r.Clear()
	r.RenderFrame(b)
}
