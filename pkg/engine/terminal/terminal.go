// Package terminal probes the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	return SizeOf(os.Stdout)
}

// SizeOf returns the terminal size of f, or the defaults when f is not a terminal
func SizeOf(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdout is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GridViewport returns how many grid rows and columns fit in a terminal of
// the given size when each cell takes cellWidth characters and reserved
// lines are kept for text.
func GridViewport(width, height, cellWidth, reserved int) (rows, cols int) {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	cols = width / cellWidth
	rows = height - reserved
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows, cols
}
