package renderer

import (
	"gridpath/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleSubtle
	StyleFound
	StyleDenied
)

// Renderer defines the interface for board rendering backends.
// The search calls back into a Renderer through StepFunc; a renderer only
// reads cell states.
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders the board: grid, legend and messages
	RenderFrame(b *state.Board)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns how many grid rows and columns fit on screen
	GetViewportSize() (rows, cols int)
}
