package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"gridpath/pkg/engine/terminal"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/i18n"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/state"
)

// Icon constants, one per cell state
const (
	IconEmpty   = "·"
	IconStart   = "S"
	IconEnd     = "E"
	IconBarrier = "█"
	IconOpen    = "○"
	IconClosed  = "●"
	IconPath    = "◆"
	IconVoid    = " "
)

// Layout constants
const (
	// CellWidth is the number of terminal columns one grid cell takes
	CellWidth = 2
	// ReservedLines are kept for the title, legend and message lines
	ReservedLines = 8
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out         io.Writer
	interactive bool
	size        func() (width, height int)

	stateStyles map[world.State]color.Style
	colorTitle  color.Style
	colorSubtle color.Style
	colorFound  color.Style
	colorDenied color.Style

	regexpStringFunctions *regexp.Regexp

	frames int
}

// New creates a TUI renderer writing to out. Screen clearing is only done
// for interactive terminals.
func New(out io.Writer) *TUIRenderer {
	t := &TUIRenderer{
		out:  out,
		size: terminal.GetSize,
	}
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		t.interactive = terminal.IsInteractive()
	}
	return t
}

// WithSize replaces the terminal size probe, mostly for tests
func (t *TUIRenderer) WithSize(width, height int) *TUIRenderer {
	t.size = func() (int, int) { return width, height }
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.stateStyles = map[world.State]color.Style{
		world.Empty:   {color.FgGray},
		world.Start:   {color.FgYellow, color.OpBold},
		world.End:     {color.FgCyan, color.OpBold},
		world.Barrier: {color.FgDarkGray},
		world.Open:    {color.FgGreen},
		world.Closed:  {color.FgRed},
		world.Path:    {color.FgMagenta, color.OpBold},
	}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorFound = color.Style{color.FgGreen, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Frames returns how many frames have been rendered
func (t *TUIRenderer) Frames() int {
	return t.frames
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !t.interactive {
		return
	}
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleFound:
		return t.colorFound.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system.
// GT{KEY} is replaced by its translation and STATE{Name} by the styled
// translated state name.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = i18n.Get(operand)
		case "STATE":
			val = t.styleStateName(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

func (t *TUIRenderer) styleStateName(name string) string {
	for _, s := range world.AllStates() {
		if s.String() == name {
			return t.stateStyles[s].Sprint(i18n.Get("STATE_" + name))
		}
	}
	return name
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the grid rows and columns that fit in the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	width, height := t.size()
	return terminal.GridViewport(width, height, CellWidth, ReservedLines)
}

// RenderFrame renders the board: title, grid, legend and messages
func (t *TUIRenderer) RenderFrame(b *state.Board) {
	t.frames++

	fmt.Fprintln(t.out, t.FormatText("%s %s", t.colorTitle.Sprint(i18n.Get("TITLE")),
		t.colorSubtle.Sprintf("GT{STEP} %d", t.frames)))
	fmt.Fprintln(t.out)

	t.printMap(b)
	t.printLegend()
	t.printMessagesPane(b)
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(c *world.Cell) string {
	if c == nil {
		return IconVoid + " "
	}

	var icon string
	switch c.State() {
	case world.Start:
		icon = IconStart
	case world.End:
		icon = IconEnd
	case world.Barrier:
		// Barriers fill both columns so walls read as solid
		return t.stateStyles[world.Barrier].Sprint(IconBarrier + IconBarrier)
	case world.Open:
		icon = IconOpen
	case world.Closed:
		icon = IconClosed
	case world.Path:
		icon = IconPath
	default:
		icon = IconEmpty
	}
	return t.stateStyles[c.State()].Sprint(icon) + " "
}

func (t *TUIRenderer) printMap(b *state.Board) {
	g := b.Grid()
	rows, cols := t.GetViewportSize()
	if rows > g.Size() {
		rows = g.Size()
	}
	if cols > g.Size() {
		cols = g.Size()
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sb.WriteString(t.renderCell(g.GetCell(row, col)))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())

	if rows < g.Size() || cols < g.Size() {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(i18n.Get("VIEWPORT_CROPPED", rows, g.Size())))
	}
	fmt.Fprintln(t.out)
}

func (t *TUIRenderer) printLegend() {
	parts := make([]string, 0, len(world.AllStates()))
	for _, s := range world.AllStates() {
		parts = append(parts, strings.TrimSpace(t.renderCell(cellInState(s)))+" "+t.FormatText("STATE{%s}", s))
	}
	fmt.Fprintf(t.out, "%s: %s\n", t.FormatText("GT{LEGEND}"), strings.Join(parts, "  "))
}

func (t *TUIRenderer) printMessagesPane(b *state.Board) {
	for _, msg := range b.Messages {
		fmt.Fprintln(t.out, "- "+msg)
	}
}

func cellInState(s world.State) *world.Cell {
	c := world.NewCell(0, 0, 1)
	c.SetState(s)
	return c
}
