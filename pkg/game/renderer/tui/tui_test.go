package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gookit/color"

	"gridpath/pkg/game/devtools"
	"gridpath/pkg/game/renderer"
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

func newTestRenderer(width, height int) (*TUIRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := New(&buf).WithSize(width, height)
	r.Init()
	return r, &buf
}

func TestRenderFrame_DrawsEveryState(t *testing.T) {
	b, err := devtools.ParseLayout(`
S....
.###.
.#...
.#.#.
...#E
`, 10)
	if err != nil {
		t.Fatalf("ParseLayout error = %v", err)
	}
	if _, err := b.Solve(context.Background(), nil); err != nil {
		t.Fatalf("Solve error = %v", err)
	}

	r, buf := newTestRenderer(80, 40)
	r.RenderFrame(b)
	out := color.ClearCode(buf.String())

	for _, icon := range []string{IconStart, IconEnd, IconBarrier + IconBarrier, IconPath} {
		if !strings.Contains(out, icon) {
			t.Errorf("frame missing %q:\n%s", icon, out)
		}
	}
	if !strings.Contains(out, "A* Path Finding") {
		t.Errorf("frame missing title:\n%s", out)
	}
	if !strings.Contains(out, "Legend:") {
		t.Errorf("frame missing legend:\n%s", out)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
}

func TestRenderFrame_CropsToViewport(t *testing.T) {
	b, err := devtools.ParseLayout(strings.Repeat("..........\n", 10), 10)
	if err != nil {
		t.Fatalf("ParseLayout error = %v", err)
	}

	// 8 columns wide at 2 per cell, 4 rows after reserved lines
	r, buf := newTestRenderer(8, ReservedLines+4)
	r.RenderFrame(b)
	out := color.ClearCode(buf.String())

	if got := strings.Count(out, IconEmpty+" "+IconEmpty+" "+IconEmpty+" "+IconEmpty+" \n"); got != 4 {
		t.Errorf("cropped rows = %d, want 4:\n%s", got, out)
	}
	if !strings.Contains(out, "showing 4 of 10 rows") {
		t.Errorf("frame missing crop notice:\n%s", out)
	}
}

func TestRenderFrame_ShowsMessages(t *testing.T) {
	b, err := devtools.ParseLayout("SE\n..\n", 10)
	if err != nil {
		t.Fatalf("ParseLayout error = %v", err)
	}
	b.AddMessage("hello there")

	r, buf := newTestRenderer(80, 24)
	r.RenderFrame(b)

	if !strings.Contains(color.ClearCode(buf.String()), "- hello there") {
		t.Errorf("frame missing message:\n%s", buf.String())
	}
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer(80, 24)

	tests := []struct {
		in   string
		args []any
		want string
	}{
		{"plain %d", []any{3}, "plain 3"},
		{"GT{LEGEND}", nil, "Legend"},
		{"STATE{Barrier}", nil, "barrier"},
		{"STATE{Nope}", nil, "Nope"},
		{"XX{thing}", nil, "ERROR, function not found: XX -> thing"},
	}
	for _, tc := range tests {
		if got := color.ClearCode(r.FormatText(tc.in, tc.args...)); got != tc.want {
			t.Errorf("FormatText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStyleText_KeepsText(t *testing.T) {
	r, _ := newTestRenderer(80, 24)
	for _, s := range []renderer.TextStyle{renderer.StyleNormal, renderer.StyleTitle, renderer.StyleSubtle, renderer.StyleFound, renderer.StyleDenied} {
		if got := color.ClearCode(r.StyleText("abc", s)); got != "abc" {
			t.Errorf("StyleText(abc, %d) = %q", s, got)
		}
	}
}

func TestClear_SkippedWhenNotInteractive(t *testing.T) {
	r, buf := newTestRenderer(80, 24)
	r.Clear()
	if buf.Len() != 0 {
		t.Errorf("Clear wrote %q to a non-terminal writer", buf.String())
	}
}
