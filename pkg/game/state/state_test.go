package state

import (
	"context"
	"errors"
	"testing"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
)

func newBoard(t *testing.T, n int) *Board {
	t.Helper()
	b, err := NewBoardSized(n, 16)
	if err != nil {
		t.Fatalf("NewBoardSized(%d, 16) error = %v", n, err)
	}
	return b
}

func countState(b *Board, s world.State) int {
	return b.Grid().CountStates()[s]
}

func TestPlace_StartEndThenBarriers(t *testing.T) {
	b := newBoard(t, 5)

	steps := []struct {
		row, col int
		want     world.State
	}{
		{0, 0, world.Start},
		{0, 0, world.Start}, // clicking Start again leaves it alone
		{4, 4, world.End},
		{2, 2, world.Barrier},
		{4, 4, world.End},
	}
	for i, s := range steps {
		got, err := b.Place(s.row, s.col)
		if err != nil {
			t.Fatalf("step %d: Place(%d, %d) error = %v", i, s.row, s.col, err)
		}
		if got != s.want {
			t.Errorf("step %d: Place(%d, %d) = %v, want %v", i, s.row, s.col, got, s.want)
		}
	}
	if b.Start() != b.Grid().GetCell(0, 0) || b.End() != b.Grid().GetCell(4, 4) {
		t.Errorf("Start/End = %v/%v, want 0:0/4:4", b.Start(), b.End())
	}
	if !b.Ready() {
		t.Error("Ready() = false, want true")
	}
}

func TestPlace_OutOfBounds(t *testing.T) {
	b := newBoard(t, 3)
	if _, err := b.Place(3, 0); !errors.Is(err, world.ErrOutOfBounds) {
		t.Errorf("Place(3, 0) error = %v, want ErrOutOfBounds", err)
	}
}

func TestErase_RemovesMarker(t *testing.T) {
	b := newBoard(t, 3)
	b.Place(0, 0)
	b.Place(2, 2)

	if err := b.Erase(0, 0); err != nil {
		t.Fatalf("Erase(0, 0) error = %v", err)
	}
	if b.Start() != nil {
		t.Errorf("Start() = %v after erase, want nil", b.Start())
	}
	// Next placement refills the missing Start
	got, _ := b.Place(1, 1)
	if got != world.Start {
		t.Errorf("Place(1, 1) = %v, want Start", got)
	}
}

func TestSetStart_MovesMarker(t *testing.T) {
	b := newBoard(t, 3)
	g := b.Grid()
	b.SetStart(g.GetCell(0, 0))
	b.SetStart(g.GetCell(1, 1))
	if n := countState(b, world.Start); n != 1 {
		t.Errorf("Start cells = %d, want 1", n)
	}
	if !g.GetCell(0, 0).IsEmpty() {
		t.Errorf("old start state = %v, want Empty", g.GetCell(0, 0).State())
	}
}

func TestSetEnd_OverStartClearsStart(t *testing.T) {
	b := newBoard(t, 3)
	g := b.Grid()
	b.SetStart(g.GetCell(0, 0))
	b.SetEnd(g.GetCell(0, 0))
	if b.Start() != nil {
		t.Errorf("Start() = %v, want nil", b.Start())
	}
	if b.End() != g.GetCell(0, 0) {
		t.Errorf("End() = %v, want 0:0", b.End())
	}
}

func TestSetBarrier_OverEndClearsEnd(t *testing.T) {
	b := newBoard(t, 3)
	g := b.Grid()
	b.SetEnd(g.GetCell(2, 2))
	b.SetBarrier(g.GetCell(2, 2))
	if b.End() != nil {
		t.Errorf("End() = %v, want nil", b.End())
	}
}

func TestSetStart_ForeignCell(t *testing.T) {
	b := newBoard(t, 3)
	other := newBoard(t, 3)
	if err := b.SetStart(other.Grid().GetCell(0, 0)); !errors.Is(err, world.ErrOutOfBounds) {
		t.Errorf("SetStart(foreign) error = %v, want ErrOutOfBounds", err)
	}
}

func TestPlaceAtPixel(t *testing.T) {
	b := newBoard(t, 4)
	got, err := b.PlaceAtPixel(20, 50)
	if err != nil {
		t.Fatalf("PlaceAtPixel(20, 50) error = %v", err)
	}
	if got != world.Start || b.Start() != b.Grid().GetCell(1, 3) {
		t.Errorf("PlaceAtPixel(20, 50) = %v at %v, want Start at 1:3", got, b.Start())
	}
	if err := b.EraseAtPixel(20, 50); err != nil {
		t.Fatalf("EraseAtPixel(20, 50) error = %v", err)
	}
	if b.Start() != nil {
		t.Error("Start() not cleared by EraseAtPixel")
	}
	if _, err := b.PlaceAtPixel(64, 0); !errors.Is(err, world.ErrOutOfBounds) {
		t.Errorf("PlaceAtPixel(64, 0) error = %v, want ErrOutOfBounds", err)
	}
}

func TestNewBoard_AdoptsSingleMarkers(t *testing.T) {
	g, _ := world.NewGrid(3, 1)
	g.GetCell(0, 0).SetState(world.Start)
	g.GetCell(0, 1).SetState(world.Start)
	g.GetCell(2, 2).SetState(world.End)
	b := NewBoard(g)
	if b.Start() != g.GetCell(0, 0) || b.End() != g.GetCell(2, 2) {
		t.Errorf("adopted Start/End = %v/%v", b.Start(), b.End())
	}
	if n := countState(b, world.Start); n != 1 {
		t.Errorf("Start cells = %d, want 1", n)
	}
}

func TestSolve_RefreshesAndRepeats(t *testing.T) {
	b := newBoard(t, 5)
	b.Place(0, 0)
	b.Place(4, 4)
	for col := 0; col < 5; col++ {
		if col != 2 {
			b.Place(2, col)
		}
	}

	first, err := b.Solve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if first.Outcome != search.Found || first.Cost != 8 {
		t.Fatalf("Solve() = %v cost %d, want Found cost 8", first.Outcome, first.Cost)
	}

	second, err := b.Solve(context.Background(), nil)
	if err != nil {
		t.Fatalf("second Solve() error = %v", err)
	}
	if len(second.Path) != len(first.Path) {
		t.Fatalf("second path len = %d, want %d", len(second.Path), len(first.Path))
	}
	for i := range first.Path {
		if first.Path[i] != second.Path[i] {
			t.Errorf("path[%d] = %v, want %v", i, second.Path[i], first.Path[i])
		}
	}

	// Closing the gap disconnects the halves; Solve picks it up without a manual refresh.
	b.Place(2, 2)
	third, err := b.Solve(context.Background(), nil)
	if err != nil {
		t.Fatalf("third Solve() error = %v", err)
	}
	if third.Outcome != search.NotFound {
		t.Errorf("Solve() after closing gap = %v, want NotFound", third.Outcome)
	}
	if b.Runs != 3 {
		t.Errorf("Runs = %d, want 3", b.Runs)
	}
}

func TestSolve_MissingEnd(t *testing.T) {
	b := newBoard(t, 3)
	b.Place(0, 0)
	_, err := b.Solve(context.Background(), nil)
	if !errors.Is(err, search.ErrMissingEnd) {
		t.Errorf("Solve() error = %v, want ErrMissingEnd", err)
	}
}

func TestClear(t *testing.T) {
	b := newBoard(t, 3)
	b.Place(0, 0)
	b.Place(1, 1)
	b.Place(2, 2)
	b.Clear()
	if b.Start() != nil || b.End() != nil {
		t.Error("Clear() kept Start/End")
	}
	if n := countState(b, world.Empty); n != 9 {
		t.Errorf("Empty cells after Clear = %d, want 9", n)
	}
}

func TestAddMessage_KeepsLast(t *testing.T) {
	b := newBoard(t, 1)
	for i := 0; i < 8; i++ {
		b.AddMessage(string(rune('a' + i)))
	}
	if len(b.Messages) != maxMessages || b.Messages[0] != "d" {
		t.Errorf("Messages = %v, want last %d ending at h", b.Messages, maxMessages)
	}
	b.ClearMessages()
	if len(b.Messages) != 0 {
		t.Errorf("Messages after clear = %v", b.Messages)
	}
}
