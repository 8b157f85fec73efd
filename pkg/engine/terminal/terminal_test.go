package terminal

import (
	"os"
	"testing"
)

func TestSizeOf_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp error = %v", err)
	}
	defer f.Close()

	w, h := SizeOf(f)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("SizeOf(file) = %d, %d, want defaults", w, h)
	}
	if w, h := SizeOf(nil); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("SizeOf(nil) = %d, %d, want defaults", w, h)
	}
}

func TestGridViewport(t *testing.T) {
	tests := []struct {
		width, height, cellWidth, reserved int
		wantRows, wantCols                 int
	}{
		{80, 24, 2, 4, 20, 40},
		{80, 24, 0, 4, 20, 80},
		{1, 2, 2, 10, 1, 1},
	}
	for _, tc := range tests {
		rows, cols := GridViewport(tc.width, tc.height, tc.cellWidth, tc.reserved)
		if rows != tc.wantRows || cols != tc.wantCols {
			t.Errorf("GridViewport(%d, %d, %d, %d) = %d, %d, want %d, %d",
				tc.width, tc.height, tc.cellWidth, tc.reserved, rows, cols, tc.wantRows, tc.wantCols)
		}
	}
}
