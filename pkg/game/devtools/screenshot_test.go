package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSnapshotHTML(t *testing.T) {
	b, err := ParseLayout("S.#\n...\n#.E\n", 10)
	if err != nil {
		t.Fatalf("ParseLayout error = %v", err)
	}
	b.AddMessage("\x1b[32m<found>\x1b[0m")

	var buf bytes.Buffer
	if err := WriteSnapshotHTML(&buf, b, "A* & co"); err != nil {
		t.Fatalf("WriteSnapshotHTML error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>A* &amp; co</title>",
		`<span class="start">S</span>`,
		`<span class="barrier">#</span>`,
		`<span class="end">E</span>`,
		`<div class="message">&lt;found&gt;</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q", want)
		}
	}
	if got := strings.Count(out, `<div class="map-row">`); got != 3 {
		t.Errorf("map rows = %d, want 3", got)
	}
}

func TestSaveSnapshotHTML(t *testing.T) {
	b, err := ParseLayout("SE\n..\n", 10)
	if err != nil {
		t.Fatalf("ParseLayout error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "snap.html")

	got, err := SaveSnapshotHTML(path, b, "snap")
	if err != nil {
		t.Fatalf("SaveSnapshotHTML error = %v", err)
	}
	if got != path {
		t.Errorf("SaveSnapshotHTML path = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if !strings.HasSuffix(string(data), "</html>\n") {
		t.Errorf("snapshot not terminated:\n%s", data)
	}
}
