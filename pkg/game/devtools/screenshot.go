package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/color"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

const snapshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .empty { color: #888; }
        .start { color: #ffaa00; font-weight: bold; }
        .end { color: #40e0d0; font-weight: bold; }
        .barrier { color: #666; }
        .open { color: #00aa00; }
        .closed { color: #ff4444; }
        .path { color: #bb86fc; font-weight: bold; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`

// cellHTMLClass returns the CSS class for a cell
func cellHTMLClass(c *world.Cell) string {
	return strings.ToLower(c.State().String())
}

// WriteSnapshotHTML writes the board as a standalone HTML page: the grid in
// layout symbols, colored by state, followed by the board's messages.
func WriteSnapshotHTML(w io.Writer, b *state.Board, title string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, snapshotHead, html.EscapeString(title))
	fmt.Fprintf(&sb, "    <div class=\"header\">%s</div>\n", html.EscapeString(title))

	sb.WriteString(`    <div class="map-container">` + "\n")
	grid := b.Grid()
	for row := 0; row < grid.Size(); row++ {
		sb.WriteString(`        <div class="map-row">`)
		for col := 0; col < grid.Size(); col++ {
			cell := grid.GetCell(row, col)
			fmt.Fprintf(&sb, `<span class="%s">%c</span>`, cellHTMLClass(cell), CellSymbol(cell))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	if len(b.Messages) > 0 {
		sb.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range b.Messages {
			// Messages may carry terminal colors
			fmt.Fprintf(&sb, `        <div class="message">%s</div>`+"\n", html.EscapeString(color.ClearCode(msg)))
		}
		sb.WriteString(`    </div>` + "\n")
	}

	sb.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// SaveSnapshotHTML writes the board to path. An empty path picks a
// timestamped name in the current directory. It returns the file written.
func SaveSnapshotHTML(path string, b *state.Board, title string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("snapshot-%s.html", time.Now().Format("20060102-150405"))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	if err := WriteSnapshotHTML(f, b, title); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
