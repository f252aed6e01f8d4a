package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"dungen/pkg/game/dungeon"
	"dungen/pkg/game/renderer"
)

// cssClass maps a map style to the class used in the HTML snapshot
var cssClass = map[renderer.TextStyle]string{
	renderer.StyleNormal:     "room",
	renderer.StyleEntrance:   "entrance",
	renderer.StyleExit:       "exit",
	renderer.StyleKey:        "key",
	renderer.StyleLock:       "lock",
	renderer.StyleOptional:   "optional",
	renderer.StyleDoor:       "door",
	renderer.StyleLockedDoor: "door-locked",
}

// WriteHTML writes the map as a standalone HTML page. Ordinary rooms are
// shaded by difficulty and carry their type and enemies as a tooltip.
func WriteHTML(w io.Writer, d *dungeon.Dungeon, meta renderer.Meta) error {
	if d == nil || len(d.Rooms) == 0 {
		return fmt.Errorf("no rooms")
	}

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon - Snapshot</title>
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
        .meta {
            color: #888;
            margin-bottom: 20px;
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
        .entrance { color: #00ff00; font-weight: bold; }
        .exit { color: #ff4444; font-weight: bold; }
        .key { color: #4444ff; font-weight: bold; }
        .lock { color: #aaaa00; }
        .optional { color: #00ffff; }
        .door { color: #666; }
        .door-locked { color: #ffff00; font-weight: bold; }
        .legend { color: #888; }
    </style>
</head>
<body>
`)

	title := meta.Title
	if title == "" {
		title = "Dungeon"
	}
	page.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(title)))
	page.WriteString(fmt.Sprintf(`    <div class="meta">seed %d, floor %d, %d rooms, %d keys, %d regions</div>`+"\n",
		meta.Seed, meta.Floor, len(d.Rooms), len(d.Keys), d.RegionCount()))

	page.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range renderer.Layout(d) {
		page.WriteString(`        <div class="map-row">`)
		for _, c := range row {
			page.WriteString(cellHTML(d, c))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString("    </div>\n")

	page.WriteString(fmt.Sprintf(`    <div class="legend">%s</div>`+"\n", html.EscapeString(renderer.Legend)))
	page.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, page.String())
	return err
}

// cellHTML returns the span for one map character
func cellHTML(d *dungeon.Dungeon, c renderer.Cell) string {
	glyph := html.EscapeString(string(c.Glyph))
	if c.Room == dungeon.NoRoom {
		if c.Glyph == renderer.IconVoid {
			return glyph
		}
		return fmt.Sprintf(`<span class="%s">%s</span>`, cssClass[c.Style], glyph)
	}

	r := d.Rooms[c.Room]
	title := fmt.Sprintf("#%d %s (%.2f)", r.Index, r.TypeName(), r.Difficulty)
	if enemies := renderer.EnemySummary(r); len(enemies) > 0 {
		title += ": " + strings.Join(enemies, ", ")
	}

	if c.Style == renderer.StyleNormal {
		return fmt.Sprintf(`<span style="color: %s" title="%s">%s</span>`,
			heatColour(r.Difficulty), html.EscapeString(title), glyph)
	}
	return fmt.Sprintf(`<span class="%s" title="%s">%s</span>`,
		cssClass[c.Style], html.EscapeString(title), glyph)
}

// heatColour blends from green at 0 to red at 1
func heatColour(difficulty float64) string {
	red := int(difficulty * 255)
	green := 255 - red
	return fmt.Sprintf("#%02x%02x44", red, green)
}

// SaveHTML writes the snapshot to a timestamped file in the working
// directory and returns its name
func SaveHTML(d *dungeon.Dungeon, meta renderer.Meta) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("dungeon-%d-%s.html", meta.Seed, timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHTML(f, d, meta); err != nil {
		return "", err
	}
	return filename, f.Close()
}
