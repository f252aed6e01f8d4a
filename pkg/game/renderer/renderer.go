package renderer

import (
	"fmt"
	"strings"

	"dungen/pkg/engine/world"
	"dungen/pkg/game/dungeon"
)

// Map symbols. Rooms sit on even rows and columns, doors between them.
const (
	IconRoom        = 'o'
	IconEntrance    = 'S'
	IconExit        = 'E'
	IconKey         = 'K'
	IconOptional    = '?'
	IconDoorH       = '-'
	IconDoorV       = '|'
	IconLockedDoorH = '='
	IconLockedDoorV = 'H'
	IconVoid        = ' '
)

// Legend lists every map symbol
const Legend = "S = entrance  E = exit  K = key room  ? = optional room  o = room  - | = door  = H = locked door"

// Cell is one character of the map
type Cell struct {
	Glyph rune
	Style TextStyle

	// Room is the index of the room drawn here, or dungeon.NoRoom for
	// doors and empty space.
	Room int
}

// Layout draws d onto a character grid, row-major, with north at the top
func Layout(d *dungeon.Dungeon) [][]Cell {
	if len(d.Rooms) == 0 {
		return nil
	}

	minX, minY, maxX, maxY := d.Bounds()
	rows := (maxY-minY)*2 + 1
	cols := (maxX-minX)*2 + 1

	grid := make([][]Cell, rows)
	for row := range grid {
		grid[row] = make([]Cell, cols)
		for col := range grid[row] {
			grid[row][col] = Cell{Glyph: IconVoid, Room: dungeon.NoRoom}
		}
	}

	for _, r := range d.Rooms {
		row, col := (r.Y()-minY)*2, (r.X()-minX)*2
		glyph, style := roomSymbol(d, r)
		grid[row][col] = Cell{Glyph: glyph, Style: style, Room: r.Index}

		// East and south doors; west and north are drawn by the neighbour
		if r.Doors[world.East] {
			grid[row][col+1] = doorCell(r.Locked[world.East], IconDoorH, IconLockedDoorH)
		}
		if r.Doors[world.South] {
			grid[row+1][col] = doorCell(r.Locked[world.South], IconDoorV, IconLockedDoorV)
		}
	}

	return grid
}

func doorCell(locked bool, open, closed rune) Cell {
	if locked {
		return Cell{Glyph: closed, Style: StyleLockedDoor, Room: dungeon.NoRoom}
	}
	return Cell{Glyph: open, Style: StyleDoor, Room: dungeon.NoRoom}
}

func roomSymbol(d *dungeon.Dungeon, r *dungeon.Room) (rune, TextStyle) {
	switch {
	case r.Index == 0:
		return IconEntrance, StyleEntrance
	case d.IsExit(r):
		return IconExit, StyleExit
	case d.IsKeyRoom(r.Index):
		return IconKey, StyleKey
	case r.Optional:
		return IconOptional, StyleOptional
	case d.IsLockRoom(r.Index):
		return IconRoom, StyleLock
	default:
		return IconRoom, StyleNormal
	}
}

// PlainMap returns the layout as unstyled lines with trailing spaces removed
func PlainMap(d *dungeon.Dungeon) []string {
	layout := Layout(d)
	lines := make([]string, 0, len(layout))
	for _, row := range layout {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Glyph)
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}

// EnemySummary returns "Name xN" entries for the enemies in r, in first
// placement order
func EnemySummary(r *dungeon.Room) []string {
	var order []string
	counts := make(map[string]int)
	for _, e := range r.Enemies {
		if counts[e.Name] == 0 {
			order = append(order, e.Name)
		}
		counts[e.Name]++
	}

	out := make([]string, 0, len(order))
	for _, name := range order {
		if counts[name] > 1 {
			out = append(out, fmt.Sprintf("%s x%d", name, counts[name]))
		} else {
			out = append(out, name)
		}
	}
	return out
}
