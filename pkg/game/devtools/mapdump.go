// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dungen/pkg/game/dungeon"
	"dungen/pkg/game/renderer"
)

const mapDumpFilename = "map.txt"

// Dump writes a full debug dump of d: metadata, legend, map, rooms, keys
// and the path tree. Format is human- and machine-readable (sections,
// key: value, consistent structure).
func Dump(w io.Writer, d *dungeon.Dungeon, meta renderer.Meta) error {
	if d == nil || len(d.Rooms) == 0 {
		return fmt.Errorf("no rooms")
	}

	bw := bufio.NewWriter(w)
	minX, minY, maxX, maxY := d.Bounds()

	// --- Metadata ---
	fmt.Fprintln(bw, "=== DUNGEON DUMP (layout, regions, difficulty, content) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", meta.Seed)
	fmt.Fprintf(bw, "floor: %d\n", meta.Floor)
	if meta.Title != "" {
		fmt.Fprintf(bw, "title: %q\n", meta.Title)
	}
	fmt.Fprintf(bw, "rooms: %d\n", len(d.Rooms))
	fmt.Fprintf(bw, "keys: %d\n", len(d.Keys))
	fmt.Fprintf(bw, "regions: %d\n", d.RegionCount())
	fmt.Fprintf(bw, "bounds: %d,%d .. %d,%d\n", minX, minY, maxX, maxY)
	fmt.Fprintf(bw, "coordinate_system: x,y (x grows east, y grows south; map cells are doubled)\n")
	fmt.Fprintf(bw, "entrance: %d\n", d.Entrance().Index)
	fmt.Fprintf(bw, "exit: %d\n", d.Exit().Index)
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (map symbols) ---")
	fmt.Fprintln(bw, renderer.Legend)
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	for _, line := range renderer.PlainMap(d) {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintln(bw, "")

	// --- Rooms ---
	fmt.Fprintln(bw, "--- Rooms ---")
	for _, r := range d.Rooms {
		fmt.Fprintf(bw, "  index: %d x: %d y: %d depth: %d region: %d difficulty: %.3f optional: %v doors: %s locked: %s type: %q",
			r.Index, r.X(), r.Y(), r.Depth, r.Region, r.Difficulty, r.Optional,
			walls(r.Doors), walls(r.Locked), r.TypeName())
		fmt.Fprintf(bw, " path_last: %d path_next: %d", r.PathLast, r.PathNext)
		if enemies := renderer.EnemySummary(r); len(enemies) > 0 {
			fmt.Fprintf(bw, " enemies: %q", strings.Join(enemies, ", "))
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "")

	// --- Keys ---
	fmt.Fprintln(bw, "--- Keys ---")
	for i, k := range d.Keys {
		fmt.Fprintf(bw, "  key: %d key_room: %d lock_room: %d locked_door: %v reachable: %v\n",
			i, k.KeyRoom, k.LockRoom, k.LockedDoor, dungeon.KeyReachable(d, k))
	}
	fmt.Fprintln(bw, "")

	// --- Paths ---
	fmt.Fprintln(bw, "--- Paths ---")
	d.MainPath.Walk(func(p *dungeon.Path, depth int) {
		fmt.Fprintf(bw, "  %sdepth: %d optional: %v rooms: %v\n", strings.Repeat("  ", depth), depth, p.Optional, p.Rooms)
	})
	fmt.Fprintln(bw, "")

	// --- Walkthrough ---
	fmt.Fprintln(bw, "--- Walkthrough ---")
	fmt.Fprintf(bw, "  %v\n", d.Walkthrough())

	return bw.Flush()
}

// DumpToFile writes Dump output to path (map.txt when empty) and returns
// the absolute path written.
func DumpToFile(path string, d *dungeon.Dungeon, meta renderer.Meta) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Dump(f, d, meta); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// walls renders a door array as the letters of the set walls, e.g. "WE"
func walls(set [4]bool) string {
	const letters = "WNES"
	var sb strings.Builder
	for i, on := range set {
		if on {
			sb.WriteByte(letters[i])
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
