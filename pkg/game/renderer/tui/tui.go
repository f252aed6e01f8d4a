package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungen/pkg/engine/terminal"
	"dungen/pkg/game/dungeon"
	"dungen/pkg/game/floor"
	"dungen/pkg/game/renderer"
)

// Table layout
const (
	MinTableWidth = 40
	enemiesColumn = 48 // width of the columns before the enemy list
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	// NoColor disables ANSI styling, for pipes and files.
	NoColor bool

	// Width caps line length; 0 asks the terminal.
	Width int

	colorEntrance   color.Style
	colorExit       color.Style
	colorKey        color.Style
	colorLock       color.Style
	colorOptional   color.Style
	colorDoor       color.Style
	colorLockedDoor color.Style
	colorEnemy      color.Style
	colorSubtle     color.Style
	colorHeading    color.Style

	colorEasy   color.Style
	colorMedium color.Style
	colorHard   color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorEntrance = color.Style{color.FgGreen, color.OpBold}
	t.colorExit = color.Style{color.FgRed, color.OpBold}
	t.colorKey = color.Style{color.FgBlue, color.OpBold}
	t.colorLock = color.Style{color.FgYellow}
	t.colorOptional = color.Style{color.FgCyan}
	t.colorDoor = color.Style{color.FgGray}
	t.colorLockedDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorEnemy = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}

	// Difficulty heat map for ordinary rooms
	t.colorEasy = color.Style{color.FgGreen}
	t.colorMedium = color.Style{color.FgYellow}
	t.colorHard = color.Style{color.FgRed}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.NoColor {
		return text
	}
	switch style {
	case renderer.StyleEntrance:
		return t.colorEntrance.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleKey:
		return t.colorKey.Sprint(text)
	case renderer.StyleLock:
		return t.colorLock.Sprint(text)
	case renderer.StyleOptional:
		return t.colorOptional.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleLockedDoor:
		return t.colorLockedDoor.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	default:
		return text
	}
}

// heat colours an ordinary room by its difficulty
func (t *TUIRenderer) heat(text string, difficulty float64) string {
	if t.NoColor {
		return text
	}
	switch {
	case difficulty < 0.34:
		return t.colorEasy.Sprint(text)
	case difficulty < 0.67:
		return t.colorMedium.Sprint(text)
	default:
		return t.colorHard.Sprint(text)
	}
}

// width returns the usable line width
func (t *TUIRenderer) width() int {
	w := t.Width
	if w <= 0 {
		w = terminal.GetWidth()
	}
	if w < MinTableWidth {
		w = MinTableWidth
	}
	return w
}

// Render writes a heading, the coloured map, the legend and a room table
func (t *TUIRenderer) Render(w io.Writer, d *dungeon.Dungeon, meta renderer.Meta) error {
	if d == nil || len(d.Rooms) == 0 {
		return fmt.Errorf("nothing to render")
	}

	title := meta.Title
	if title == "" {
		title = floor.ForLevel(meta.Floor).Name()
	}
	fmt.Fprintln(w, t.StyleText(title, renderer.StyleHeading))
	fmt.Fprintln(w, t.StyleText(fmt.Sprintf("%s %d  %s %d  %s %d  %s %d",
		gotext.Get("Seed"), meta.Seed,
		gotext.Get("Rooms"), len(d.Rooms),
		gotext.Get("Keys"), len(d.Keys),
		gotext.Get("Regions"), d.RegionCount()), renderer.StyleSubtle))
	fmt.Fprintln(w)

	t.printMap(w, d)
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.StyleText(renderer.Legend, renderer.StyleSubtle))
	fmt.Fprintln(w)

	t.printRooms(w, d)
	return nil
}

// printMap writes the layout row by row
func (t *TUIRenderer) printMap(w io.Writer, d *dungeon.Dungeon) {
	for _, row := range renderer.Layout(d) {
		var sb strings.Builder
		for _, c := range row {
			glyph := string(c.Glyph)
			if c.Room != dungeon.NoRoom && c.Style == renderer.StyleNormal {
				sb.WriteString(t.heat(glyph, d.Rooms[c.Room].Difficulty))
				continue
			}
			sb.WriteString(t.StyleText(glyph, c.Style))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

// printRooms writes one line per room, in the intended visiting order
// first and then the rooms off that route
func (t *TUIRenderer) printRooms(w io.Writer, d *dungeon.Dungeon) {
	width := t.width()

	header := fmt.Sprintf("%4s %9s %3s %5s %-22s %s",
		"#", gotext.Get("Pos"), gotext.Get("Reg"), gotext.Get("Diff"), gotext.Get("Type"), gotext.Get("Enemies"))
	fmt.Fprintln(w, t.StyleText(truncate(header, width), renderer.StyleHeading))

	for _, index := range roomOrder(d) {
		r := d.Rooms[index]
		line := fmt.Sprintf("%4d %9s %3d %5.2f %-22s ",
			r.Index, fmt.Sprintf("%d,%d", r.X(), r.Y()), r.Region, r.Difficulty, truncate(r.TypeName(), 22))

		enemies := strings.Join(renderer.EnemySummary(r), ", ")
		room := t.heat(line, r.Difficulty)
		if enemies != "" {
			room += t.StyleText(truncate(enemies, width-enemiesColumn), renderer.StyleEnemy)
		}
		fmt.Fprintln(w, room)
	}
}

// roomOrder returns the walkthrough followed by every room it skips
func roomOrder(d *dungeon.Dungeon) []int {
	order := d.Walkthrough()
	seen := make([]bool, len(d.Rooms))
	for _, index := range order {
		seen[index] = true
	}
	for i := range d.Rooms {
		if !seen[i] {
			order = append(order, i)
		}
	}
	return order
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "~"
	}
	return string(runes[:n-1]) + "~"
}
