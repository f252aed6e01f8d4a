package tui

import (
	"bytes"
	"strings"
	"testing"

	"dungen/pkg/game/catalog"
	"dungen/pkg/game/config"
	"dungen/pkg/game/pipeline"
	"dungen/pkg/game/renderer"
	"dungen/pkg/logger"
)

func init() {
	logger.Silence()
}

func TestRender_Plain(t *testing.T) {
	p, err := pipeline.Default(config.Default(), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	d, err := p.Generate(5)
	if err != nil {
		t.Fatal(err)
	}

	tr := New()
	tr.NoColor = true
	tr.Width = 100

	var buf bytes.Buffer
	if err := tr.Render(&buf, d, renderer.Meta{Seed: 5, Floor: 1}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "The Sewers\n") {
		t.Errorf("output does not start with the floor name:\n%s", out)
	}
	if !strings.Contains(out, "Seed 5") {
		t.Error("output lacks the seed")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("NoColor output contains escape codes")
	}
	for _, line := range renderer.PlainMap(d) {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("map line %q missing", line)
		}
	}
	if !strings.Contains(out, d.Entrance().TypeName()) || !strings.Contains(out, d.Exit().TypeName()) {
		t.Error("room table lacks the entrance or exit type")
	}
	for _, line := range strings.Split(out, "\n") {
		if len([]rune(line)) > 100 {
			t.Errorf("line exceeds width 100: %q", line)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(&buf, nil, renderer.Meta{}); err == nil {
		t.Error("Render(nil) = nil, want an error")
	}
}

func TestRoomOrder_CoversEveryRoom(t *testing.T) {
	p, err := pipeline.Default(config.Default(), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	d, err := p.Generate(9)
	if err != nil {
		t.Fatal(err)
	}

	order := roomOrder(d)
	if len(order) != len(d.Rooms) {
		t.Fatalf("roomOrder() has %d entries, want %d", len(order), len(d.Rooms))
	}
	if order[0] != 0 {
		t.Errorf("roomOrder()[0] = %d, want the entrance", order[0])
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"Hallway", 10, "Hallway"},
		{"Complex Maze", 8, "Complex~"},
		{"abc", 1, "~"},
		{"abc", 0, ""},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.n); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
