// Package renderer turns a finished dungeon into a character map that the
// text backends style and print.
package renderer

import (
	"io"

	"dungen/pkg/game/dungeon"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleEntrance
	StyleExit
	StyleKey
	StyleLock
	StyleOptional
	StyleDoor
	StyleLockedDoor
	StyleEnemy
	StyleSubtle
	StyleHeading
)

// Meta describes a generation run for headers and dumps
type Meta struct {
	Seed  int64
	Floor int
	Title string
}

// Renderer defines the interface for dungeon output backends
type Renderer interface {
	// Render writes the whole dungeon to w
	Render(w io.Writer, d *dungeon.Dungeon, meta Meta) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}
