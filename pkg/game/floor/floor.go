// Package floor defines the themed floors a dungeon descends through and
// how generation is tuned as the player goes deeper.
package floor

import (
	"github.com/leonelquinteros/gotext"

	"dungen/pkg/game/config"
)

// Theme is the setting of a floor
type Theme int

const (
	Sewers    Theme = iota // Flooded tunnels under the city
	Catacombs              // Burial halls
	Mines                  // Abandoned shafts
	Fortress               // Garrisoned keep
	Abyss                  // The bottom
)

// themeCount is the number of themes (for cycling)
const themeCount = 5

// TotalFloors is the number of floors before the dungeon ends
const TotalFloors = 10

// Floor describes one level of the dungeon
type Floor struct {
	Level int // 1-based
	Theme Theme
}

// ForLevel returns the floor for the given level (1-based). Themes cycle;
// the final floor is always the Abyss.
func ForLevel(level int) Floor {
	if level < 1 {
		level = 1
	}
	if IsFinal(level) {
		return Floor{Level: level, Theme: Abyss}
	}
	return Floor{Level: level, Theme: Theme((level - 1) % (themeCount - 1))}
}

// IsFinal returns true if the given level is the last floor
func IsFinal(level int) bool {
	return level >= TotalFloors
}

// Name returns the translated display name of the floor's theme
func (f Floor) Name() string {
	return f.Theme.Name()
}

// Name returns the translated display name of the theme. Uses gotext.Get
// with constant keys so extraction tools can find them.
func (t Theme) Name() string {
	switch t {
	case Sewers:
		return gotext.Get("The Sewers")
	case Catacombs:
		return gotext.Get("The Catacombs")
	case Mines:
		return gotext.Get("The Mines")
	case Fortress:
		return gotext.Get("The Fortress")
	case Abyss:
		return gotext.Get("The Abyss")
	default:
		return gotext.Get("Unknown Depths")
	}
}

// Tune returns cfg adjusted for the given level. Deeper floors have longer
// main paths and start harder; level 1 leaves cfg untouched.
func Tune(cfg config.Config, level int) config.Config {
	depth := level - 1
	if depth <= 0 {
		return cfg
	}

	cfg.Floor = level
	cfg.MainPathLength.Min += 2 * depth
	cfg.MainPathLength.Max += 2 * depth
	cfg.SidePathLength.Max += depth / 3

	// Starting points rise 4% per floor, up to half the scale
	cfg.StartingPoints += 0.04 * float64(depth)
	if cfg.StartingPoints > 0.5 {
		cfg.StartingPoints = 0.5
	}
	if IsFinal(level) {
		cfg.PopulateExit = true
	}
	return cfg
}
