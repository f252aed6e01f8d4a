package generator

import (
	"fmt"

	"dungen/pkg/game/catalog"
)

// IntRange is an inclusive integer range
type IntRange struct {
	Min int
	Max int
}

// String renders the range as min..max
func (r IntRange) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// PathConfig controls the shape of the room graph
type PathConfig struct {
	// MainPathLength counts main path rooms, entrance and exit included.
	MainPathLength IntRange

	// SidePathLength counts the new rooms of a key side path.
	SidePathLength IntRange

	// SidePathChance and OptionalRoomChance are denominators: each main path
	// step spawns a branch with probability 1/n. Zero disables the branch.
	SidePathChance     int
	OptionalRoomChance int

	// MaxAttempts caps how many times a dead-ended layout is restarted.
	MaxAttempts int
}

// DefaultPathConfig returns the stock layout parameters
func DefaultPathConfig() PathConfig {
	return PathConfig{
		MainPathLength:     IntRange{Min: 16, Max: 30},
		SidePathLength:     IntRange{Min: 1, Max: 4},
		SidePathChance:     4,
		OptionalRoomChance: 12,
		MaxAttempts:        1000,
	}
}

// Validate rejects parameters that can never produce a dungeon
func (c PathConfig) Validate() error {
	switch {
	case c.MainPathLength.Min < 2:
		return &catalog.ConfigurationError{Field: "main path length", Reason: "needs at least an entrance and an exit"}
	case c.MainPathLength.Max < c.MainPathLength.Min:
		return &catalog.ConfigurationError{Field: "main path length", Reason: fmt.Sprintf("empty range %v", c.MainPathLength)}
	case c.SidePathLength.Min < 1:
		return &catalog.ConfigurationError{Field: "side path length", Reason: "side paths need at least one room"}
	case c.SidePathLength.Max < c.SidePathLength.Min:
		return &catalog.ConfigurationError{Field: "side path length", Reason: fmt.Sprintf("empty range %v", c.SidePathLength)}
	case c.SidePathChance < 0:
		return &catalog.ConfigurationError{Field: "side path chance", Reason: "negative denominator"}
	case c.OptionalRoomChance < 0:
		return &catalog.ConfigurationError{Field: "optional room chance", Reason: "negative denominator"}
	case c.MaxAttempts < 1:
		return &catalog.ConfigurationError{Field: "max attempts", Reason: "at least one attempt is required"}
	}
	return nil
}
