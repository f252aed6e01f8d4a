package world

// Direction represents one of the four walls of a grid cell.
// The numeric values double as door indices: a room's doors are stored
// as [West, North, East, South].
type Direction int

// Direction constants
const (
	West Direction = iota
	North
	East
	South
)

// NoDirection is returned when two cells do not touch.
const NoDirection Direction = -1

// DirectionCount is the number of walls a cell has.
const DirectionCount = 4

// AllDirections returns all valid directions in door-index order
func AllDirections() []Direction {
	return []Direction{West, North, East, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= West && d <= South
}

// Opposite returns the opposite direction, (d+2) mod 4
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % DirectionCount
}

// Delta returns the x and y offsets for this direction.
// y grows downwards, so North is y-1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case West:
		return -1, 0
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return 0, 0
	}
}
