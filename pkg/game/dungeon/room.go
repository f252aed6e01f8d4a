// Package dungeon holds the shared graph every generation stage mutates:
// rooms on an integer grid, the doors between them, locked doors and their
// keys, and the tree of paths that produced them.
package dungeon

import (
	"dungen/pkg/engine/world"
	"dungen/pkg/game/catalog"
)

// NoRoom marks an absent room reference
const NoRoom = -1

// Unresolved is the region of a room the partitioner has not reached yet
const Unresolved = -1

// Room is a single grid cell of the dungeon
type Room struct {
	Index int
	Pos   world.Point

	// Doors and Locked are indexed by world.Direction (West, North, East, South).
	Doors  [world.DirectionCount]bool
	Locked [world.DirectionCount]bool

	// Depth is 0 on the main path and grows by one per nested side path.
	Depth    int
	Optional bool

	// PathNext and PathLast are room indices describing the intended route,
	// or NoRoom.
	PathNext int
	PathLast int

	Region     int
	Difficulty float64

	Type    *catalog.RoomType
	Enemies []*catalog.EnemyType
}

func newRoom(index int, pos world.Point, depth int) *Room {
	return &Room{
		Index:    index,
		Pos:      pos,
		Depth:    depth,
		PathNext: NoRoom,
		PathLast: NoRoom,
		Region:   Unresolved,
	}
}

// X returns the room's column
func (r *Room) X() int {
	return r.Pos.X
}

// Y returns the room's row
func (r *Room) Y() int {
	return r.Pos.Y
}

// DirectionTo returns the wall of r that faces other, or world.NoDirection
// if the rooms do not touch.
func (r *Room) DirectionTo(other *Room) world.Direction {
	if other == nil {
		return world.NoDirection
	}
	return r.Pos.DirectionTo(other.Pos)
}

// CountDoors counts open doors, or locked doors when locked is true,
// skipping the excluded walls.
func (r *Room) CountDoors(locked bool, excluding ...world.Direction) int {
	doors := r.Doors
	if locked {
		doors = r.Locked
	}

	count := 0
	for _, dir := range world.AllDirections() {
		if doors[dir] && !contains(excluding, dir) {
			count++
		}
	}
	return count
}

// LockedDoorDir returns the first locked wall not excluded, or world.NoDirection
func (r *Room) LockedDoorDir(excluding ...world.Direction) world.Direction {
	for _, dir := range world.AllDirections() {
		if r.Locked[dir] && !contains(excluding, dir) {
			return dir
		}
	}
	return world.NoDirection
}

// EnemyCount returns how many instances of e the room holds
func (r *Room) EnemyCount(e *catalog.EnemyType) int {
	n := 0
	for _, placed := range r.Enemies {
		if placed == e {
			n++
		}
	}
	return n
}

// HasEnemyNamed reports whether any placed enemy has the given name
func (r *Room) HasEnemyNamed(name string) bool {
	for _, placed := range r.Enemies {
		if placed.Name == name {
			return true
		}
	}
	return false
}

// TypeName returns the assigned type's name, or "" before assignment
func (r *Room) TypeName() string {
	if r.Type == nil {
		return ""
	}
	return r.Type.Name
}

func contains(dirs []world.Direction, dir world.Direction) bool {
	for _, d := range dirs {
		if d == dir {
			return true
		}
	}
	return false
}
