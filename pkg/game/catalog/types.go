// Package catalog defines the room and enemy types a dungeon is furnished
// from. Types are validated once when a Catalog is built and are shared by
// reference across every room that uses them.
package catalog

import (
	"github.com/zyedidia/generic/mapset"
)

// DefaultMaxDoors is used when a RoomType leaves MaxDoors unset
const DefaultMaxDoors = 4

// RoomType is a set of properties shared by every room of that type
type RoomType struct {
	Name string

	// Optional types may only furnish rooms that can be skipped on the way
	// to the exit.
	Optional bool

	MaxDoors   int
	IsEntrance bool
	IsExit     bool

	// Difficulty is the minimum difficulty budget, in [0,1], a room needs
	// before it can take this type.
	Difficulty float64

	// Priority is the sampling weight, at least 1.
	Priority int

	// RequiresEnemy marks types that only make sense with an enemy in them.
	// Informational; placement does not enforce it.
	RequiresEnemy bool
}

// IsGeneric reports whether the type can furnish an ordinary room
func (t *RoomType) IsGeneric() bool {
	return !t.IsEntrance && !t.IsExit
}

// EnemyType describes an enemy that can be placed in a room
type EnemyType struct {
	Name       string
	Priority   int
	Difficulty float64

	// MaxCount caps how many of this enemy a single room may hold.
	MaxCount int

	// EndOfRegion enemies only appear in key rooms or the final room.
	EndOfRegion bool

	// RequiresEnemy lists enemy names, one of which must already be in the room.
	RequiresEnemy mapset.Set[string]

	// RequiresRoom lists room type names the room must be one of.
	RequiresRoom mapset.Set[string]
}

// Room builds a generic room type. Difficulty is given in percent, the way
// designers tune it.
func Room(name string, difficulty int, priority int) RoomType {
	return RoomType{
		Name:       name,
		MaxDoors:   DefaultMaxDoors,
		Difficulty: float64(difficulty) / 100,
		Priority:   priority,
	}
}

// EntranceRoom builds a room type usable as the dungeon entrance
func EntranceRoom(name string, difficulty int, priority int) RoomType {
	t := Room(name, difficulty, priority)
	t.IsEntrance = true
	return t
}

// ExitRoom builds a room type usable as the dungeon exit
func ExitRoom(name string, difficulty int, priority int) RoomType {
	t := Room(name, difficulty, priority)
	t.IsExit = true
	return t
}

// Enemy builds an enemy type. Difficulty is given in percent.
func Enemy(name string, difficulty int, priority int, maxCount int) EnemyType {
	return EnemyType{
		Name:          name,
		Priority:      priority,
		Difficulty:    float64(difficulty) / 100,
		MaxCount:      maxCount,
		RequiresEnemy: mapset.New[string](),
		RequiresRoom:  mapset.New[string](),
	}
}

// WithRequiredEnemies returns a copy of e that needs one of names present
func (e EnemyType) WithRequiredEnemies(names ...string) EnemyType {
	e.RequiresEnemy = copyWith(e.RequiresEnemy, names)
	return e
}

// WithRequiredRooms returns a copy of e restricted to the named room types
func (e EnemyType) WithRequiredRooms(names ...string) EnemyType {
	e.RequiresRoom = copyWith(e.RequiresRoom, names)
	return e
}

// AtEndOfRegion returns a copy of e flagged as an end-of-region enemy
func (e EnemyType) AtEndOfRegion() EnemyType {
	e.EndOfRegion = true
	return e
}

func copyWith(src mapset.Set[string], names []string) mapset.Set[string] {
	out := mapset.New[string]()
	src.Each(func(name string) {
		out.Put(name)
	})
	for _, name := range names {
		out.Put(name)
	}
	return out
}
