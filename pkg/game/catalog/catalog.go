package catalog

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ConfigurationError reports a catalog that can never produce a valid
// dungeon. It is raised before any generation attempt.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, a ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, a...)}
}

// Catalog is an immutable, validated list of room and enemy types
type Catalog struct {
	rooms   []*RoomType
	enemies []*EnemyType

	entrances []*RoomType
	exits     []*RoomType
	generic   []*RoomType
	lowest    *RoomType
}

// New validates the given definitions and builds a catalog from them.
// The catalog must offer at least one entrance, one exit and one generic
// room type.
func New(rooms []RoomType, enemies []EnemyType) (*Catalog, error) {
	if len(rooms) == 0 {
		return nil, configErr("rooms", "catalog has no room types")
	}

	c := &Catalog{}
	roomNames := mapset.New[string]()

	for i := range rooms {
		t := rooms[i]
		field := fmt.Sprintf("rooms[%d]", i)

		if t.Name == "" {
			return nil, configErr(field, "room type has no name")
		}
		if roomNames.Has(t.Name) {
			return nil, configErr(field, "duplicate room type %q", t.Name)
		}
		if t.Difficulty < 0 || t.Difficulty > 1 {
			return nil, configErr(field, "%q difficulty %.2f outside [0,1]", t.Name, t.Difficulty)
		}
		if t.Priority < 1 {
			return nil, configErr(field, "%q priority %d below 1", t.Name, t.Priority)
		}
		if t.MaxDoors == 0 {
			t.MaxDoors = DefaultMaxDoors
		}
		if t.MaxDoors < 1 || t.MaxDoors > DefaultMaxDoors {
			return nil, configErr(field, "%q max doors %d outside [1,%d]", t.Name, t.MaxDoors, DefaultMaxDoors)
		}
		roomNames.Put(t.Name)

		rt := &t
		c.rooms = append(c.rooms, rt)
		if rt.IsEntrance {
			c.entrances = append(c.entrances, rt)
		}
		if rt.IsExit {
			c.exits = append(c.exits, rt)
		}
		if rt.IsGeneric() {
			c.generic = append(c.generic, rt)
			if c.lowest == nil || rt.Difficulty < c.lowest.Difficulty {
				c.lowest = rt
			}
		}
	}

	if len(c.entrances) == 0 {
		return nil, configErr("rooms", "no entrance room type")
	}
	if len(c.exits) == 0 {
		return nil, configErr("rooms", "no exit room type")
	}
	if len(c.generic) == 0 {
		return nil, configErr("rooms", "no generic room type")
	}

	enemyNames := mapset.New[string]()
	for i := range enemies {
		e := enemies[i]
		field := fmt.Sprintf("enemies[%d]", i)

		if e.Name == "" {
			return nil, configErr(field, "enemy type has no name")
		}
		if enemyNames.Has(e.Name) {
			return nil, configErr(field, "duplicate enemy type %q", e.Name)
		}
		if e.Difficulty < 0 || e.Difficulty > 1 {
			return nil, configErr(field, "%q difficulty %.2f outside [0,1]", e.Name, e.Difficulty)
		}
		if e.Priority < 1 {
			return nil, configErr(field, "%q priority %d below 1", e.Name, e.Priority)
		}
		if e.MaxCount < 1 {
			return nil, configErr(field, "%q max count %d below 1", e.Name, e.MaxCount)
		}
		enemyNames.Put(e.Name)
	}

	for i := range enemies {
		e := enemies[i]
		field := fmt.Sprintf("enemies[%d]", i)

		var unknown []string
		e.RequiresEnemy.Each(func(name string) {
			if !enemyNames.Has(name) {
				unknown = append(unknown, name)
			}
		})
		e.RequiresRoom.Each(func(name string) {
			if !roomNames.Has(name) {
				unknown = append(unknown, name)
			}
		})
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, configErr(field, "%q requires unknown types %v", e.Name, unknown)
		}

		c.enemies = append(c.enemies, &e)
	}

	return c, nil
}

// MustNew is like New but panics on an invalid catalog. Intended for
// built-in catalogs.
func MustNew(rooms []RoomType, enemies []EnemyType) *Catalog {
	c, err := New(rooms, enemies)
	if err != nil {
		panic(err)
	}
	return c
}

// Rooms returns every room type in definition order
func (c *Catalog) Rooms() []*RoomType {
	return c.rooms
}

// Enemies returns every enemy type in definition order
func (c *Catalog) Enemies() []*EnemyType {
	return c.enemies
}

// Entrances returns the room types usable as an entrance
func (c *Catalog) Entrances() []*RoomType {
	return c.entrances
}

// Exits returns the room types usable as an exit
func (c *Catalog) Exits() []*RoomType {
	return c.exits
}

// Generic returns the room types that are neither entrance nor exit
func (c *Catalog) Generic() []*RoomType {
	return c.generic
}

// LowestDifficulty returns the generic room type with the smallest
// difficulty; the first one wins ties.
func (c *Catalog) LowestDifficulty() *RoomType {
	return c.lowest
}

// RoomByName returns the room type with the given name, or nil
func (c *Catalog) RoomByName(name string) *RoomType {
	for _, t := range c.rooms {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// EnemyByName returns the enemy type with the given name, or nil
func (c *Catalog) EnemyByName(name string) *EnemyType {
	for _, e := range c.enemies {
		if e.Name == name {
			return e
		}
	}
	return nil
}
