package dungeon

import (
	"dungen/pkg/engine/world"
)

// Key pairs a locked door with the room that holds its key.
// LockedDoor is the wall of LockRoom that is locked.
type Key struct {
	KeyRoom    int
	LockRoom   int
	LockedDoor world.Direction
}

// Dungeon is the aggregate every stage works on. Rooms are kept in
// creation order, so Rooms[i].Index == i, Rooms[0] is the entrance and the
// last room is the exit.
type Dungeon struct {
	Rooms    []*Room
	Keys     []Key
	MainPath *Path

	grid *world.Grid
}

// New creates an empty dungeon
func New() *Dungeon {
	return &Dungeon{
		grid: world.NewGrid(),
	}
}

// Reset discards every room, key and path
func (d *Dungeon) Reset() {
	d.Rooms = nil
	d.Keys = nil
	d.MainPath = nil
	d.grid = world.NewGrid()
}

// Grid returns the coordinate index of the dungeon
func (d *Dungeon) Grid() *world.Grid {
	if d.grid == nil {
		d.grid = world.NewGrid()
	}
	return d.grid
}

// AddRoom creates a room at pos. Returns nil if the cell is taken.
func (d *Dungeon) AddRoom(pos world.Point, depth int) *Room {
	index := len(d.Rooms)
	if !d.Grid().Place(pos, index) {
		return nil
	}
	room := newRoom(index, pos, depth)
	d.Rooms = append(d.Rooms, room)
	return room
}

// Room returns the room with the given index, or nil
func (d *Dungeon) Room(index int) *Room {
	if index < 0 || index >= len(d.Rooms) {
		return nil
	}
	return d.Rooms[index]
}

// RoomAt returns the room at the given coordinates, or nil
func (d *Dungeon) RoomAt(x, y int) *Room {
	index, found := d.Grid().At(world.Point{X: x, Y: y})
	if !found {
		return nil
	}
	return d.Room(index)
}

// Neighbor returns the room across the given wall of r, or nil
func (d *Dungeon) Neighbor(r *Room, dir world.Direction) *Room {
	if r == nil || !dir.IsValid() {
		return nil
	}
	next := r.Pos.Step(dir)
	return d.RoomAt(next.X, next.Y)
}

// Entrance returns the first room, or nil for an empty dungeon
func (d *Dungeon) Entrance() *Room {
	return d.Room(0)
}

// Exit returns the last room appended to the main path
func (d *Dungeon) Exit() *Room {
	if d.MainPath != nil {
		return d.Room(d.MainPath.Last())
	}
	return d.Room(len(d.Rooms) - 1)
}

// IsExit reports whether r is the dungeon's final room
func (d *Dungeon) IsExit(r *Room) bool {
	exit := d.Exit()
	return exit != nil && r != nil && exit.Index == r.Index
}

// Connect opens the shared wall between two adjacent rooms. When locked is
// set the door is marked locked on both sides. Returns the direction from a
// to b, or world.NoDirection if they do not touch.
func (d *Dungeon) Connect(a, b *Room, locked bool) world.Direction {
	dir := a.DirectionTo(b)
	if dir == world.NoDirection {
		return dir
	}
	a.Doors[dir] = true
	b.Doors[dir.Opposite()] = true
	if locked {
		a.Locked[dir] = true
		b.Locked[dir.Opposite()] = true
	}
	return dir
}

// Bounds returns minX, minY, maxX, maxY over every room
func (d *Dungeon) Bounds() (minX, minY, maxX, maxY int) {
	return d.Grid().Bounds()
}

// IsKeyRoom reports whether the room with the given index holds a key
func (d *Dungeon) IsKeyRoom(index int) bool {
	for _, k := range d.Keys {
		if k.KeyRoom == index {
			return true
		}
	}
	return false
}

// IsLockRoom reports whether the room with the given index sits on the
// near side of a locked door
func (d *Dungeon) IsLockRoom(index int) bool {
	for _, k := range d.Keys {
		if k.LockRoom == index {
			return true
		}
	}
	return false
}

// RegionCount returns one more than the highest assigned region
func (d *Dungeon) RegionCount() int {
	count := 0
	for _, r := range d.Rooms {
		if r.Region+1 > count {
			count = r.Region + 1
		}
	}
	return count
}

// Walkthrough follows PathNext from the entrance and returns the intended
// visiting order. Side paths that lead to keys are included; the step after a
// key room jumps to the room beyond its lock.
func (d *Dungeon) Walkthrough() []int {
	var order []int
	if len(d.Rooms) == 0 {
		return order
	}
	seen := make([]bool, len(d.Rooms))
	for index := 0; index != NoRoom; index = d.Rooms[index].PathNext {
		if seen[index] {
			break
		}
		seen[index] = true
		order = append(order, index)
	}
	return order
}
