package dungeon

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"dungen/pkg/engine/world"
)

// ErrInvalid wraps every structural invariant violation found by Validate
var ErrInvalid = errors.New("invalid dungeon")

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
}

// Validate checks the structural invariants of a generated dungeon:
// unique coordinates, mirrored doors, no door into the void, consistent
// keys and a connected graph.
func Validate(d *Dungeon) error {
	if d == nil || len(d.Rooms) == 0 {
		return invalid("dungeon has no rooms")
	}

	if d.Grid().Len() != len(d.Rooms) {
		return invalid("%d rooms but %d occupied cells", len(d.Rooms), d.Grid().Len())
	}

	for i, r := range d.Rooms {
		if r.Index != i {
			return invalid("room at position %d has index %d", i, r.Index)
		}
		if index, found := d.Grid().At(r.Pos); !found || index != i {
			return invalid("room %d at %v is not indexed by the grid", i, r.Pos)
		}

		for _, dir := range world.AllDirections() {
			neighbor := d.Neighbor(r, dir)
			if r.Doors[dir] && neighbor == nil {
				return invalid("room %d has a %v door into the void", i, dir)
			}
			if neighbor != nil && r.Doors[dir] != neighbor.Doors[dir.Opposite()] {
				return invalid("door between rooms %d and %d is one-sided", i, neighbor.Index)
			}
			if r.Locked[dir] && !r.Doors[dir] {
				return invalid("room %d has a locked %v wall without a door", i, dir)
			}
			if neighbor != nil && r.Locked[dir] != neighbor.Locked[dir.Opposite()] {
				return invalid("lock between rooms %d and %d is one-sided", i, neighbor.Index)
			}
		}
	}

	if d.MainPath != nil {
		if d.MainPath.First() != 0 {
			return invalid("main path starts at room %d, not the entrance", d.MainPath.First())
		}
		if d.MainPath.Last() != len(d.Rooms)-1 {
			return invalid("main path ends at room %d, not the last room", d.MainPath.Last())
		}
	}

	for i, k := range d.Keys {
		lock := d.Room(k.LockRoom)
		if lock == nil || d.Room(k.KeyRoom) == nil {
			return invalid("key %d references a missing room", i)
		}
		if !k.LockedDoor.IsValid() || !lock.Doors[k.LockedDoor] || !lock.Locked[k.LockedDoor] {
			return invalid("key %d: room %d has no locked %v door", i, k.LockRoom, k.LockedDoor)
		}
		if !KeyReachable(d, k) {
			return invalid("key %d in room %d is behind its own lock", i, k.KeyRoom)
		}
	}

	if reachable := Reachable(d, nil); reachable.Size() != len(d.Rooms) {
		return invalid("only %d of %d rooms are connected to the entrance", reachable.Size(), len(d.Rooms))
	}

	return nil
}

// doorRef names one side of a door
type doorRef struct {
	room int
	dir  world.Direction
}

// Reachable returns the indices of rooms reachable from the entrance
// through open doors, never crossing a door in blocked.
func Reachable(d *Dungeon, blocked []Key) mapset.Set[int] {
	reachable := mapset.New[int]()
	if len(d.Rooms) == 0 {
		return reachable
	}

	closed := mapset.New[doorRef]()
	for _, k := range blocked {
		lock := d.Room(k.LockRoom)
		closed.Put(doorRef{room: k.LockRoom, dir: k.LockedDoor})
		if beyond := d.Neighbor(lock, k.LockedDoor); beyond != nil {
			closed.Put(doorRef{room: beyond.Index, dir: k.LockedDoor.Opposite()})
		}
	}

	queue := []int{0}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		room := d.Rooms[current]
		for _, dir := range world.AllDirections() {
			if !room.Doors[dir] || closed.Has(doorRef{room: current, dir: dir}) {
				continue
			}
			if n := d.Neighbor(room, dir); n != nil && !reachable.Has(n.Index) {
				queue = append(queue, n.Index)
			}
		}
	}

	return reachable
}

// KeyReachable reports whether the key room of k can be reached from the
// entrance without passing through k's own locked door.
func KeyReachable(d *Dungeon, k Key) bool {
	return Reachable(d, []Key{k}).Has(k.KeyRoom)
}
