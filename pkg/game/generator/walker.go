package generator

import (
	"fmt"

	"dungen/pkg/engine/rng"
	"dungen/pkg/engine/world"
	"dungen/pkg/game/dungeon"
)

var originPoint = world.Point{}

// walker holds the state shared by every recursive path of one attempt
type walker struct {
	d   *dungeon.Dungeon
	src rng.Source
	cfg PathConfig
}

// nextDirection picks a random wall of room whose neighbouring cell is free
func (w *walker) nextDirection(room *dungeon.Room) world.Direction {
	dirs := world.AllDirections()
	w.src.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, dir := range dirs {
		if !w.d.Grid().Occupied(room.Pos.Step(dir)) {
			return dir
		}
	}
	return world.NoDirection
}

// createPath appends length new rooms to path, starting next to room (which
// is not part of the new rooms). Branches spawn along the way. Returns the
// last room created.
func (w *walker) createPath(path *dungeon.Path, room *dungeon.Room, length, depth int) (*dungeon.Room, error) {
	keyRoom := dungeon.NoRoom

	for length > 0 {
		dir := w.nextDirection(room)
		if dir == world.NoDirection {
			return nil, fmt.Errorf("%w: room %d at %v is boxed in", ErrLayoutDeadEnd, room.Index, room.Pos)
		}

		next := w.d.AddRoom(room.Pos.Step(dir), depth)
		locked := keyRoom != dungeon.NoRoom
		w.d.Connect(room, next, locked)

		if locked {
			w.d.Keys = append(w.d.Keys, dungeon.Key{
				KeyRoom:    keyRoom,
				LockRoom:   room.Index,
				LockedDoor: dir,
			})
			// After fetching the key, the route resumes beyond the lock
			w.d.Rooms[keyRoom].PathNext = next.Index
			keyRoom = dungeon.NoRoom
		} else {
			room.PathNext = next.Index
		}
		next.PathLast = room.Index

		path.Rooms = append(path.Rooms, next.Index)
		room = next
		length--

		if length == 0 {
			break
		}

		if rng.Chance(w.src, w.cfg.OptionalRoomChance) {
			branch := &dungeon.Path{Rooms: []int{room.Index}, Optional: true}
			last, err := w.createPath(branch, room, 1, depth+1)
			if err != nil {
				return nil, err
			}
			last.Optional = true
			path.SidePaths = append(path.SidePaths, branch)
		}

		if depth == 0 && rng.Chance(w.src, w.cfg.SidePathChance) {
			branch := &dungeon.Path{Rooms: []int{room.Index}}
			sideLength := rng.Between(w.src, w.cfg.SidePathLength.Min, w.cfg.SidePathLength.Max)
			last, err := w.createPath(branch, room, sideLength, depth+1)
			if err != nil {
				return nil, err
			}
			path.SidePaths = append(path.SidePaths, branch)
			keyRoom = last.Index
		}
	}

	return room, nil
}
