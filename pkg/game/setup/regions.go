package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"dungen/pkg/engine/rng"
	"dungen/pkg/engine/world"
	"dungen/pkg/game/dungeon"
)

// RegionLayer numbers the areas separated by locked doors
type RegionLayer struct{}

// Name returns the name of this layer
func (RegionLayer) Name() string {
	return "Regions"
}

// Apply assigns every room its region
func (l RegionLayer) Apply(d *dungeon.Dungeon, _ rng.Source) error {
	if err := AssignRegions(d); err != nil {
		return err
	}
	logDone(l.Name(), d, logrus.Fields{"regions": d.RegionCount()})
	return nil
}

// lockedSide is the near side of a locked door: crossing it from room
// through dir enters the next region.
type lockedSide struct {
	room int
	dir  world.Direction
}

// AssignRegions sets each room's Region to the minimum number of locked
// doors crossed on the way from the entrance. Passes over all rooms repeat
// until nothing changes; a lock costs one when crossed from its key side
// and nothing the other way.
func AssignRegions(d *dungeon.Dungeon) error {
	if len(d.Rooms) == 0 {
		return nil
	}

	locks := mapset.New[lockedSide]()
	for _, k := range d.Keys {
		locks.Put(lockedSide{room: k.LockRoom, dir: k.LockedDoor})
	}

	for _, r := range d.Rooms {
		r.Region = dungeon.Unresolved
	}
	d.Rooms[0].Region = 0

	for changed := true; changed; {
		changed = false
		for _, r := range d.Rooms {
			for _, dir := range world.AllDirections() {
				if !r.Doors[dir] {
					continue
				}
				neighbor := d.Neighbor(r, dir)
				if neighbor == nil || neighbor.Region == dungeon.Unresolved {
					continue
				}

				region := neighbor.Region
				if locks.Has(lockedSide{room: neighbor.Index, dir: dir.Opposite()}) {
					region++
				}
				if r.Region == dungeon.Unresolved || region < r.Region {
					r.Region = region
					changed = true
				}
			}
		}
	}

	for _, r := range d.Rooms {
		if r.Region == dungeon.Unresolved {
			return fmt.Errorf("%w: room %d at %v", ErrUnresolvedRegion, r.Index, r.Pos)
		}
	}
	return nil
}
