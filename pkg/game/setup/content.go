package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"dungen/pkg/engine/rng"
	"dungen/pkg/game/catalog"
	"dungen/pkg/game/dungeon"
	"dungen/pkg/logger"
)

// ContentLayer furnishes rooms from a catalog: one room type each, then
// as many enemies as the remaining difficulty budget allows.
type ContentLayer struct {
	Catalog *catalog.Catalog

	// PopulateExit lets the final room receive enemies too.
	PopulateExit bool
}

// Name returns the name of this layer
func (l *ContentLayer) Name() string {
	return "Content"
}

// Validate checks that a catalog is configured. Catalogs validate
// themselves when they are built.
func (l *ContentLayer) Validate() error {
	if l.Catalog == nil {
		return &catalog.ConfigurationError{Field: "catalog", Reason: "no catalog configured"}
	}
	return nil
}

// Apply assigns types and enemies to every room in creation order
func (l *ContentLayer) Apply(d *dungeon.Dungeon, src rng.Source) error {
	if err := l.Validate(); err != nil {
		return err
	}

	enemies := 0
	for _, r := range d.Rooms {
		t, err := PickRoomType(src, l.Catalog, d, r)
		if err != nil {
			return err
		}
		r.Type = t
		r.Enemies = nil

		if r.Index == 0 || (d.IsExit(r) && !l.PopulateExit) {
			continue
		}
		PlaceEnemies(src, l.Catalog, d, r)
		enemies += len(r.Enemies)
	}

	logDone(l.Name(), d, logrus.Fields{"enemies": enemies})
	return nil
}

func typeWeight(t *catalog.RoomType) int {
	return t.Priority
}

func enemyWeight(e *catalog.EnemyType) int {
	return e.Priority
}

func anyType(*catalog.RoomType) bool {
	return true
}

// PickRoomType draws a room type for r. The entrance draws from entrance
// types and the exit from exit types. Any other room draws from the generic
// types it can afford, that allow its number of doors, and that are only
// optional when the room is. If nothing fits, the cheapest generic type is
// used regardless of those limits.
func PickRoomType(src rng.Source, cat *catalog.Catalog, d *dungeon.Dungeon, r *dungeon.Room) (*catalog.RoomType, error) {
	switch {
	case r.Index == 0:
		t, err := WeightedPick(src, cat.Entrances(), typeWeight, anyType)
		if err != nil {
			return nil, fmt.Errorf("entrance room: %w", err)
		}
		return t, nil

	case d.IsExit(r):
		t, err := WeightedPick(src, cat.Exits(), typeWeight, anyType)
		if err != nil {
			return nil, fmt.Errorf("exit room: %w", err)
		}
		return t, nil
	}

	doors := r.CountDoors(false)
	t, err := WeightedPick(src, cat.Generic(), typeWeight, func(t *catalog.RoomType) bool {
		return t.Difficulty <= r.Difficulty &&
			doors <= t.MaxDoors &&
			(!t.Optional || r.Optional)
	})
	if err == nil {
		return t, nil
	}

	fallback := cat.LowestDifficulty()
	if fallback == nil {
		return nil, fmt.Errorf("room %d: %w", r.Index, err)
	}
	logger.Log.WithFields(logrus.Fields{
		"room":       r.Index,
		"difficulty": r.Difficulty,
		"doors":      doors,
		"type":       fallback.Name,
	}).Warn("no room type fits, using the easiest one")
	return fallback, nil
}

// PlaceEnemies spends the budget left after r's type on enemies. Each draw
// considers only enemies that fit the remaining budget, are below their
// per-room cap, and whose requirements the room meets. Placement stops at
// the first draw with no eligible enemy; leftover budget is not an error.
func PlaceEnemies(src rng.Source, cat *catalog.Catalog, d *dungeon.Dungeon, r *dungeon.Room) {
	budget := r.Difficulty
	if r.Type != nil {
		budget -= r.Type.Difficulty
	}
	endOfRegion := d.IsKeyRoom(r.Index) || d.IsExit(r)

	for budget > 0 {
		e, err := WeightedPick(src, cat.Enemies(), enemyWeight, func(e *catalog.EnemyType) bool {
			return enemyFits(e, r, budget, endOfRegion)
		})
		if err != nil {
			return
		}
		r.Enemies = append(r.Enemies, e)
		budget -= e.Difficulty
	}
}

func enemyFits(e *catalog.EnemyType, r *dungeon.Room, budget float64, endOfRegion bool) bool {
	if e.Difficulty > budget || r.EnemyCount(e) >= e.MaxCount {
		return false
	}
	if e.EndOfRegion && !endOfRegion {
		return false
	}
	if e.RequiresRoom.Size() > 0 && !e.RequiresRoom.Has(r.TypeName()) {
		return false
	}
	if e.RequiresEnemy.Size() > 0 {
		found := false
		for _, placed := range r.Enemies {
			if e.RequiresEnemy.Has(placed.Name) {
				found = true
				break
			}
		}
		return found
	}
	return true
}
