package renderer

import (
	"reflect"
	"testing"

	"dungen/pkg/engine/world"
	"dungen/pkg/game/catalog"
	"dungen/pkg/game/dungeon"
)

// corridor builds an L-shaped dungeon:
//
//	S-o
//	  H
//	K-E
//
// with a key room holding the key to the locked door below room 1.
func corridor() *dungeon.Dungeon {
	d := dungeon.New()
	r0 := d.AddRoom(world.Point{X: 0, Y: 0}, 0)
	r1 := d.AddRoom(world.Point{X: 1, Y: 0}, 0)
	r2 := d.AddRoom(world.Point{X: 1, Y: 1}, 0)
	r3 := d.AddRoom(world.Point{X: 0, Y: 1}, 1)
	d.Connect(r0, r1, false)
	dir := d.Connect(r1, r2, true)
	d.Connect(r2, r3, false)
	d.Keys = []dungeon.Key{{KeyRoom: 3, LockRoom: 1, LockedDoor: dir}}
	d.MainPath = &dungeon.Path{Rooms: []int{0, 1, 2}}
	return d
}

func TestPlainMap(t *testing.T) {
	d := corridor()
	// Room 3 is created last but the exit is the last main path room
	got := PlainMap(d)
	want := []string{
		"S-o",
		"  H",
		"K-E",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlainMap() = %q, want %q", got, want)
	}
}

func TestLayout_RoomIndices(t *testing.T) {
	d := corridor()
	layout := Layout(d)
	if len(layout) != 3 || len(layout[0]) != 3 {
		t.Fatalf("layout is %dx%d, want 3x3", len(layout), len(layout[0]))
	}
	if layout[0][0].Room != 0 || layout[2][2].Room != 2 || layout[2][0].Room != 3 {
		t.Errorf("room indices misplaced: %+v", layout)
	}
	if layout[0][1].Room != dungeon.NoRoom || layout[0][1].Style != StyleDoor {
		t.Errorf("door cell = %+v, want an unlocked door", layout[0][1])
	}
	if layout[1][2].Style != StyleLockedDoor {
		t.Errorf("locked door cell = %+v", layout[1][2])
	}
}

func TestLayout_Empty(t *testing.T) {
	if got := Layout(dungeon.New()); got != nil {
		t.Errorf("Layout(empty) = %v, want nil", got)
	}
}

func TestEnemySummary(t *testing.T) {
	slime := catalog.Enemy("Slime", 1, 1, 4)
	bat := catalog.Enemy("Bat", 1, 1, 4)
	r := &dungeon.Room{Enemies: []*catalog.EnemyType{&slime, &bat, &slime, &slime}}

	got := EnemySummary(r)
	want := []string{"Slime x3", "Bat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnemySummary() = %q, want %q", got, want)
	}
}
