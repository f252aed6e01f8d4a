package setup

import (
	"testing"

	"dungen/pkg/engine/rng"
	"dungen/pkg/game/catalog"
	"dungen/pkg/game/dungeon"
	"dungen/pkg/logger"
)

func init() {
	logger.Silence()
}

// prepared returns a generated dungeon with regions and difficulties set
func prepared(t *testing.T, seed int64) *dungeon.Dungeon {
	t.Helper()
	d := generated(t, seed)
	if err := AssignRegions(d); err != nil {
		t.Fatal(err)
	}
	if err := AssignDifficulties(d, DefaultCurve(), rng.New(seed)); err != nil {
		t.Fatal(err)
	}
	return d
}

func minimalRooms() []catalog.RoomType {
	return []catalog.RoomType{
		catalog.EntranceRoom("Start", 0, 1),
		catalog.ExitRoom("Boss", 0, 1),
		catalog.Room("Plain", 0, 1),
	}
}

func TestContentLayer_SingleGenericType(t *testing.T) {
	cat := catalog.MustNew(minimalRooms(), nil)
	for seed := int64(1); seed <= 10; seed++ {
		d := prepared(t, seed)
		layer := &ContentLayer{Catalog: cat}
		if err := layer.Apply(d, rng.New(seed)); err != nil {
			t.Fatalf("seed %d: Apply() error = %v", seed, err)
		}

		for _, r := range d.Rooms {
			want := "Plain"
			switch {
			case r.Index == 0:
				want = "Start"
			case d.IsExit(r):
				want = "Boss"
			}
			if r.TypeName() != want {
				t.Errorf("seed %d: room %d type = %q, want %q", seed, r.Index, r.TypeName(), want)
			}
			if len(r.Enemies) != 0 {
				t.Errorf("seed %d: room %d has enemies from an empty roster", seed, r.Index)
			}
		}
	}
}

func TestPickRoomType_RespectsBudget(t *testing.T) {
	cat := catalog.Default()
	for seed := int64(1); seed <= 10; seed++ {
		d := prepared(t, seed)
		src := rng.New(seed)
		for _, r := range d.Rooms[1:] {
			if d.IsExit(r) {
				continue
			}
			got, err := PickRoomType(src, cat, d, r)
			if err != nil {
				t.Fatalf("PickRoomType() error = %v", err)
			}
			if got != cat.LowestDifficulty() && got.Difficulty > r.Difficulty {
				t.Errorf("room %d (difficulty %v) got %q costing %v", r.Index, r.Difficulty, got.Name, got.Difficulty)
			}
			if got.Optional && !r.Optional {
				t.Errorf("required room %d got optional type %q", r.Index, got.Name)
			}
			if !got.IsGeneric() {
				t.Errorf("room %d got terminal type %q", r.Index, got.Name)
			}
		}
	}
}

func TestPickRoomType_FallsBackToEasiest(t *testing.T) {
	rooms := append(minimalRooms()[:2],
		catalog.Room("Hard", 80, 5),
		catalog.Room("Easy", 40, 1),
	)
	cat := catalog.MustNew(rooms, nil)
	d := lockedCorridor()
	d.Rooms[1].Difficulty = 0.1

	got, err := PickRoomType(rng.New(1), cat, d, d.Rooms[1])
	if err != nil {
		t.Fatalf("PickRoomType() error = %v", err)
	}
	if got.Name != "Easy" {
		t.Errorf("PickRoomType() = %q, want the fallback %q", got.Name, "Easy")
	}
}

func TestPickRoomType_MaxDoorsAndOptional(t *testing.T) {
	closet := catalog.Room("Closet", 0, 100)
	closet.MaxDoors = 1
	secret := catalog.Room("Secret", 0, 100)
	secret.Optional = true
	rooms := append(minimalRooms(), closet, secret)
	cat := catalog.MustNew(rooms, nil)

	d := lockedCorridor()
	hub := d.Rooms[1] // three doors, not optional
	hub.Difficulty = 1
	src := rng.New(5)
	for i := 0; i < 50; i++ {
		got, err := PickRoomType(src, cat, d, hub)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "Plain" {
			t.Fatalf("hub room got %q, want %q", got.Name, "Plain")
		}
	}

	dead := d.Rooms[2] // one door
	dead.Optional = true
	dead.Difficulty = 1
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got, err := PickRoomType(src, cat, d, dead)
		if err != nil {
			t.Fatal(err)
		}
		seen[got.Name] = true
	}
	if !seen["Closet"] || !seen["Secret"] {
		t.Errorf("optional dead end drew %v, want Closet and Secret among them", seen)
	}
}

func TestPlaceEnemies_MaxCountOne(t *testing.T) {
	enemies := []catalog.EnemyType{catalog.Enemy("Lone Wolf", 1, 1, 1)}
	cat := catalog.MustNew(minimalRooms(), enemies)

	d := lockedCorridor()
	r := d.Rooms[1]
	r.Type = cat.RoomByName("Plain")
	r.Difficulty = 1

	PlaceEnemies(rng.New(1), cat, d, r)
	if len(r.Enemies) != 1 {
		t.Errorf("placed %d enemies, want exactly 1", len(r.Enemies))
	}
}

func TestPlaceEnemies_SpendsBudget(t *testing.T) {
	enemies := []catalog.EnemyType{catalog.Enemy("Rat", 10, 1, 100)}
	cat := catalog.MustNew(minimalRooms(), enemies)

	d := lockedCorridor()
	r := d.Rooms[1]
	r.Type = cat.RoomByName("Plain")
	r.Difficulty = 0.45

	PlaceEnemies(rng.New(1), cat, d, r)
	if len(r.Enemies) != 4 {
		t.Errorf("placed %d rats with budget 0.45, want 4", len(r.Enemies))
	}
}

func TestPlaceEnemies_Requirements(t *testing.T) {
	rooms := append(minimalRooms(), catalog.Room("Trap", 0, 1))
	enemies := []catalog.EnemyType{
		catalog.Enemy("Minion", 10, 1, 1),
		catalog.Enemy("Master", 10, 100, 1).WithRequiredEnemies("Minion"),
		catalog.Enemy("Turret", 10, 100, 1).WithRequiredRooms("Trap"),
		catalog.Enemy("Warden", 10, 100, 1).AtEndOfRegion(),
	}
	cat := catalog.MustNew(rooms, enemies)

	t.Run("plain room", func(t *testing.T) {
		d := lockedCorridor()
		r := d.Rooms[1]
		r.Type = cat.RoomByName("Plain")
		r.Difficulty = 1

		PlaceEnemies(rng.New(1), cat, d, r)
		if len(r.Enemies) == 0 || r.Enemies[0].Name != "Minion" {
			t.Fatalf("first enemy = %v, want Minion (the only one without requirements)", r.Enemies)
		}
		if !r.HasEnemyNamed("Master") {
			t.Error("Master not placed after Minion")
		}
		if r.HasEnemyNamed("Turret") {
			t.Error("Turret placed outside a Trap room")
		}
		if r.HasEnemyNamed("Warden") {
			t.Error("Warden placed in a room without a key")
		}
	})

	t.Run("key room", func(t *testing.T) {
		d := lockedCorridor()
		r := d.Rooms[2]
		r.Type = cat.RoomByName("Trap")
		r.Difficulty = 1

		PlaceEnemies(rng.New(1), cat, d, r)
		for _, name := range []string{"Minion", "Master", "Turret", "Warden"} {
			if !r.HasEnemyNamed(name) {
				t.Errorf("%s missing from the key trap room, got %v", name, r.Enemies)
			}
		}
	})
}

func TestContentLayer_EntranceAndExitEnemies(t *testing.T) {
	enemies := []catalog.EnemyType{catalog.Enemy("Rat", 1, 1, 3)}
	cat := catalog.MustNew(minimalRooms(), enemies)

	d := lockedCorridor()
	for _, r := range d.Rooms {
		r.Difficulty = 1
	}

	if err := (&ContentLayer{Catalog: cat}).Apply(d, rng.New(1)); err != nil {
		t.Fatal(err)
	}
	if len(d.Entrance().Enemies) != 0 {
		t.Error("entrance received enemies")
	}
	if len(d.Exit().Enemies) != 0 {
		t.Error("exit received enemies without PopulateExit")
	}

	if err := (&ContentLayer{Catalog: cat, PopulateExit: true}).Apply(d, rng.New(1)); err != nil {
		t.Fatal(err)
	}
	if len(d.Exit().Enemies) != 3 {
		t.Errorf("exit has %d enemies with PopulateExit, want 3", len(d.Exit().Enemies))
	}
}

func TestContentLayer_DefaultCatalog(t *testing.T) {
	cat := catalog.Default()
	for seed := int64(1); seed <= 20; seed++ {
		d := prepared(t, seed)
		if err := (&ContentLayer{Catalog: cat}).Apply(d, rng.New(seed)); err != nil {
			t.Fatalf("seed %d: Apply() error = %v", seed, err)
		}
		for _, r := range d.Rooms {
			if r.Type == nil {
				t.Fatalf("seed %d: room %d has no type", seed, r.Index)
			}
			spent := r.Type.Difficulty
			for _, e := range r.Enemies {
				spent += e.Difficulty
				if r.EnemyCount(e) > e.MaxCount {
					t.Errorf("seed %d: room %d holds %d %s, max %d", seed, r.Index, r.EnemyCount(e), e.Name, e.MaxCount)
				}
			}
			if len(r.Enemies) > 0 && spent > r.Difficulty+epsilon {
				t.Errorf("seed %d: room %d spent %v of %v", seed, r.Index, spent, r.Difficulty)
			}
		}
	}
}
