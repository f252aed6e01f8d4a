// Package generator tests the branching path walk: collision-free layout,
// mirrored doors, keys outside their own lock, seeded determinism and the
// attempt cap.
package generator

import (
	"errors"
	"testing"

	"dungen/pkg/engine/rng"
	"dungen/pkg/engine/world"
	"dungen/pkg/game/catalog"
	"dungen/pkg/game/dungeon"
)

func generate(t *testing.T, cfg PathConfig, seed int64) *dungeon.Dungeon {
	t.Helper()
	d := dungeon.New()
	if err := NewBranchingPathLayer(cfg).Apply(d, rng.New(seed)); err != nil {
		t.Fatalf("Apply(seed %d) error = %v", seed, err)
	}
	return d
}

// scriptedSource replays a fixed list of walk directions, one per shuffle
type scriptedSource struct {
	moves []world.Direction
	next  int
}

func (s *scriptedSource) Intn(n int) int {
	return 0
}

func (s *scriptedSource) Float64() float64 {
	return 0
}

// Shuffle moves the scripted direction to the front. The slice it permutes
// starts in door-index order, so index and direction coincide.
func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {
	dir := s.moves[s.next%len(s.moves)]
	s.next++
	swap(0, int(dir))
}

func TestApply_StraightPathScenario(t *testing.T) {
	cfg := DefaultPathConfig()
	cfg.MainPathLength = IntRange{Min: 5, Max: 5}
	cfg.SidePathChance = 0
	cfg.OptionalRoomChance = 0

	for seed := int64(1); seed <= 20; seed++ {
		d := generate(t, cfg, seed)
		if len(d.Rooms) != 5 {
			t.Errorf("seed %d: len(Rooms) = %d, want 5", seed, len(d.Rooms))
		}
		if len(d.Keys) != 0 {
			t.Errorf("seed %d: len(Keys) = %d, want 0", seed, len(d.Keys))
		}
		if d.MainPath.Len() != 5 {
			t.Errorf("seed %d: MainPath.Len() = %d, want 5", seed, d.MainPath.Len())
		}
		if len(d.MainPath.SidePaths) != 0 {
			t.Errorf("seed %d: %d side paths, want 0", seed, len(d.MainPath.SidePaths))
		}
		if d.Exit().Index != 4 {
			t.Errorf("seed %d: exit index = %d, want 4", seed, d.Exit().Index)
		}
		// A line has two ends with one door and interior rooms with two
		for _, r := range d.Rooms {
			want := 2
			if r.Index == 0 || r.Index == 4 {
				want = 1
			}
			if got := r.CountDoors(false); got != want {
				t.Errorf("seed %d: room %d has %d doors, want %d", seed, r.Index, got, want)
			}
		}
	}
}

func TestApply_NoCoordinateCollisions(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		d := generate(t, DefaultPathConfig(), seed)
		seen := make(map[world.Point]int)
		for _, r := range d.Rooms {
			if other, ok := seen[r.Pos]; ok {
				t.Fatalf("seed %d: rooms %d and %d share %v", seed, other, r.Index, r.Pos)
			}
			seen[r.Pos] = r.Index
		}
	}
}

func TestApply_ProducesValidDungeons(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		d := generate(t, DefaultPathConfig(), seed)
		if err := dungeon.Validate(d); err != nil {
			t.Errorf("seed %d: Validate() = %v", seed, err)
		}
	}
}

func TestApply_MainPathLengthInRange(t *testing.T) {
	cfg := DefaultPathConfig()
	for seed := int64(1); seed <= 30; seed++ {
		d := generate(t, cfg, seed)
		n := d.MainPath.Len()
		if n < cfg.MainPathLength.Min || n > cfg.MainPathLength.Max {
			t.Errorf("seed %d: MainPath.Len() = %d, want within %v", seed, n, cfg.MainPathLength)
		}
		for _, index := range d.MainPath.Rooms {
			if d.Rooms[index].Depth != 0 {
				t.Errorf("seed %d: main path room %d has depth %d", seed, index, d.Rooms[index].Depth)
			}
		}
	}
}

func TestApply_KeysSitOnSidePaths(t *testing.T) {
	cfg := DefaultPathConfig()
	cfg.MainPathLength = IntRange{Min: 6, Max: 8}
	cfg.SidePathLength = IntRange{Min: 1, Max: 2}
	cfg.SidePathChance = 1
	cfg.OptionalRoomChance = 0

	d := generate(t, cfg, 7)
	if len(d.Keys) == 0 {
		t.Fatal("expected keys with SidePathChance = 1")
	}

	for _, k := range d.Keys {
		key := d.Rooms[k.KeyRoom]
		if key.Depth != 1 {
			t.Errorf("key room %d has depth %d, want 1", k.KeyRoom, key.Depth)
		}
		lock := d.Rooms[k.LockRoom]
		if !lock.Locked[k.LockedDoor] || !lock.Doors[k.LockedDoor] {
			t.Errorf("lock room %d: door %v not open and locked", k.LockRoom, k.LockedDoor)
		}
		if lock.Depth != 0 {
			t.Errorf("lock room %d has depth %d, want 0 (locks only on the main path)", k.LockRoom, lock.Depth)
		}
		if !dungeon.KeyReachable(d, k) {
			t.Errorf("key room %d is behind its own lock", k.KeyRoom)
		}
		beyond := d.Neighbor(lock, k.LockedDoor)
		if beyond == nil {
			t.Fatalf("no room beyond lock of room %d", k.LockRoom)
		}
		if key.PathNext != beyond.Index {
			t.Errorf("key room PathNext = %d, want %d", key.PathNext, beyond.Index)
		}
	}
}

func TestApply_OptionalBranchesAreSingleRooms(t *testing.T) {
	cfg := DefaultPathConfig()
	cfg.MainPathLength = IntRange{Min: 8, Max: 10}
	cfg.SidePathChance = 0
	cfg.OptionalRoomChance = 1

	d := generate(t, cfg, 3)
	if len(d.MainPath.SidePaths) == 0 {
		t.Fatal("expected optional branches with OptionalRoomChance = 1")
	}
	for _, p := range d.MainPath.SidePaths {
		if !p.Optional {
			t.Errorf("branch from %d not flagged optional", p.First())
		}
		if p.Len() != 2 {
			t.Errorf("optional branch has %d rooms (branch point included), want 2", p.Len())
		}
		if !d.Rooms[p.Last()].Optional {
			t.Errorf("optional branch room %d not marked Optional", p.Last())
		}
	}
	if len(d.Keys) != 0 {
		t.Errorf("optional branches produced %d keys, want 0", len(d.Keys))
	}
}

func TestApply_Deterministic(t *testing.T) {
	a := generate(t, DefaultPathConfig(), 42)
	b := generate(t, DefaultPathConfig(), 42)

	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i].Pos != b.Rooms[i].Pos || a.Rooms[i].Doors != b.Rooms[i].Doors || a.Rooms[i].Locked != b.Rooms[i].Locked {
			t.Errorf("room %d differs between identical seeds", i)
		}
	}
	if len(a.Keys) != len(b.Keys) {
		t.Fatalf("key counts differ: %d vs %d", len(a.Keys), len(b.Keys))
	}
	for i := range a.Keys {
		if a.Keys[i] != b.Keys[i] {
			t.Errorf("key %d = %+v vs %+v", i, a.Keys[i], b.Keys[i])
		}
	}
}

func TestApply_AttemptsExhausted(t *testing.T) {
	// The walk curls around (1,0) and then steps into it, leaving no way out.
	cfg := DefaultPathConfig()
	cfg.MainPathLength = IntRange{Min: 9, Max: 9}
	cfg.SidePathChance = 0
	cfg.OptionalRoomChance = 0
	cfg.MaxAttempts = 3

	src := &scriptedSource{moves: []world.Direction{
		world.North, world.East, world.East, world.South,
		world.South, world.West, world.North, world.West,
	}}

	d := dungeon.New()
	err := NewBranchingPathLayer(cfg).Apply(d, src)
	if err == nil {
		t.Fatal("Apply() = nil, want ErrAttemptsExhausted")
	}
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Errorf("Apply() = %v, want ErrAttemptsExhausted", err)
	}
	if src.next != 3*8 {
		t.Errorf("walk shuffled %d times, want %d (three full attempts)", src.next, 3*8)
	}
	if len(d.Rooms) != 0 {
		t.Errorf("failed Apply left %d rooms, want 0", len(d.Rooms))
	}
}

func TestApply_RejectsInvalidConfig(t *testing.T) {
	cases := map[string]func(*PathConfig){
		"short main path":  func(c *PathConfig) { c.MainPathLength = IntRange{Min: 1, Max: 3} },
		"empty main range": func(c *PathConfig) { c.MainPathLength = IntRange{Min: 9, Max: 3} },
		"empty side path":  func(c *PathConfig) { c.SidePathLength = IntRange{Min: 0, Max: 3} },
		"negative chance":  func(c *PathConfig) { c.SidePathChance = -1 },
		"no attempts":      func(c *PathConfig) { c.MaxAttempts = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultPathConfig()
			mutate(&cfg)
			err := NewBranchingPathLayer(cfg).Apply(dungeon.New(), rng.New(1))
			var cfgErr *catalog.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Apply() = %v, want *catalog.ConfigurationError", err)
			}
		})
	}
}
