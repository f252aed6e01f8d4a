package catalog

// DefaultRooms returns the stock room roster
func DefaultRooms() []RoomType {
	return []RoomType{
		EntranceRoom("Empty Entrance", 0, 1),

		ExitRoom("Tank Boss", 0, 1),
		ExitRoom("Use Environment Boss", 0, 1),
		ExitRoom("Tons-O-Bullets Boss", 0, 1),
		ExitRoom("Minion Caller Boss", 0, 1),

		requiresEnemy(Room("Kill Specific Enemy", 10, 2)),
		requiresEnemy(Room("Kill All Enemies", 17, 2)),
		requiresEnemy(Room("Waves of Enemies", 25, 1)),

		Room("Wait & Shoot Timing Puzzle", 7, 4),
		Room("Move Secret Block Puzzle", 10, 5),
		Room("Red Light/Green Light Timing Puzzle", 12, 4),
		Room("Shoot in Order Puzzle", 11, 3),
		Room("Move & Shoot Timing Puzzle", 15, 4),

		Room("Spike Ball Trap", 14, 3),
		Room("Buzzsaw Trap", 22, 3),
		Room("Flame Thrower Trap", 17, 3),
		Room("Drop Out Floor Trap", 31, 3),
		Room("Deadly Fake Item", 37, 1),

		Room("Empty Room", 1, 12),
		Room("Hallway", 3, 10),
		Room("Simple Maze", 8, 5),
		Room("Complex Maze", 18, 2),

		secret(Room("Secret Room", 2, 3)),
	}
}

// DefaultEnemies returns the stock enemy roster
func DefaultEnemies() []EnemyType {
	return []EnemyType{
		Enemy("Slime", 4, 6, 4),
		Enemy("Skeleton", 8, 4, 3),
		Enemy("Archer", 11, 3, 2),
		Enemy("Necromancer", 20, 1, 1).WithRequiredEnemies("Skeleton"),
		Enemy("Turret", 6, 2, 2).WithRequiredRooms("Spike Ball Trap", "Buzzsaw Trap", "Flame Thrower Trap"),
		Enemy("Key Warden", 25, 2, 1).AtEndOfRegion(),
	}
}

// Default returns a catalog built from the stock rosters
func Default() *Catalog {
	return MustNew(DefaultRooms(), DefaultEnemies())
}

func requiresEnemy(t RoomType) RoomType {
	t.RequiresEnemy = true
	return t
}

func secret(t RoomType) RoomType {
	t.Optional = true
	t.MaxDoors = 1
	return t
}
