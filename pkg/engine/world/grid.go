package world

// Grid is an unbounded, sparse map from grid coordinates to the index of the
// room occupying that cell. Coordinates may be negative; the grid grows as
// cells are placed.
type Grid struct {
	roomMap map[int]map[int]int
	count   int

	minX, minY int
	maxX, maxY int
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{
		roomMap: make(map[int]map[int]int),
	}
}

// Len returns the number of occupied cells
func (g *Grid) Len() int {
	return g.count
}

// Occupied reports whether a room already sits at p
func (g *Grid) Occupied(p Point) bool {
	_, found := g.At(p)
	return found
}

// At returns the room index stored at p
func (g *Grid) At(p Point) (int, bool) {
	if g.roomMap == nil {
		return 0, false
	}

	column, found := g.roomMap[p.X]
	if !found {
		return 0, false
	}

	index, found := column[p.Y]
	return index, found
}

// Place records a room index at p. Returns false if p is already occupied.
func (g *Grid) Place(p Point, index int) bool {
	if g.roomMap == nil {
		g.roomMap = make(map[int]map[int]int)
	}
	if g.Occupied(p) {
		return false
	}

	column, found := g.roomMap[p.X]
	if !found {
		column = make(map[int]int)
		g.roomMap[p.X] = column
	}
	column[p.Y] = index

	if g.count == 0 {
		g.minX, g.maxX = p.X, p.X
		g.minY, g.maxY = p.Y, p.Y
	} else {
		g.minX = min(g.minX, p.X)
		g.maxX = max(g.maxX, p.X)
		g.minY = min(g.minY, p.Y)
		g.maxY = max(g.maxY, p.Y)
	}
	g.count++

	return true
}

// FreeNeighbors returns the directions around p whose cells are unoccupied
func (g *Grid) FreeNeighbors(p Point) []Direction {
	var free []Direction
	for _, dir := range AllDirections() {
		if !g.Occupied(p.Step(dir)) {
			free = append(free, dir)
		}
	}
	return free
}

// Bounds returns the inclusive bounding box of all occupied cells.
// An empty grid reports all zeroes.
func (g *Grid) Bounds() (minX, minY, maxX, maxY int) {
	return g.minX, g.minY, g.maxX, g.maxY
}

// Size returns the width and height of the bounding box
func (g *Grid) Size() (width, height int) {
	if g.count == 0 {
		return 0, 0
	}
	return g.maxX - g.minX + 1, g.maxY - g.minY + 1
}

// ForEachCell calls fn for every occupied cell in row-major order
func (g *Grid) ForEachCell(fn func(p Point, index int)) {
	if g.count == 0 {
		return
	}
	for y := g.minY; y <= g.maxY; y++ {
		for x := g.minX; x <= g.maxX; x++ {
			p := Point{X: x, Y: y}
			if index, found := g.At(p); found {
				fn(p, index)
			}
		}
	}
}
