package dungeon

// Path is one continuous walk. A side path's first room is the room it
// branched from, shared with the parent path rather than copied.
type Path struct {
	Rooms     []int
	SidePaths []*Path
	Optional  bool
}

// First returns the index of the first room, or NoRoom
func (p *Path) First() int {
	if p == nil || len(p.Rooms) == 0 {
		return NoRoom
	}
	return p.Rooms[0]
}

// Last returns the index of the last room, or NoRoom
func (p *Path) Last() int {
	if p == nil || len(p.Rooms) == 0 {
		return NoRoom
	}
	return p.Rooms[len(p.Rooms)-1]
}

// Len returns the number of rooms on the path, including a shared first room
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Rooms)
}

// Walk visits p and every nested side path, depth first
func (p *Path) Walk(fn func(path *Path, depth int)) {
	p.walk(fn, 0)
}

func (p *Path) walk(fn func(path *Path, depth int), depth int) {
	if p == nil {
		return
	}
	fn(p, depth)
	for _, side := range p.SidePaths {
		side.walk(fn, depth+1)
	}
}
