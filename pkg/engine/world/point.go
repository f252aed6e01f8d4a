package world

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Step returns the point one cell away in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Neighbors returns the four adjacent points in door-index order
func (p Point) Neighbors() [DirectionCount]Point {
	var out [DirectionCount]Point
	for _, dir := range AllDirections() {
		out[dir] = p.Step(dir)
	}
	return out
}

// DirectionTo returns the direction from p to q, or NoDirection if the two
// points are not orthogonally adjacent.
func (p Point) DirectionTo(q Point) Direction {
	for _, dir := range AllDirections() {
		if p.Step(dir) == q {
			return dir
		}
	}
	return NoDirection
}
