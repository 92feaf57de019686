package world

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned room bounding box. The corners are part of the
// room's wall; only the tiles strictly inside are carved.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner (x+w, y+h)
}

// NewRect builds a rectangle from an origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the truncated midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other. Edges are inclusive, so
// rooms that merely touch also intersect and never share a wall.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Width returns the horizontal extent of the bounding box.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns the vertical extent of the bounding box.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Interior calls fn for every tile strictly inside the rectangle.
func (r Rect) Interior(fn func(x, y int)) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			fn(x, y)
		}
	}
}

// ContainsInterior returns true if the point lies strictly inside the rectangle.
func (r Rect) ContainsInterior(p Point) bool {
	return p.X > r.X1 && p.X < r.X2 && p.Y > r.Y1 && p.Y < r.Y2
}
