package world

// TunnelOrder selects which leg of an L-shaped tunnel is carved first.
type TunnelOrder int

const (
	// HorizontalFirst runs along the start's row, then the end's column.
	HorizontalFirst TunnelOrder = iota
	// VerticalFirst runs along the start's column, then the end's row.
	VerticalFirst
)

// String returns a human-readable order name.
func (o TunnelOrder) String() string {
	switch o {
	case HorizontalFirst:
		return "horizontal-first"
	case VerticalFirst:
		return "vertical-first"
	default:
		return "unknown"
	}
}

// CarveTunnel carves an L-shaped, one tile wide tunnel between two points.
func CarveTunnel(g *Grid, from, to Point, order TunnelOrder) {
	if order == HorizontalFirst {
		CarveHorizontalTunnel(g, from.X, to.X, from.Y)
		CarveVerticalTunnel(g, from.Y, to.Y, to.X)
	} else {
		CarveVerticalTunnel(g, from.Y, to.Y, from.X)
		CarveHorizontalTunnel(g, from.X, to.X, to.Y)
	}
}

// CarveHorizontalTunnel carves row y from x1 to x2 inclusive.
func CarveHorizontalTunnel(g *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.Carve(x, y)
	}
}

// CarveVerticalTunnel carves column x from y1 to y2 inclusive.
func CarveVerticalTunnel(g *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.Carve(x, y)
	}
}
