package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns every open tile 4-connected to from, including from
// itself. The set is empty if from is blocked.
func Reachable(g *Grid, from Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if g.IsBlocked(from.X, from.Y) {
		return visited
	}

	queue := []Point{from}
	visited.Put(from)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range []Point{
			{current.X, current.Y - 1},
			{current.X + 1, current.Y},
			{current.X, current.Y + 1},
			{current.X - 1, current.Y},
		} {
			if visited.Has(n) || g.IsBlocked(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}
