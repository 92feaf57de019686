package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the dungeon's tile occupancy model.
//
// The generator owns a Grid while carving it. Once handed to a caller the
// Grid is treated as read-only.
type Grid struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// NewBlocked creates a grid filled with walls. It panics if either
// dimension is not positive.
func NewBlocked(width, height int) *Grid {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Wall()
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// InBounds returns true if (x, y) addresses a tile of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt returns the tile at the given position. Panics if out of bounds.
func (g *Grid) TileAt(x, y int) Tile {
	g.mustInBounds(x, y)
	return g.tiles[y][x]
}

// Carve opens the tile at the given position. Panics if out of bounds.
func (g *Grid) Carve(x, y int) {
	g.mustInBounds(x, y)
	g.tiles[y][x] = Empty()
}

// IsBlocked returns true if the position cannot be entered. Positions
// outside the grid are blocked.
func (g *Grid) IsBlocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.tiles[y][x].Blocked
}

// OpenCount returns the number of carved tiles.
func (g *Grid) OpenCount() int {
	n := 0
	for y := range g.tiles {
		for _, t := range g.tiles[y] {
			if !t.Blocked {
				n++
			}
		}
	}
	return n
}

// Open returns the set of carved positions.
func (g *Grid) Open() mapset.Set[Point] {
	open := mapset.New[Point]()
	for y := range g.tiles {
		for x, t := range g.tiles[y] {
			if !t.Blocked {
				open.Put(Point{X: x, Y: y})
			}
		}
	}
	return open
}

// String renders the grid as ASCII, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := range g.tiles {
		for _, t := range g.tiles[y] {
			sb.WriteRune(t.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) mustInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile (%d,%d) out of bounds for %dx%d grid", x, y, g.Width, g.Height))
	}
}
