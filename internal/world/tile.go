// Package world provides dungeon generation and the tile occupancy model.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked    bool // Cannot be entered
	BlockSight bool // Opaque to visibility
}

// Empty returns a carved, passable and transparent tile.
func Empty() Tile {
	return Tile{Blocked: false, BlockSight: false}
}

// Wall returns an uncarved tile that blocks both movement and sight.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// Rune returns the tile's ASCII representation.
func (t Tile) Rune() rune {
	if t.Blocked {
		return '#'
	}
	return '.'
}
