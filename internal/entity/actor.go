// Package entity provides positioned game entities.
package entity

import "github.com/gdamore/tcell/v2"

// Terrain answers whether a position can be entered. Positions outside the
// terrain must report blocked.
type Terrain interface {
	IsBlocked(x, y int) bool
}

// Actor is a positioned entity drawn with a single glyph.
type Actor struct {
	Name  string      // Identifier used in logs
	X, Y  int         // Current position
	Glyph rune        // Display symbol
	Color tcell.Color // Display color
}

// NewActor creates an actor at the given position.
func NewActor(name string, x, y int, glyph rune, color tcell.Color) *Actor {
	return &Actor{
		Name:  name,
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// MoveBy steps the actor by the given delta if the destination is open.
// Only the destination tile is consulted.
func (a *Actor) MoveBy(dx, dy int, terrain Terrain) {
	if a.CanMoveBy(dx, dy, terrain) {
		a.X += dx
		a.Y += dy
	}
}

// CanMoveBy reports whether MoveBy with the same arguments would succeed.
func (a *Actor) CanMoveBy(dx, dy int, terrain Terrain) bool {
	return !terrain.IsBlocked(a.X+dx, a.Y+dy)
}

// Position returns the current x, y coordinates.
func (a *Actor) Position() (int, int) {
	return a.X, a.Y
}
