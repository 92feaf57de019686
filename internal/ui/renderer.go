package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/dungeonrooms/internal/entity"
	"github.com/samdwyer/dungeonrooms/internal/gamedata"
	"github.com/samdwyer/dungeonrooms/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	colors gamedata.Colors
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, colors gamedata.Colors) *Renderer {
	return &Renderer{screen: screen, colors: colors}
}

// Render draws the grid, then the actors on top, then the status line
// below the map.
func (r *Renderer) Render(grid *world.Grid, actors []*entity.Actor, status string) {
	r.screen.Clear()

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r.screen.SetContent(x, y, ' ', r.tileStyle(grid.TileAt(x, y)))
		}
	}

	for _, a := range actors {
		if !grid.InBounds(a.X, a.Y) {
			continue
		}
		style := r.tileStyle(grid.TileAt(a.X, a.Y)).Foreground(a.Color)
		r.screen.SetContent(a.X, a.Y, a.Glyph, style)
	}

	r.RenderMessage(status, grid.Height+1)
	r.screen.Show()
}

// tileStyle picks the background for a tile from its opacity.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	if tile.BlockSight {
		return tcell.StyleDefault.Background(r.colors.DarkWall)
	}
	return tcell.StyleDefault.Background(r.colors.DarkGround)
}

// RenderMessage writes a single line of text at row y, clipped to the
// screen width. Wide runes take two columns.
func (r *Renderer) RenderMessage(msg string, y int) {
	width, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(r.colors.Status)

	x := 0
	for _, ch := range msg {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x += w
	}
}
