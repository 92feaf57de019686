package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Actor definition identifiers shipped in actors.json.
const (
	ActorPlayer = "player"
	ActorNPC    = "npc"
)

// ActorDef defines how an actor is drawn.
type ActorDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "player")
	Name  string `json:"name"`  // Display name
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "@")
	Color string `json:"color"` // Hex color code (e.g., "#FFFFFF")
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	for _, r := range a.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (a *ActorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(a.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Actors []ActorDef `json:"actors"`
}

// LoadActors loads actor definitions from the embedded actors.json file.
func LoadActors() ([]ActorDef, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return nil, err
	}
	return file.Actors, nil
}

// ActorByID returns the definition with the given ID.
func ActorByID(defs []ActorDef, id string) (*ActorDef, error) {
	for i := range defs {
		if defs[i].ID == id {
			return &defs[i], nil
		}
	}
	return nil, fmt.Errorf("actor %q not defined", id)
}
