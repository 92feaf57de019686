package gamedata

import "github.com/gdamore/tcell/v2"

// Palette holds the map colors as hex strings.
type Palette struct {
	DarkWall   string `json:"darkWall"`
	DarkGround string `json:"darkGround"`
	Status     string `json:"status"`
}

// Colors is a Palette resolved to tcell colors.
type Colors struct {
	DarkWall   tcell.Color
	DarkGround tcell.Color
	Status     tcell.Color
}

// LoadPalette loads and resolves the embedded palette.json.
func LoadPalette() (Colors, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return Colors{}, err
	}
	return p.Resolve()
}

// Resolve parses every hex color in the palette.
func (p Palette) Resolve() (Colors, error) {
	var c Colors
	var err error
	if c.DarkWall, err = ParseHexColor(p.DarkWall); err != nil {
		return Colors{}, err
	}
	if c.DarkGround, err = ParseHexColor(p.DarkGround); err != nil {
		return Colors{}, err
	}
	if c.Status, err = ParseHexColor(p.Status); err != nil {
		return Colors{}, err
	}
	return c, nil
}
