package gamedata

import (
	"fmt"

	"github.com/samdwyer/dungeonrooms/internal/world"
)

// RoomDef is an authored room given by origin and size.
type RoomDef struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// LayoutDef is a hand-authored dungeon loaded from JSON.
type LayoutDef struct {
	Name  string    `json:"name"`
	Order string    `json:"order"` // "horizontal" or "vertical"
	Rooms []RoomDef `json:"rooms"`
}

// Strategy converts the layout into a fixed placement strategy.
func (l *LayoutDef) Strategy() (*world.FixedRooms, error) {
	var order world.TunnelOrder
	switch l.Order {
	case "", "horizontal":
		order = world.HorizontalFirst
	case "vertical":
		order = world.VerticalFirst
	default:
		return nil, fmt.Errorf("layout %q: unknown tunnel order %q", l.Name, l.Order)
	}

	rooms := make([]world.Rect, len(l.Rooms))
	for i, r := range l.Rooms {
		rooms[i] = world.NewRect(r.X, r.Y, r.W, r.H)
	}
	return &world.FixedRooms{Rooms: rooms, Order: order}, nil
}

// LayoutsFile represents the structure of layouts.json.
type LayoutsFile struct {
	Layouts []LayoutDef `json:"layouts"`
}

// LoadLayouts loads authored layouts from the embedded layouts.json file.
func LoadLayouts() ([]LayoutDef, error) {
	file, err := Load[LayoutsFile]("layouts.json")
	if err != nil {
		return nil, err
	}
	return file.Layouts, nil
}

// LayoutByName returns the authored layout with the given name.
func LayoutByName(name string) (*LayoutDef, error) {
	layouts, err := LoadLayouts()
	if err != nil {
		return nil, err
	}
	for i := range layouts {
		if layouts[i].Name == name {
			return &layouts[i], nil
		}
	}
	return nil, fmt.Errorf("layout %q not found", name)
}
