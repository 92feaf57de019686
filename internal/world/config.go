package world

import (
	"errors"
	"fmt"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Room placement parameters
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
	DefaultMaxRooms    = 30
)

var (
	// ErrInvalidConfig is returned when generation parameters are inconsistent.
	ErrInvalidConfig = errors.New("invalid dungeon config")
	// ErrRoomOutOfBounds is returned when a strategy proposes a room that
	// does not fit inside the grid.
	ErrRoomOutOfBounds = errors.New("room out of bounds")
	// ErrNoRooms is returned when no room could be placed, leaving no spawn point.
	ErrNoRooms = errors.New("no rooms placed")
)

// Config holds the parameters for one dungeon generation.
type Config struct {
	Width       int // Grid width in tiles
	Height      int // Grid height in tiles
	RoomMinSize int // Minimum room bounding-box dimension
	RoomMaxSize int // Maximum room bounding-box dimension
	MaxRooms    int // Number of placement attempts
}

// DefaultConfig returns the reference 80x45 configuration.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
		MaxRooms:    DefaultMaxRooms,
	}
}

// Validate checks that every room the config can produce fits in the grid
// with an open center.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.RoomMinSize < 2:
		return fmt.Errorf("%w: room min size %d is below 2", ErrInvalidConfig, c.RoomMinSize)
	case c.RoomMinSize > c.RoomMaxSize:
		return fmt.Errorf("%w: room min size %d exceeds max size %d", ErrInvalidConfig, c.RoomMinSize, c.RoomMaxSize)
	case c.RoomMaxSize >= c.Width || c.RoomMaxSize >= c.Height:
		return fmt.Errorf("%w: room max size %d does not fit %dx%d grid", ErrInvalidConfig, c.RoomMaxSize, c.Width, c.Height)
	case c.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidConfig, c.MaxRooms)
	}
	return nil
}
