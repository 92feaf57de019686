package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/dungeonrooms/internal/gamedata"
	"github.com/samdwyer/dungeonrooms/internal/world"
)

const (
	// LayoutRandom selects rejection-sampled room placement.
	LayoutRandom = "random"

	// StatusRows is the height of the area drawn under the map.
	StatusRows = 5
)

// Environment variables read by LoadConfig.
const (
	envSeed      = "DUNGEONROOMS_SEED"
	envWidth     = "DUNGEONROOMS_WIDTH"
	envHeight    = "DUNGEONROOMS_HEIGHT"
	envRoomMin   = "DUNGEONROOMS_ROOM_MIN"
	envRoomMax   = "DUNGEONROOMS_ROOM_MAX"
	envMaxRooms  = "DUNGEONROOMS_MAX_ROOMS"
	envLayout    = "DUNGEONROOMS_LAYOUT"
	envLog       = "DUNGEONROOMS_LOG"
	envVerbosity = "DUNGEONROOMS_VERBOSITY"
	envSSHAddr   = "DUNGEONROOMS_SSH_ADDR"
	envTelemetry = "DUNGEONROOMS_TELEMETRY"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width       int
	Height      int
	RoomMinSize int
	RoomMaxSize int
	MaxRooms    int

	// Layout is LayoutRandom or the name of an authored layout in layouts.json.
	Layout string

	LogFile   string // Log destination while the terminal UI is active
	Verbosity int    // logr verbosity; 1 logs every move
	SSHAddr   string // Listen address for the SSH server
	Telemetry bool   // Export traces over OTLP
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		RoomMinSize: world.DefaultRoomMinSize,
		RoomMaxSize: world.DefaultRoomMaxSize,
		MaxRooms:    world.DefaultMaxRooms,
		Layout:      LayoutRandom,
		LogFile:     "dungeonrooms.log",
		SSHAddr:     ":2222",
	}
}

// LoadConfig returns DefaultConfig overridden by DUNGEONROOMS_* environment
// variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		env string
		dst *int
	}{
		{envWidth, &cfg.Width},
		{envHeight, &cfg.Height},
		{envRoomMin, &cfg.RoomMinSize},
		{envRoomMax, &cfg.RoomMaxSize},
		{envMaxRooms, &cfg.MaxRooms},
		{envVerbosity, &cfg.Verbosity},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.env)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", v.env, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv(envSeed); raw != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}

	if raw := os.Getenv(envTelemetry); raw != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envTelemetry, err)
		}
		cfg.Telemetry = on
	}

	if v := os.Getenv(envLayout); v != "" {
		cfg.Layout = v
	}
	if v := os.Getenv(envLog); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(envSSHAddr); v != "" {
		cfg.SSHAddr = v
	}

	return cfg, nil
}

// WorldConfig returns the generation parameters.
func (c Config) WorldConfig() world.Config {
	return world.Config{
		Width:       c.Width,
		Height:      c.Height,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
		MaxRooms:    c.MaxRooms,
	}
}

// WithSeed returns a copy of c with a non-zero seed, deriving one from the
// clock when c.Seed is 0.
func (c Config) WithSeed() Config {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Validate checks the generation parameters and that Layout names a
// known layout.
func (c Config) Validate() error {
	if err := c.WorldConfig().Validate(); err != nil {
		return err
	}
	if _, err := c.Strategy(nil); err != nil {
		return err
	}
	return nil
}

// ScreenHeight returns the terminal rows needed for the map plus the
// status area below it.
func (c Config) ScreenHeight() int {
	return c.Height + StatusRows
}

// Strategy returns the placement strategy selected by Layout.
func (c Config) Strategy(rng *rand.Rand) (world.Strategy, error) {
	if c.Layout == "" || c.Layout == LayoutRandom {
		return world.NewRandomRooms(rng), nil
	}
	layout, err := gamedata.LayoutByName(c.Layout)
	if err != nil {
		return nil, err
	}
	return layout.Strategy()
}
