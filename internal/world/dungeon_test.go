package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

// scriptedRand returns pre-recorded samples in order.
type scriptedRand struct {
	t      *testing.T
	values []int
}

func (r *scriptedRand) Intn(n int) int {
	r.t.Helper()
	if len(r.values) == 0 {
		r.t.Fatalf("scriptedRand exhausted (Intn(%d))", n)
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scripted value %d outside [0,%d)", v, n)
	}
	return v
}

func generateSeeded(t *testing.T, seed int64, cfg Config) *Dungeon {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := Generate(context.Background(), cfg, NewRandomRooms(rng))
	if err != nil {
		t.Fatalf("Generate(seed=%d) failed: %v", seed, err)
	}
	return d
}

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	seed := int64(12345)
	cfg := DefaultConfig()

	d1 := generateSeeded(t, seed, cfg)
	d2 := generateSeeded(t, seed, cfg)

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}
	for i := range d1.Rooms {
		if d1.Rooms[i] != d2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, d1.Rooms[i], d2.Rooms[i])
		}
	}
	if d1.Spawn != d2.Spawn {
		t.Errorf("Spawn mismatch: %v != %v", d1.Spawn, d2.Spawn)
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if d1.Grid.TileAt(x, y) != d2.Grid.TileAt(x, y) {
				t.Fatalf("Tile mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	d1 := generateSeeded(t, 12345, DefaultConfig())
	d2 := generateSeeded(t, 54321, DefaultConfig())

	// Very unlikely to be identical by chance
	if d1.Grid.String() == d2.Grid.String() {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestDungeonInvariants(t *testing.T) {
	configs := map[string]Config{
		"default": DefaultConfig(),
		"small":   {Width: 30, Height: 20, RoomMinSize: 3, RoomMaxSize: 6, MaxRooms: 15},
		"crowded": {Width: 40, Height: 40, RoomMinSize: 8, RoomMaxSize: 12, MaxRooms: 100},
	}

	for name, cfg := range configs {
		for seed := int64(1); seed <= 20; seed++ {
			d := generateSeeded(t, seed, cfg)

			// Tiles are never half carved
			for y := 0; y < cfg.Height; y++ {
				for x := 0; x < cfg.Width; x++ {
					tile := d.Grid.TileAt(x, y)
					if tile.Blocked != tile.BlockSight {
						t.Fatalf("%s seed %d: mixed tile at (%d,%d): %+v", name, seed, x, y, tile)
					}
				}
			}

			// Placed rooms never overlap or touch
			for i := range d.Rooms {
				for j := i + 1; j < len(d.Rooms); j++ {
					if d.Rooms[i].Intersects(d.Rooms[j]) {
						t.Errorf("%s seed %d: rooms %d and %d intersect", name, seed, i, j)
					}
				}
			}

			// Spawn is the first room's center and is open
			if d.Spawn != d.Rooms[0].Center() {
				t.Errorf("%s seed %d: spawn %v != first center %v", name, seed, d.Spawn, d.Rooms[0].Center())
			}
			if d.Grid.TileAt(d.Spawn.X, d.Spawn.Y).Blocked {
				t.Errorf("%s seed %d: spawn tile is blocked", name, seed)
			}

			// Every carved tile connects back to the spawn
			if got, want := Reachable(d.Grid, d.Spawn).Size(), d.Grid.OpenCount(); got != want {
				t.Errorf("%s seed %d: %d of %d open tiles reachable from spawn", name, seed, got, want)
			}

			if len(d.Rooms)+d.Rejected != cfg.MaxRooms {
				t.Errorf("%s seed %d: %d placed + %d rejected != %d attempts",
					name, seed, len(d.Rooms), d.Rejected, cfg.MaxRooms)
			}
		}
	}
}

func TestRoomBordersStayWalls(t *testing.T) {
	d := generateSeeded(t, 7, DefaultConfig())

	for x := 0; x < d.Grid.Width; x++ {
		if !d.Grid.IsBlocked(x, 0) || !d.Grid.IsBlocked(x, d.Grid.Height-1) {
			t.Fatalf("outer row carved at x=%d", x)
		}
	}
	for y := 0; y < d.Grid.Height; y++ {
		if !d.Grid.IsBlocked(0, y) || !d.Grid.IsBlocked(d.Grid.Width-1, y) {
			t.Fatalf("outer column carved at y=%d", y)
		}
	}

	for _, room := range d.Rooms {
		room.Interior(func(x, y int) {
			if d.Grid.IsBlocked(x, y) {
				t.Errorf("room interior (%d,%d) not carved", x, y)
			}
		})
	}
}

func TestMaxSizeRoomAtRightmostOrigin(t *testing.T) {
	cfg := Config{Width: 80, Height: 45, RoomMinSize: 10, RoomMaxSize: 10, MaxRooms: 1}
	x := cfg.Width - cfg.RoomMaxSize - 1
	y := cfg.Height - cfg.RoomMaxSize - 1

	// w, h, x, y
	rng := &scriptedRand{t: t, values: []int{0, 0, x, y}}
	d, err := Generate(context.Background(), cfg, NewRandomRooms(rng))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(d.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(d.Rooms))
	}
	room := d.Rooms[0]
	if room != NewRect(69, 34, 10, 10) {
		t.Errorf("room = %+v, want origin (69,34) size 10", room)
	}
	if !d.Grid.InBounds(room.X2, room.Y2) {
		t.Errorf("room corner (%d,%d) outside grid", room.X2, room.Y2)
	}
	if d.Spawn != (Point{74, 39}) {
		t.Errorf("spawn = %v, want (74,39)", d.Spawn)
	}
	if d.Grid.OpenCount() != 81 {
		t.Errorf("open tiles = %d, want 81", d.Grid.OpenCount())
	}
}

func TestRejectedRoomsAreNotRetried(t *testing.T) {
	cfg := Config{Width: 30, Height: 30, RoomMinSize: 5, RoomMaxSize: 5, MaxRooms: 3}

	// Room 1 at (2,2); room 2 at (4,4) overlaps and is dropped;
	// room 3 at (20,20) is placed and tunnelled horizontal-first.
	rng := &scriptedRand{t: t, values: []int{
		0, 0, 2, 2,
		0, 0, 4, 4,
		0, 0, 20, 20, 0,
	}}
	d, err := Generate(context.Background(), cfg, NewRandomRooms(rng))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(d.Rooms) != 2 || d.Rejected != 1 {
		t.Fatalf("placed %d rejected %d, want 2 and 1", len(d.Rooms), d.Rejected)
	}
	if len(rng.values) != 0 {
		t.Errorf("%d samples left unused", len(rng.values))
	}

	// Horizontal leg along the first center's row reaches the second center's column
	if d.Grid.IsBlocked(22, 4) {
		t.Error("expected tunnel corner at (22,4)")
	}
	if !d.Grid.IsBlocked(4, 22) {
		t.Error("vertical-first corner (4,22) should not be carved")
	}
}

func TestFixedRooms(t *testing.T) {
	layout := &FixedRooms{
		Rooms: []Rect{NewRect(20, 15, 10, 15), NewRect(50, 15, 10, 15)},
		Order: HorizontalFirst,
	}

	d := MustGenerate(context.Background(), DefaultConfig(), layout)

	if d.Spawn != (Point{25, 22}) {
		t.Errorf("spawn = %v, want (25,22)", d.Spawn)
	}
	for x := 25; x <= 55; x++ {
		if d.Grid.IsBlocked(x, 22) {
			t.Errorf("corridor tile (%d,22) is blocked", x)
		}
	}
	if got, want := Reachable(d.Grid, d.Spawn).Size(), d.Grid.OpenCount(); got != want {
		t.Errorf("%d of %d open tiles reachable", got, want)
	}
}

func TestRoomAt(t *testing.T) {
	layout := &FixedRooms{
		Rooms: []Rect{NewRect(20, 15, 10, 15), NewRect(50, 15, 10, 15)},
	}
	d := MustGenerate(context.Background(), DefaultConfig(), layout)

	tests := []struct {
		p    Point
		want int
	}{
		{Point{25, 22}, 0},
		{Point{55, 22}, 1},
		{Point{40, 22}, -1}, // corridor
		{Point{20, 15}, -1}, // room corner is wall
	}
	for _, tt := range tests {
		if got := d.RoomAt(tt.p); got != tt.want {
			t.Errorf("RoomAt(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestFixedRoomsOverlapRejected(t *testing.T) {
	layout := &FixedRooms{
		Rooms: []Rect{NewRect(5, 5, 6, 6), NewRect(11, 5, 6, 6)},
	}

	d := MustGenerate(context.Background(), DefaultConfig(), layout)
	if len(d.Rooms) != 1 || d.Rejected != 1 {
		t.Errorf("placed %d rejected %d, want touching room rejected", len(d.Rooms), d.Rejected)
	}
}

func TestGenerateErrors(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))

	invalid := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Width: 0, Height: 45, RoomMinSize: 6, RoomMaxSize: 10, MaxRooms: 30}},
		{"min above max", Config{Width: 80, Height: 45, RoomMinSize: 11, RoomMaxSize: 10, MaxRooms: 30}},
		{"min too small", Config{Width: 80, Height: 45, RoomMinSize: 1, RoomMaxSize: 10, MaxRooms: 30}},
		{"max wider than grid", Config{Width: 10, Height: 45, RoomMinSize: 6, RoomMaxSize: 10, MaxRooms: 30}},
		{"max taller than grid", Config{Width: 80, Height: 8, RoomMinSize: 6, RoomMaxSize: 10, MaxRooms: 30}},
		{"no attempts", Config{Width: 80, Height: 45, RoomMinSize: 6, RoomMaxSize: 10, MaxRooms: 0}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(ctx, tt.cfg, NewRandomRooms(rng))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := Generate(ctx, DefaultConfig(), &FixedRooms{}); !errors.Is(err, ErrNoRooms) {
		t.Errorf("empty layout: expected ErrNoRooms, got %v", err)
	}

	outside := &FixedRooms{Rooms: []Rect{NewRect(75, 5, 10, 10)}}
	if _, err := Generate(ctx, DefaultConfig(), outside); !errors.Is(err, ErrRoomOutOfBounds) {
		t.Errorf("oversized layout: expected ErrRoomOutOfBounds, got %v", err)
	}

	expectPanic(t, "MustGenerate", func() {
		MustGenerate(ctx, DefaultConfig(), &FixedRooms{})
	})
}
