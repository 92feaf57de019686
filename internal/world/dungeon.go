package world

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonrooms/internal/telemetry"
)

// Dungeon is the result of one generation run.
type Dungeon struct {
	ID       string // Unique generation identifier, for logs and traces
	Grid     *Grid  // Finished occupancy grid
	Spawn    Point  // Center of the first placed room
	Rooms    []Rect // Placed rooms in placement order
	Rejected int    // Candidates discarded for overlapping
}

// Generate carves a dungeon using the given placement strategy.
//
// Each proposed room is either accepted and carved, or rejected for
// overlapping an earlier room; rejected attempts are not retried. Every
// accepted room after the first is joined to its predecessor by an L-shaped
// tunnel between the two centers.
func Generate(ctx context.Context, cfg Config, strategy Strategy) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	id := uuid.NewString()

	grid := NewBlocked(cfg.Width, cfg.Height)
	attempts := strategy.Attempts(cfg)
	rooms := make([]Rect, 0, attempts)
	rejected := 0
	var spawn Point

	for i := 0; i < attempts; i++ {
		room := strategy.NextRoom(cfg, i)
		if !fitsGrid(room, grid) {
			err := fmt.Errorf("%w: attempt %d proposed %dx%d room at (%d,%d) for %dx%d grid",
				ErrRoomOutOfBounds, i, room.Width(), room.Height(), room.X1, room.Y1, grid.Width, grid.Height)
			span.RecordError(err)
			span.SetStatus(codes.Error, "room out of bounds")
			return nil, err
		}

		if intersectsAny(room, rooms) {
			rejected++
			continue
		}

		carveRoom(grid, room)

		center := room.Center()
		if len(rooms) == 0 {
			// First room holds the spawn point and has nothing to connect to
			spawn = center
		} else {
			prev := rooms[len(rooms)-1].Center()
			CarveTunnel(grid, prev, center, strategy.TunnelOrder(prev, center))
		}

		rooms = append(rooms, room)
	}

	span.SetAttributes(
		attribute.String("dungeon.id", id),
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
		attribute.Int("dungeon.attempts", attempts),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.rejected", rejected),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	if len(rooms) == 0 {
		span.SetStatus(codes.Error, "no rooms placed")
		return nil, ErrNoRooms
	}

	span.SetAttributes(
		attribute.Int("dungeon.spawn_x", spawn.X),
		attribute.Int("dungeon.spawn_y", spawn.Y),
	)

	return &Dungeon{
		ID:       id,
		Grid:     grid,
		Spawn:    spawn,
		Rooms:    rooms,
		Rejected: rejected,
	}, nil
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(ctx context.Context, cfg Config, strategy Strategy) *Dungeon {
	d, err := Generate(ctx, cfg, strategy)
	if err != nil {
		panic(err)
	}
	return d
}

// RoomAt returns the index of the room whose interior contains p, or -1
// if p is not inside any room.
func (d *Dungeon) RoomAt(p Point) int {
	for i, room := range d.Rooms {
		if room.ContainsInterior(p) {
			return i
		}
	}
	return -1
}

// carveRoom opens every tile strictly inside the room, leaving its border as wall.
func carveRoom(g *Grid, room Rect) {
	room.Interior(g.Carve)
}

func fitsGrid(r Rect, g *Grid) bool {
	return r.X1 >= 0 && r.Y1 >= 0 && r.X1 < r.X2 && r.Y1 < r.Y2 &&
		g.InBounds(r.X2, r.Y2)
}

func intersectsAny(r Rect, rooms []Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}
