// Package game provides the main game loop and state management.
package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrooms/internal/entity"
	"github.com/samdwyer/dungeonrooms/internal/gamedata"
	"github.com/samdwyer/dungeonrooms/internal/telemetry"
	"github.com/samdwyer/dungeonrooms/internal/ui"
	"github.com/samdwyer/dungeonrooms/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	log      logr.Logger
	dungeon  *world.Dungeon
	player   *entity.Actor
	actors   []*entity.Actor
	running  bool
}

// New creates a game that draws on screen. cfg.Seed must already be
// resolved; see Config.WithSeed.
func New(screen *ui.Screen, cfg Config, logger logr.Logger) (*Game, error) {
	colors, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, colors),
		cfg:      cfg,
		log:      logger,
		running:  true,
	}, nil
}

// Run generates the dungeon and executes the main game loop until the
// player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	// Closing the screen unblocks PollEvent, which ends the loop
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			g.screen.Close()
		case <-done:
		}
	}()

	if err := g.init(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.dungeon.Grid, g.actors, g.status())
		g.handleInput(ctx)
	}
	return nil
}

// init generates the dungeon and places the actors.
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	rng := rand.New(rand.NewSource(g.cfg.Seed))
	strategy, err := g.cfg.Strategy(rng)
	if err != nil {
		return err
	}

	dungeon, err := world.Generate(ctx, g.cfg.WorldConfig(), strategy)
	if err != nil {
		return fmt.Errorf("generate dungeon: %w", err)
	}
	g.dungeon = dungeon

	defs, err := gamedata.LoadActors()
	if err != nil {
		return err
	}
	playerDef, err := gamedata.ActorByID(defs, gamedata.ActorPlayer)
	if err != nil {
		return err
	}
	npcDef, err := gamedata.ActorByID(defs, gamedata.ActorNPC)
	if err != nil {
		return err
	}

	g.player = entity.NewActor(playerDef.ID, dungeon.Spawn.X, dungeon.Spawn.Y,
		playerDef.GlyphRune(), playerDef.TCellColor())
	npc := entity.NewActor(npcDef.ID, g.cfg.Width/2-5, g.cfg.ScreenHeight()/2,
		npcDef.GlyphRune(), npcDef.TCellColor())
	g.actors = []*entity.Actor{g.player, npc}

	reachableSet := world.Reachable(dungeon.Grid, dungeon.Spawn)
	reachable := reachableSet.Size()
	unreachable := 0
	dungeon.Grid.Open().Each(func(p world.Point) {
		if !reachableSet.Has(p) {
			unreachable++
		}
	})
	span.SetAttributes(
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.String("game.layout", g.cfg.Layout),
		attribute.Int("dungeon.reachable_tiles", reachable),
	)
	g.log.Info("dungeon generated",
		"id", dungeon.ID,
		"seed", g.cfg.Seed,
		"layout", g.cfg.Layout,
		"rooms", len(dungeon.Rooms),
		"rejected", dungeon.Rejected,
		"spawn", fmt.Sprintf("%d,%d", dungeon.Spawn.X, dungeon.Spawn.Y),
		"open", dungeon.Grid.OpenCount(),
		"reachable", reachable,
		"unreachable", unreachable,
	)
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized underneath us
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(_ context.Context, dx, dy int) {
	allowed := g.player.CanMoveBy(dx, dy, g.dungeon.Grid)
	g.player.MoveBy(dx, dy, g.dungeon.Grid)
	x, y := g.player.Position()
	g.log.V(1).Info("move", "dx", dx, "dy", dy, "allowed", allowed, "x", x, "y", y)
}

// status returns the line shown under the map.
func (g *Game) status() string {
	x, y := g.player.Position()
	where := "tunnel"
	if i := g.dungeon.RoomAt(world.Point{X: x, Y: y}); i >= 0 {
		where = fmt.Sprintf("room %d/%d", i+1, len(g.dungeon.Rooms))
	}
	return fmt.Sprintf("seed %d  %s  @ %d,%d  arrows move  q quits", g.cfg.Seed, where, x, y)
}
