// Package main is the entry point for the local terminal game.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonrooms/internal/game"
	"github.com/samdwyer/dungeonrooms/internal/telemetry"
	"github.com/samdwyer/dungeonrooms/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	bindFlags(&cfg)
	flag.Parse()
	cfg = cfg.WithSeed()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to tcell from here on, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := telemetry.NewLogger(logFile, cfg.Verbosity)

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, logger)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	g, err := game.New(screen, cfg, logger)
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.Error(err, "game aborted", "seed", cfg.Seed)
		log.Fatalf("Game error: %v", err)
	}
	log.Printf("Seed was %d", cfg.Seed)
}

// bindFlags registers command-line overrides for values already loaded
// from the environment.
func bindFlags(cfg *game.Config) {
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in tiles")
	flag.IntVar(&cfg.RoomMinSize, "room-min", cfg.RoomMinSize, "minimum room size")
	flag.IntVar(&cfg.RoomMaxSize, "room-max", cfg.RoomMaxSize, "maximum room size")
	flag.IntVar(&cfg.MaxRooms, "max-rooms", cfg.MaxRooms, "room placement attempts")
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, `"random" or an authored layout name`)
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	flag.IntVar(&cfg.Verbosity, "v", cfg.Verbosity, "log verbosity")
	flag.BoolVar(&cfg.Telemetry, "telemetry", cfg.Telemetry, "export traces over OTLP")
}
