// dungeonrooms-server serves the dungeon over SSH. Every connection plays
// its own freshly generated map.
//
// Usage:
//
//	dungeonrooms-server [-addr :2222] [-key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"

	"github.com/samdwyer/dungeonrooms/internal/game"
	internalssh "github.com/samdwyer/dungeonrooms/internal/ssh"
	"github.com/samdwyer/dungeonrooms/internal/telemetry"
	"github.com/samdwyer/dungeonrooms/internal/ui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	flag.StringVar(&cfg.SSHAddr, "addr", cfg.SSHAddr, "SSH listen address")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "fixed seed for every session (0 picks one per session)")
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, `"random" or an authored layout name`)
	flag.IntVar(&cfg.Verbosity, "v", cfg.Verbosity, "log verbosity")
	keyFile := flag.String("key", "server_host_key", "PEM host key (generated if absent)")
	flag.Parse()

	// Fail here rather than once per connection
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// No terminal to protect here, so log to stderr
	logger := telemetry.NewLogger(os.Stderr, cfg.Verbosity)

	ctx := context.Background()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, logger)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
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

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		return err
	}

	srv := &gossh.Server{
		Addr: cfg.SSHAddr,
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("dungeonrooms SSH server listening on %s", cfg.SSHAddr)
	return srv.ListenAndServe()
}

// termMu serializes the TERM swap around terminfo lookup.
var termMu sync.Mutex

// handleSession runs one game for the lifetime of an SSH connection.
func handleSession(s gossh.Session, cfg game.Config, logger logr.Logger) {
	id := uuid.NewString()
	logger = logger.WithValues("session", id, "user", s.User())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "A terminal is required. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := pty.Term
	if term == "" {
		term = "xterm-256color"
	}
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = strings.TrimPrefix(env, "TERM=")
		}
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	ts, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	screen, err := ui.Attach(ts)
	if err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	cfg = cfg.WithSeed()
	logger.Info("session started", "seed", cfg.Seed, "term", term)

	g, err := game.New(screen, cfg, logger)
	if err != nil {
		screen.Close()
		logger.Error(err, "game init failed")
		return
	}
	if err := g.Run(s.Context()); err != nil {
		logger.Error(err, "game aborted", "seed", cfg.Seed)
		return
	}
	logger.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if none can be read.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer, nil
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "dungeonrooms server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Printf("Warning: host key not saved: %v", err)
		}
	}
	return signer, nil
}
