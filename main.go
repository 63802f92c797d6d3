// ABOUTME: Entry point for the chordgame ear-training game
// ABOUTME: Parses CLI flags, builds the note pool and runs the turn loop
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/chordgame/internal/config"
	"github.com/harperreed/chordgame/internal/game"
	"github.com/harperreed/chordgame/internal/player"
	"github.com/harperreed/chordgame/internal/stderr"
	"github.com/harperreed/chordgame/internal/ui"
	"github.com/harperreed/chordgame/internal/version"
	"github.com/harperreed/chordgame/pkg/theory"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Printf("Usage: %s %s\n", os.Args[0], config.Usage)
		return 1
	}

	// Audio drivers print probing noise on stderr
	if !cfg.KeepStderr {
		restore, err := stderr.Silence()
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
		}
		defer restore()
	}

	// Set up logging
	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		return 1
	}
	defer func() { _ = f.Close() }()

	if cfg.StreamLogs && !cfg.TUI {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		log.SetOutput(f)
	}
	log.Printf("Starting %s", version.String())

	fancy := !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	console := game.NewConsole(os.Stdout, fancy)

	pool, skipped := theory.BuildPool(cfg.Scales, cfg.RangeLow, cfg.RangeHigh, cfg.PoolCapacity)
	for _, root := range skipped {
		console.Warn(fmt.Sprintf("Warning: Could not find pitch class for scale root '%s'", root))
	}
	log.Printf("Pool: %d notes from scales %v over octaves %d-%d", len(pool), cfg.Scales, cfg.RangeLow, cfg.RangeHigh)

	audioPlayer, err := player.New(player.Config{
		Backend: cfg.Backend,
		Format:  cfg.Format(),
		Volume:  cfg.Volume,
		Muted:   cfg.Volume == 0,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		log.Printf("Failed to create player: %v", err)
		return 1
	}

	session, err := game.NewSession(game.Options{
		Notes:        cfg.Notes,
		Turns:        cfg.Turns,
		PlayDuration: cfg.PlayDuration,
		SoloDuration: cfg.SoloDuration,
		ResultPause:  game.DefaultResultPause,
		SummaryPause: game.DefaultSummaryPause,
	}, pool, theory.NewPicker(cfg.Seed), audioPlayer)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		log.Printf("Failed to start session: %v", err)
		return 1
	}
	if session.Notes() < cfg.Notes {
		console.Warn(fmt.Sprintf("Warning: only %d distinct notes available, playing %d per turn", session.Notes(), session.Notes()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TUI {
		err = ui.Run(ctx, session, audioPlayer)
	} else {
		err = session.Run(ctx, os.Stdin, console)
	}

	switch {
	case err == nil:
		log.Printf("Session %s finished: %d/%d correct", session.ID, session.Score().Correct, session.Score().Played)
		return 0
	case errors.Is(err, game.ErrQuit), errors.Is(err, context.Canceled):
		log.Printf("Session %s stopped early: %d/%d correct", session.ID, session.Score().Correct, session.Score().Played)
		return 0
	default:
		fmt.Printf("Error: %v\n", err)
		log.Printf("Session %s failed: %v", session.ID, err)
		return 1
	}
}
