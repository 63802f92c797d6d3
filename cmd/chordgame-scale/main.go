// ABOUTME: Prints the curated note pool for a set of scales and octaves
// ABOUTME: Shows exactly which notes chordgame can select from
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/harperreed/chordgame/internal/config"
	"github.com/harperreed/chordgame/internal/game"
	"github.com/harperreed/chordgame/pkg/theory"
)

var (
	scale   = flag.String("scale", "", "Comma-separated major scale roots (e.g. C,G,Bb)")
	octaves = flag.String("range", "", "Inclusive octave range as low-high (e.g. 3-5)")
	maxPool = flag.Int("max-pool", theory.DefaultPoolCapacity, "Maximum number of generated scale notes")
	verbose = flag.Bool("verbose", false, "Log skipped roots and generation details to stderr")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	roots := config.SplitScales(*scale)
	if len(roots) == 0 || *octaves == "" {
		fmt.Printf("Usage: %s -scale <scale> (C,E) -range <low-high>\n", os.Args[0])
		os.Exit(1)
	}

	low, high, err := config.ParseRange(*octaves)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	allowed, skipped := theory.AllowedPitchClasses(roots)
	for _, root := range skipped {
		fmt.Printf("Warning: Could not find pitch class for scale root '%s'\n", root)
	}

	pool, _ := theory.BuildPool(roots, low, high, *maxPool)

	fmt.Printf("Allowed pitch classes: %s\n", allowed)
	fmt.Printf("Pool: %d notes, %d distinct pitch classes\n", len(pool), theory.DistinctPitchClasses(pool))
	game.NewConsole(os.Stdout, false).NoteTable(pool)
}
