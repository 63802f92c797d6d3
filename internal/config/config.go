// ABOUTME: Command-line configuration for the chordgame binary
// ABOUTME: Parses and validates flags into a Config, reporting usage errors
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/chordgame/pkg/audio"
	"github.com/harperreed/chordgame/pkg/theory"
)

// ErrUsage marks missing or malformed arguments
var ErrUsage = errors.New("usage error")

// Usage is the one-line synopsis printed on usage errors
const Usage = "-scale <scale> (C,E) -notes <numNotes> -range <low-high> -turns <turnCount>"

// Config holds the parsed settings for one game run
type Config struct {
	Scales    []string
	Notes     int
	RangeLow  int
	RangeHigh int
	Turns     int

	Backend      string
	Volume       int
	PlayDuration time.Duration
	SoloDuration time.Duration
	Frames       int
	PoolCapacity int
	Seed         uint64

	TUI        bool
	LogFile    string
	StreamLogs bool
	NoColor    bool
	KeepStderr bool
}

// Format returns the audio format implied by the configuration
func (c Config) Format() audio.Format {
	f := audio.DefaultFormat()
	f.FramesPerBuffer = c.Frames
	return f
}

// Parse reads args (without the program name). Errors wrap ErrUsage, except
// flag.ErrHelp which is returned as is.
func Parse(program string, args []string, output io.Writer) (Config, error) {
	var cfg Config
	var scale, rng string
	var playMs, soloMs int
	var seed uint64

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s %s\n", program, Usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&scale, "scale", "", "Comma-separated major scale roots (e.g. C,G,Bb)")
	fs.IntVar(&cfg.Notes, "notes", 0, "Number of notes played together each turn")
	fs.StringVar(&rng, "range", "", "Inclusive octave range as low-high (e.g. 3-5)")
	fs.IntVar(&cfg.Turns, "turns", 0, "Number of turns")
	fs.StringVar(&cfg.Backend, "backend", "oto", "Audio backend: malgo, null, oto, portaudio")
	fs.IntVar(&cfg.Volume, "volume", 100, "Playback volume 0-100")
	fs.IntVar(&playMs, "play-ms", 3000, "Playback length of a selection in milliseconds")
	fs.IntVar(&soloMs, "solo-ms", 1000, "Playback length of each soloed note in milliseconds")
	fs.IntVar(&cfg.Frames, "frames", audio.DefaultFramesPerBuffer, "Frames per audio callback (0 lets the driver choose)")
	fs.IntVar(&cfg.PoolCapacity, "max-pool", theory.DefaultPoolCapacity, "Maximum number of generated scale notes")
	fs.Uint64Var(&seed, "seed", 0, "Random seed (0 seeds from the clock)")
	fs.BoolVar(&cfg.TUI, "tui", false, "Use the full-screen terminal UI")
	fs.StringVar(&cfg.LogFile, "log-file", "chordgame.log", "Log file path")
	fs.BoolVar(&cfg.StreamLogs, "stream-logs", false, "Also write logs to stdout")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colours and screen clearing")
	fs.BoolVar(&cfg.KeepStderr, "keep-stderr", false, "Do not redirect stderr to /dev/null")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}

	required := map[string]bool{"scale": false, "notes": false, "range": false, "turns": false}
	fs.Visit(func(f *flag.Flag) {
		if _, ok := required[f.Name]; ok {
			required[f.Name] = true
		}
	})
	for _, name := range []string{"scale", "notes", "range", "turns"} {
		if !required[name] {
			return cfg, fmt.Errorf("%w: missing -%s", ErrUsage, name)
		}
	}

	cfg.Scales = SplitScales(scale)
	if len(cfg.Scales) == 0 {
		return cfg, fmt.Errorf("%w: -scale needs at least one root", ErrUsage)
	}

	low, high, err := ParseRange(rng)
	if err != nil {
		return cfg, err
	}
	cfg.RangeLow, cfg.RangeHigh = low, high

	if cfg.Notes < 1 {
		return cfg, fmt.Errorf("%w: -notes must be at least 1, got %d", ErrUsage, cfg.Notes)
	}
	if cfg.Turns < 1 {
		return cfg, fmt.Errorf("%w: -turns must be at least 1, got %d", ErrUsage, cfg.Turns)
	}
	if cfg.Volume < 0 || cfg.Volume > 100 {
		return cfg, fmt.Errorf("%w: -volume must be 0-100, got %d", ErrUsage, cfg.Volume)
	}
	if playMs <= 0 || soloMs <= 0 {
		return cfg, fmt.Errorf("%w: -play-ms and -solo-ms must be positive", ErrUsage)
	}
	if cfg.Frames < 0 {
		return cfg, fmt.Errorf("%w: -frames must not be negative", ErrUsage)
	}
	if cfg.PoolCapacity < 1 {
		return cfg, fmt.Errorf("%w: -max-pool must be at least 1", ErrUsage)
	}

	cfg.PlayDuration = time.Duration(playMs) * time.Millisecond
	cfg.SoloDuration = time.Duration(soloMs) * time.Millisecond
	cfg.Seed = seed

	return cfg, nil
}

// SplitScales splits a comma-separated root list, dropping empty entries
func SplitScales(s string) []string {
	var roots []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			roots = append(roots, part)
		}
	}
	return roots
}

// ParseRange parses "low-high" octave bounds. Either bound may be negative
// ("-1-2", "-2--1").
func ParseRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	// Skip a leading sign so the separator search finds the middle hyphen
	sep := strings.Index(s[min(1, len(s)):], "-")
	if sep < 0 {
		return 0, 0, fmt.Errorf("%w: invalid range format %q, use <low-high>", ErrUsage, s)
	}
	sep += min(1, len(s))

	low, err := strconv.Atoi(s[:sep])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range low bound %q", ErrUsage, s[:sep])
	}
	high, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range high bound %q", ErrUsage, s[sep+1:])
	}
	return low, high, nil
}
