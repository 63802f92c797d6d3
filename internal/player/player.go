// ABOUTME: Scoped audio playback sessions for note selections
// ABOUTME: Renders a wavetable, streams it for a fixed duration, always tears down
package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/harperreed/chordgame/pkg/audio"
	"github.com/harperreed/chordgame/pkg/audio/output"
	"github.com/harperreed/chordgame/pkg/theory"
)

const (
	// DefaultPlayDuration is how long a selection is streamed
	DefaultPlayDuration = 3000 * time.Millisecond

	// DefaultSoloDuration is how long each note plays when soloing
	DefaultSoloDuration = 1000 * time.Millisecond
)

// Config holds player configuration
type Config struct {
	// Backend names the output backend (see output.Backends)
	Backend string

	// NewOutput overrides Backend when set; each session gets a fresh output
	NewOutput func() (output.Output, error)

	// Format is the stream format (default: mono 48kHz)
	Format audio.Format

	// BufferFrames is the wavetable length (default: 3 seconds of frames)
	BufferFrames int

	// Volume is the playback volume (0-100, default 100)
	Volume int

	// Muted silences playback without skipping the timing
	Muted bool
}

// Player plays selections one session at a time
type Player struct {
	config Config
	table  *audio.Wavetable
	mu     sync.Mutex
}

// New creates a player with the given configuration
func New(config Config) (*Player, error) {
	if config.Format.SampleRate == 0 {
		config.Format.SampleRate = audio.DefaultSampleRate
	}
	if config.Format.Channels == 0 {
		config.Format.Channels = audio.DefaultChannels
	}
	if config.Format.Channels != 1 {
		return nil, fmt.Errorf("unsupported channel count %d: only mono output is rendered", config.Format.Channels)
	}
	if config.BufferFrames <= 0 {
		config.BufferFrames = config.Format.FramesFor(DefaultPlayDuration)
	}
	if config.Volume == 0 && !config.Muted {
		config.Volume = 100
	}
	if config.NewOutput == nil {
		if config.Backend == "" {
			config.Backend = "oto"
		}
		if _, err := output.New(config.Backend); err != nil {
			return nil, err
		}
		backend := config.Backend
		config.NewOutput = func() (output.Output, error) {
			return output.New(backend)
		}
	}

	return &Player{
		config: config,
		table:  audio.NewWavetable(config.BufferFrames, config.Format.SampleRate),
	}, nil
}

// Play renders notes together and streams them for d, blocking until the time
// elapses or ctx is cancelled. The device is closed on every return path.
func (p *Player) Play(ctx context.Context, notes []theory.Note, d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.session(ctx, notes, d)
}

// Solo plays each note alone for d in order, calling onNote after each one finishes
func (p *Player) Solo(ctx context.Context, notes []theory.Note, d time.Duration, onNote func(i int, n theory.Note)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, n := range notes {
		if err := p.session(ctx, []theory.Note{n}, d); err != nil {
			return err
		}
		if onNote != nil {
			onNote(i, n)
		}
	}
	return nil
}

// session is one open/stream/close cycle (must hold p.mu)
func (p *Player) session(ctx context.Context, notes []theory.Note, d time.Duration) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	freqs := make([]float64, len(notes))
	for i, n := range notes {
		freqs[i] = n.Frequency
	}
	p.table.Render(freqs, audio.VolumeMultiplier(p.config.Volume, p.config.Muted))

	out, err := p.config.NewOutput()
	if err != nil {
		return fmt.Errorf("failed to create audio output: %w", err)
	}

	// The table is not touched by this goroutine again until Close returns
	if err := out.Open(p.config.Format, p.table); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to open audio output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			log.Printf("Error closing audio output: %v", cerr)
			err = errors.Join(err, fmt.Errorf("failed to close audio output: %w", cerr))
		}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Format returns the stream format in use
func (p *Player) Format() audio.Format {
	return p.config.Format
}
