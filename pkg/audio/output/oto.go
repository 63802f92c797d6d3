// ABOUTME: Oto-based audio output implementation
// ABOUTME: Streams the source as float32 PCM through a persistent oto context
package output

import (
	"fmt"
	"log"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/harperreed/chordgame/pkg/audio"
)

// oto only allows one context per process, so it is shared by every Oto output
var (
	otoOnce    sync.Once
	otoCtx     *oto.Context
	otoFormat  audio.Format
	otoInitErr error
)

func sharedOtoContext(format audio.Format) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatFloat32LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			otoInitErr = fmt.Errorf("failed to create oto context: %w", err)
			return
		}
		<-readyChan

		otoCtx = ctx
		otoFormat = format
		log.Printf("Audio output initialized: %dHz, %d channels (oto)", format.SampleRate, format.Channels)
	})

	if otoInitErr != nil {
		return nil, otoInitErr
	}

	// Format changes cannot reinitialize oto; keep the first context
	if otoFormat.SampleRate != format.SampleRate || otoFormat.Channels != format.Channels {
		log.Printf("Warning: format change detected (%dHz %dch -> %dHz %dch) but oto doesn't support reinitialization. Continuing with existing context.",
			otoFormat.SampleRate, otoFormat.Channels, format.SampleRate, format.Channels)
	}

	return otoCtx, nil
}

// sourceReader adapts a Source to the io.Reader oto pulls from
type sourceReader struct {
	src     Source
	scratch []float32
}

func (r *sourceReader) Read(p []byte) (int, error) {
	return fillBytes(p, r.src, r.scratch), nil
}

// Oto output implementation using oto library
type Oto struct {
	player *oto.Player
}

// NewOto creates a new Oto output
func NewOto() Output {
	return &Oto{}
}

// Open initializes the output device and starts playback
func (o *Oto) Open(format audio.Format, src Source) error {
	if o.player != nil {
		return ErrAlreadyOpen
	}

	ctx, err := sharedOtoContext(format)
	if err != nil {
		return err
	}
	reader := &sourceReader{
		src:     src,
		scratch: make([]float32, scratchSize(format)),
	}

	o.player = ctx.NewPlayer(reader)
	if format.FramesPerBuffer > 0 {
		o.player.SetBufferSize(format.FramesPerBuffer * max(format.Channels, 1) * audio.BytesPerSample)
	}
	o.player.Play()

	return nil
}

// Close releases output resources
func (o *Oto) Close() error {
	if o.player == nil {
		return nil
	}

	o.player.Pause()
	err := o.player.Close()
	o.player = nil
	if err != nil {
		return fmt.Errorf("failed to close oto player: %w", err)
	}
	log.Printf("Audio output closed (oto)")
	return nil
}
