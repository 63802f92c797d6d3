//go:build portaudio

// ABOUTME: PortAudio output implementation
// ABOUTME: Cross-platform callback-driven audio output using PortAudio
package output

import (
	"fmt"
	"log"

	"github.com/gordonklaus/portaudio"
	"github.com/harperreed/chordgame/pkg/audio"
)

// PortAudio output implementation
type PortAudio struct {
	stream *portaudio.Stream
}

// NewPortAudio creates a new PortAudio output
func NewPortAudio() Output {
	return &PortAudio{}
}

// Open initializes PortAudio and starts a mono float32 stream on the default device
func (p *PortAudio) Open(format audio.Format, src Source) error {
	if p.stream != nil {
		return ErrAlreadyOpen
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, format.Channels, float64(format.SampleRate), format.FramesPerBuffer, func(out []float32) {
		src.Fill(out)
	})
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start stream: %w", err)
	}

	p.stream = stream
	log.Printf("Audio output initialized: %dHz, %d channels (portaudio)", format.SampleRate, format.Channels)
	return nil
}

// Close stops the stream and terminates PortAudio
func (p *PortAudio) Close() error {
	if p.stream == nil {
		return nil
	}

	stream := p.stream
	p.stream = nil

	if err := stream.Stop(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to stop stream: %w", err)
	}
	if err := stream.Close(); err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to close stream: %w", err)
	}
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("failed to terminate portaudio: %w", err)
	}
	log.Printf("Audio output closed (portaudio)")
	return nil
}
