//go:build !portaudio

// ABOUTME: PortAudio stub when library not available
// ABOUTME: Provides compile-time placeholder when PortAudio not installed
package output

import (
	"errors"

	"github.com/harperreed/chordgame/pkg/audio"
)

var errPortAudioDisabled = errors.New("PortAudio support not enabled (build with -tags portaudio)")

// PortAudio output implementation (stub)
type PortAudio struct{}

// NewPortAudio creates a new PortAudio output
func NewPortAudio() Output {
	return &PortAudio{}
}

// Open always fails in builds without the portaudio tag
func (p *PortAudio) Open(format audio.Format, src Source) error {
	return errPortAudioDisabled
}

// Close releases resources
func (p *PortAudio) Close() error {
	return nil
}
