// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for pull-based playback backends
package output

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/chordgame/pkg/audio"
)

var (
	// ErrAlreadyOpen is returned when Open is called on an output that is playing
	ErrAlreadyOpen = errors.New("output already open")

	// ErrUnknownBackend is returned by New for an unregistered backend name
	ErrUnknownBackend = errors.New("unknown audio backend")
)

// Source supplies mono float32 samples. Fill is called from the driver's
// callback goroutine and must not block or allocate.
type Source interface {
	Fill(out []float32)
}

// Output represents an audio output device
type Output interface {
	// Open initializes the device and starts pulling samples from src
	Open(format audio.Format, src Source) error

	// Close stops the stream and releases device resources. Safe to call when not open.
	Close() error
}

var backends = map[string]func() Output{
	"oto":       NewOto,
	"malgo":     NewMalgo,
	"portaudio": NewPortAudio,
	"null":      func() Output { return NewNull() },
}

// Backends lists the registered backend names
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named backend
func New(name string) (Output, error) {
	ctor, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return ctor(), nil
}

// fillBytes pulls len(dst)/4 samples from src through scratch and encodes them
// as little-endian float32. scratch bounds the chunk size so nothing allocates.
func fillBytes(dst []byte, src Source, scratch []float32) int {
	frames := len(dst) / audio.BytesPerSample
	done := 0
	for done < frames {
		chunk := scratch
		if frames-done < len(chunk) {
			chunk = chunk[:frames-done]
		}
		src.Fill(chunk)
		audio.PutFloat32LE(dst[done*audio.BytesPerSample:], chunk)
		done += len(chunk)
	}
	return frames * audio.BytesPerSample
}

// scratchSize picks the chunk size used by byte-oriented backends
func scratchSize(format audio.Format) int {
	if format.FramesPerBuffer > 0 {
		return format.FramesPerBuffer * max(format.Channels, 1)
	}
	return audio.DefaultFramesPerBuffer
}
