// ABOUTME: Audio format definitions and sample helpers
// ABOUTME: Mono float32 stream format plus little-endian encoding and volume scaling
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	// DefaultSampleRate is the output rate in Hz
	DefaultSampleRate = 48000

	// DefaultChannels is mono; every note is summed into one channel
	DefaultChannels = 1

	// DefaultBufferFrames is the wavetable length, 3 seconds at DefaultSampleRate
	DefaultBufferFrames = 144000

	// DefaultFramesPerBuffer is the frames-per-callback hint given to drivers
	DefaultFramesPerBuffer = 4096

	// BytesPerSample is the size of one float32 sample
	BytesPerSample = 4
)

// Format describes the playback stream format
type Format struct {
	SampleRate      int
	Channels        int
	FramesPerBuffer int // 0 lets the driver choose
}

// DefaultFormat returns the mono 48kHz format the game plays with
func DefaultFormat() Format {
	return Format{
		SampleRate:      DefaultSampleRate,
		Channels:        DefaultChannels,
		FramesPerBuffer: DefaultFramesPerBuffer,
	}
}

// FramesFor returns how many frames cover d at this format's rate
func (f Format) FramesFor(d time.Duration) int {
	return int(d.Seconds() * float64(f.SampleRate))
}

// PutFloat32LE encodes samples into dst as little-endian IEEE-754 floats.
// dst must hold len(samples)*BytesPerSample bytes.
func PutFloat32LE(dst []byte, samples []float32) {
	for i, s := range samples {
		binary.LittleEndian.PutUint32(dst[i*BytesPerSample:], math.Float32bits(s))
	}
}

// Float32FromLE decodes little-endian float samples produced by PutFloat32LE
func Float32FromLE(src []byte) []float32 {
	out := make([]float32, len(src)/BytesPerSample)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*BytesPerSample:]))
	}
	return out
}

// VolumeMultiplier maps a 0-100 volume and mute flag to a linear gain
func VolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	return float64(volume) / 100.0
}
