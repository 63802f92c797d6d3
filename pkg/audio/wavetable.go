// ABOUTME: Additive wavetable synthesis and the looping stream callback
// ABOUTME: Renders summed sines into a fixed buffer read circularly by the driver
package audio

import (
	"math"
)

// Wavetable is a fixed-length sample buffer that plays in a loop.
//
// The owner renders it before the stream starts; afterwards only the driver's
// callback goroutine calls Fill, which is the sole writer of the cursor.
type Wavetable struct {
	samples    []float32
	cursor     int
	sampleRate int
}

// NewWavetable allocates a silent wavetable of length frames
func NewWavetable(length, sampleRate int) *Wavetable {
	if length < 0 {
		length = 0
	}
	return &Wavetable{
		samples:    make([]float32, length),
		sampleRate: sampleRate,
	}
}

// Render fills the table with the normalized sum of sine waves at the given
// frequencies: sample j = gain * sum(1/n * sin(2*pi*f*j/rate)). The buffer is
// zeroed first and the cursor rewound. No frequencies yields silence.
func (w *Wavetable) Render(frequencies []float64, gain float64) {
	clear(w.samples)
	w.cursor = 0

	if len(frequencies) == 0 || w.sampleRate <= 0 {
		return
	}

	amplitude := gain / float64(len(frequencies))
	rate := float64(w.sampleRate)
	for _, freq := range frequencies {
		step := 2.0 * math.Pi * freq / rate
		for j := range w.samples {
			w.samples[j] += float32(amplitude * math.Sin(step*float64(j)))
		}
	}
}

// Fill copies len(out) consecutive samples starting at the cursor, wrapping at
// the end of the table, and advances the cursor. It does not allocate.
func (w *Wavetable) Fill(out []float32) {
	if len(w.samples) == 0 {
		clear(out)
		return
	}

	n := 0
	for n < len(out) {
		c := copy(out[n:], w.samples[w.cursor:])
		n += c
		w.cursor += c
		if w.cursor >= len(w.samples) {
			w.cursor = 0
		}
	}
}

// Samples exposes the rendered buffer; callers must not modify it during playback
func (w *Wavetable) Samples() []float32 {
	return w.samples
}

// Len returns the table length in frames
func (w *Wavetable) Len() int {
	return len(w.samples)
}

// Cursor returns the next index Fill will read
func (w *Wavetable) Cursor() int {
	return w.cursor
}

// SampleRate returns the rate the table was rendered for
func (w *Wavetable) SampleRate() int {
	return w.sampleRate
}

// RenderBuffer renders frequencies into a new buffer of length frames at sampleRate
func RenderBuffer(frequencies []float64, length, sampleRate int) []float32 {
	w := NewWavetable(length, sampleRate)
	w.Render(frequencies, 1.0)
	return w.samples
}
