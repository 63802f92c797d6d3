// ABOUTME: Audio fundamentals package providing the synthesizer and stream format
// ABOUTME: Defines Format, Wavetable and float32 sample helpers
// Package audio provides the synthesis side of chordgame.
//
// This package defines:
//   - Format: sample rate, channel count and frames-per-callback hint
//   - Wavetable: a fixed-length additive-sine buffer looped by a pull callback
//
// It also provides helpers for encoding float32 samples for drivers that take
// raw bytes, and for mapping a 0-100 volume to a gain.
//
// Example:
//
//	table := audio.NewWavetable(audio.DefaultBufferFrames, audio.DefaultSampleRate)
//	table.Render([]float64{261.63, 329.63, 392.00}, 1.0)
//
//	// on the driver's callback goroutine
//	table.Fill(out)
package audio
