// ABOUTME: Tests for audio types
// ABOUTME: Tests float32 encoding and volume mapping
package audio

import (
	"testing"
	"time"
)

func TestPutFloat32LE(t *testing.T) {
	samples := []float32{0, 1, -1, 0.25, -0.5}
	buf := make([]byte, len(samples)*BytesPerSample)

	PutFloat32LE(buf, samples)

	// 1.0f is 0x3f800000
	if buf[4] != 0x00 || buf[5] != 0x00 || buf[6] != 0x80 || buf[7] != 0x3f {
		t.Errorf("unexpected encoding of 1.0: % x", buf[4:8])
	}

	decoded := Float32FromLE(buf)
	for i := range samples {
		if decoded[i] != samples[i] {
			t.Errorf("index %d: expected %f, got %f", i, samples[i], decoded[i])
		}
	}
}

func TestVolumeMultiplier(t *testing.T) {
	tests := []struct {
		volume   int
		muted    bool
		expected float64
	}{
		{100, false, 1.0},
		{50, false, 0.5},
		{0, false, 0.0},
		{80, true, 0.0}, // Muted overrides volume
		{150, false, 1.0},
		{-10, false, 0.0},
	}

	for _, tt := range tests {
		result := VolumeMultiplier(tt.volume, tt.muted)
		if result != tt.expected {
			t.Errorf("volume=%d, muted=%v: expected %f, got %f",
				tt.volume, tt.muted, tt.expected, result)
		}
	}
}

func TestFramesFor(t *testing.T) {
	f := DefaultFormat()
	if got := f.FramesFor(3 * time.Second); got != DefaultBufferFrames {
		t.Errorf("expected %d frames for 3s, got %d", DefaultBufferFrames, got)
	}
	if got := f.FramesFor(500 * time.Millisecond); got != 24000 {
		t.Errorf("expected 24000 frames for 500ms, got %d", got)
	}
}
