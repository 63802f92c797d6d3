// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides the pull-based Output interface and its backends
// Package output provides audio playback backends.
//
// Every backend pulls mono float32 samples from a Source on the driver's own
// callback goroutine:
//   - Oto: default, via github.com/ebitengine/oto/v3
//   - Malgo: miniaudio via github.com/gen2brain/malgo
//   - PortAudio: build with -tags portaudio
//   - Null: discards samples at the real-time rate
//
// Example:
//
//	out, err := output.New("oto")
//	err = out.Open(audio.DefaultFormat(), table)
//	time.Sleep(3 * time.Second)
//	err = out.Close()
package output
