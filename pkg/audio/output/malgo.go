// ABOUTME: Malgo-based audio output implementation
// ABOUTME: Uses miniaudio via malgo with an f32 data callback pulling from the source
package output

import (
	"fmt"
	"log"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/harperreed/chordgame/pkg/audio"
)

// Malgo output implementation using malgo/miniaudio library
type Malgo struct {
	malgoCtx *malgo.AllocatedContext
	device   *malgo.Device
	src      Source
	scratch  []float32
	mu       sync.Mutex
}

// NewMalgo creates a new Malgo output
func NewMalgo() Output {
	return &Malgo{}
}

// Open initializes the playback device and starts it
func (m *Malgo) Open(format audio.Format, src Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		return ErrAlreadyOpen
	}

	if m.malgoCtx == nil {
		ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
		if err != nil {
			return fmt.Errorf("failed to initialize malgo context: %w", err)
		}
		m.malgoCtx = ctx
	}

	m.src = src
	m.scratch = make([]float32, scratchSize(format))

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatF32
	deviceConfig.Playback.Channels = uint32(format.Channels)
	deviceConfig.SampleRate = uint32(format.SampleRate)
	if format.FramesPerBuffer > 0 {
		deviceConfig.PeriodSizeInFrames = uint32(format.FramesPerBuffer)
	}
	deviceConfig.Alsa.NoMMap = 1

	deviceCallbacks := malgo.DeviceCallbacks{
		Data: m.dataCallback,
	}

	device, err := malgo.InitDevice(m.malgoCtx.Context, deviceConfig, deviceCallbacks)
	if err != nil {
		m.releaseContext()
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		m.releaseContext()
		return fmt.Errorf("failed to start device: %w", err)
	}

	m.device = device

	log.Printf("Audio output initialized: %dHz, %d channels (malgo/f32)", format.SampleRate, format.Channels)

	return nil
}

// dataCallback is called by malgo to fill the audio output buffer
func (m *Malgo) dataCallback(pOutput, pInput []byte, frameCount uint32) {
	fillBytes(pOutput, m.src, m.scratch)
}

// Close stops the device and releases the context
func (m *Malgo) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		if err := m.device.Stop(); err != nil {
			log.Printf("Warning: device stop error: %v", err)
		}
		m.device.Uninit()
		m.device = nil
	}

	m.releaseContext()
	log.Printf("Audio output closed (malgo)")
	return nil
}

// releaseContext frees the malgo context (must hold m.mu)
func (m *Malgo) releaseContext() {
	if m.malgoCtx == nil {
		return
	}
	if err := m.malgoCtx.Uninit(); err != nil {
		log.Printf("Warning: malgo context uninit error: %v", err)
	}
	m.malgoCtx.Free()
	m.malgoCtx = nil
}
