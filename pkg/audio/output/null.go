// ABOUTME: Null audio output that discards samples
// ABOUTME: Pulls from the source on a ticker goroutine at the real-time rate
package output

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/harperreed/chordgame/pkg/audio"
)

// Null pulls samples at the stream rate and throws them away. It stands in for
// a device in headless runs and tests.
type Null struct {
	frames atomic.Int64
	opens  atomic.Int64
	done   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewNull creates a new Null output
func NewNull() *Null {
	return &Null{}
}

// Open starts the pull goroutine
func (n *Null) Open(format audio.Format, src Source) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.done != nil {
		return ErrAlreadyOpen
	}

	frames := format.FramesPerBuffer
	if frames <= 0 {
		frames = audio.DefaultFramesPerBuffer
	}
	rate := format.SampleRate
	if rate <= 0 {
		rate = audio.DefaultSampleRate
	}
	interval := time.Duration(frames) * time.Second / time.Duration(rate)

	n.done = make(chan struct{})
	n.opens.Add(1)
	n.wg.Add(1)
	go n.pull(src, make([]float32, frames*max(format.Channels, 1)), interval, n.done)
	log.Printf("Audio output initialized: %dHz, %d channels (null)", rate, max(format.Channels, 1))

	return nil
}

func (n *Null) pull(src Source, buf []float32, interval time.Duration, done <-chan struct{}) {
	defer n.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			src.Fill(buf)
			n.frames.Add(int64(len(buf)))
		}
	}
}

// Close stops the pull goroutine and waits for it
func (n *Null) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.done == nil {
		return nil
	}
	close(n.done)
	n.wg.Wait()
	n.done = nil
	log.Printf("Audio output closed (null)")
	return nil
}

// Frames returns the number of samples pulled so far
func (n *Null) Frames() int64 {
	return n.frames.Load()
}

// Opens returns how many times the output was opened
func (n *Null) Opens() int64 {
	return n.opens.Load()
}

// IsOpen reports whether a stream is running
func (n *Null) IsOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.done != nil
}
