// Package speakerout plays an audio.Player through the system speaker.
// It is the only package that opens an audio device.
package speakerout

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/penguin-jump/internal/audio"
)

var (
	mu      sync.Mutex
	started bool
)

// Start initialises the speaker at the player's sample rate and plays it.
// Calling Start again while running is a no-op.
func Start(p *audio.Player) error {
	mu.Lock()
	defer mu.Unlock()

	if started {
		return nil
	}
	sr := p.SampleRate()
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speakerout: cannot open audio device: %w", err)
	}
	speaker.Play(p)
	started = true
	return nil
}

// Stop removes every stream from the speaker.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if !started {
		return
	}
	speaker.Clear()
	started = false
}
