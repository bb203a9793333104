// Package audio synthesises the game's sound cues and background music
// into a single beep stream. The package never opens an audio device;
// speakerout does that.
package audio

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/penguin-jump/internal/game"
)

// DefaultSampleRate is the rate cues are synthesised at.
const DefaultSampleRate = beep.SampleRate(44100)

// Player mixes cues and music. It implements game.CueSink and beep.Streamer,
// so it can be handed to the speaker as-is.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	loops  map[game.Cue]*beep.Ctrl
	music  *beep.Ctrl
	volume float64
	muted  bool
	logger *log.Logger
}

var (
	_ game.CueSink  = (*Player)(nil)
	_ beep.Streamer = (*Player)(nil)
)

// NewPlayer creates a player at the given sample rate (DefaultSampleRate
// when zero).
func NewPlayer(rate beep.SampleRate, logger *log.Logger) *Player {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Player{
		rate:   rate,
		mixer:  &beep.Mixer{},
		loops:  make(map[game.Cue]*beep.Ctrl),
		volume: 1,
		logger: logger,
	}
}

// SampleRate returns the rate the player streams at.
func (p *Player) SampleRate() beep.SampleRate {
	return p.rate
}

// Play starts a cue. A looping cue that is already running is left alone.
func (p *Player) Play(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	if c.Looping() {
		if _, ok := p.loops[c]; ok {
			return
		}
	}

	s := Synth(c, p.rate)
	if s == nil {
		if p.logger != nil {
			p.logger.Debug("no synth for cue", "cue", c)
		}
		return
	}
	if c.Looping() {
		ctrl := &beep.Ctrl{Streamer: s}
		p.loops[c] = ctrl
		p.mixer.Add(ctrl)
		return
	}
	p.mixer.Add(s)
}

// Stop ends a looping cue. One-shot cues always play to the end.
func (p *Player) Stop(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctrl, ok := p.loops[c]
	if !ok {
		return
	}
	// A Ctrl with no streamer drains, and the mixer drops it.
	ctrl.Streamer = nil
	delete(p.loops, c)
}

// SetMusic starts or stops the background tune.
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !on {
		if p.music != nil {
			p.music.Streamer = nil
			p.music = nil
		}
		return
	}
	if p.music != nil || p.muted {
		return
	}
	p.music = &beep.Ctrl{Streamer: Music(p.rate)}
	p.mixer.Add(p.music)
}

// MusicPlaying reports whether the background tune is running.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil
}

// SetVolume sets the master volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = min(max(v, 0), 1)
}

// SetMuted silences the player. Muting drops every running cue and the
// music; after unmuting, new cues play again and SetMusic restarts the tune.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if !muted {
		return
	}
	p.mixer.Clear()
	clear(p.loops)
	p.music = nil
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Active returns the number of streams in the mix.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream fills samples with the current mix. It never drains.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, _ = p.mixer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= p.volume
		samples[i][1] *= p.volume
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (p *Player) Err() error {
	return nil
}
