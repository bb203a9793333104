package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/penguin-jump/internal/game"
)

const testRate = beep.SampleRate(8000)

// drain streams s until it ends or limit samples have been produced.
func drain(s beep.Streamer, limit int) (total int, ended bool) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total, true
		}
	}
	return total, false
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tc.wave, testRate)
			buf := make([][2]float64, testRate.N(time.Second))
			n, _ := osc.Stream(buf)
			if n != testRate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, expected %d", n, testRate.N(100*time.Millisecond))
			}
			if p := peak(buf[:n]); p > 1 || p == 0 {
				t.Errorf("peak %v outside (0, 1]", p)
			}
			if n, ok := osc.Stream(buf); n != 0 || ok {
				t.Errorf("drained oscillator returned n=%d ok=%v", n, ok)
			}
		})
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 20*time.Millisecond, 20*time.Millisecond, testRate)
	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)

	if math.Abs(buf[0][0]) != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	mid := n / 2
	if math.Abs(buf[mid][0]) != 1 {
		t.Errorf("sustain should be full volume, got %v", buf[mid][0])
	}
	if math.Abs(buf[n-1][0]) >= 0.1 {
		t.Errorf("release should end near silence, got %v", buf[n-1][0])
	}
}

func TestEveryCueSynthesises(t *testing.T) {
	for _, c := range game.AllCues() {
		t.Run(c.String(), func(t *testing.T) {
			s := Synth(c, testRate)
			if s == nil {
				t.Fatal("no streamer")
			}
			limit := testRate.N(5 * time.Second)
			total, ended := drain(s, limit)
			if c.Looping() {
				if ended {
					t.Error("looping cue ended")
				}
				return
			}
			if !ended {
				t.Error("one-shot cue never ended")
			}
			if total == 0 {
				t.Error("cue produced no samples")
			}
		})
	}
}

func TestPlayerOneShotDrains(t *testing.T) {
	p := NewPlayer(testRate, nil)
	p.Play(game.CueJump)
	if p.Active() != 1 {
		t.Fatalf("Active() = %d, expected 1", p.Active())
	}

	buf := make([][2]float64, 256)
	n, ok := p.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatal("player must always fill the buffer")
	}
	if peak(buf) == 0 {
		t.Error("jump cue is silent")
	}

	drain(p, testRate.N(time.Second))
	if p.Active() != 0 {
		t.Errorf("finished cue still in the mix: %d", p.Active())
	}
}

func TestPlayerLoopStartsOnceAndStops(t *testing.T) {
	p := NewPlayer(testRate, nil)
	p.Play(game.CueLurking)
	p.Play(game.CueLurking)
	if p.Active() != 1 {
		t.Fatalf("looping cue stacked: Active() = %d", p.Active())
	}

	drain(p, testRate.N(3*time.Second))
	if p.Active() != 1 {
		t.Fatal("loop should keep playing")
	}

	p.Stop(game.CueLurking)
	drain(p, 512)
	if p.Active() != 0 {
		t.Errorf("stopped loop still in the mix: %d", p.Active())
	}

	p.Stop(game.CueJump)
	p.Play(game.CueLurking)
	if p.Active() != 1 {
		t.Error("loop should restart after Stop")
	}
}

func TestPlayerMusicAndMute(t *testing.T) {
	p := NewPlayer(testRate, nil)
	p.SetMusic(true)
	p.SetMusic(true)
	if !p.MusicPlaying() || p.Active() != 1 {
		t.Fatalf("music should play once, Active() = %d", p.Active())
	}
	p.SetMusic(false)
	drain(p, 512)
	if p.MusicPlaying() || p.Active() != 0 {
		t.Error("music should stop")
	}

	p.Play(game.CueThunder)
	p.SetMuted(true)
	p.Play(game.CueCoin)
	p.SetMusic(true)
	if p.Active() != 0 {
		t.Errorf("muted player has %d streams", p.Active())
	}
	buf := make([][2]float64, 128)
	p.Stream(buf)
	if peak(buf) != 0 {
		t.Error("muted player should be silent")
	}

	p.SetMuted(false)
	if p.Muted() {
		t.Fatal("SetMuted(false) should unmute")
	}
	p.Play(game.CueCoin)
	p.SetMusic(true)
	if p.Active() != 2 || !p.MusicPlaying() {
		t.Errorf("unmuted player should play again, Active() = %d", p.Active())
	}
}

func TestPlayerVolume(t *testing.T) {
	p := NewPlayer(testRate, nil)
	p.SetVolume(0)
	p.Play(game.CueThunder)
	buf := make([][2]float64, 2048)
	p.Stream(buf)
	if peak(buf) != 0 {
		t.Error("zero master volume should be silent")
	}

	loud := NewPlayer(testRate, nil)
	loud.SetVolume(5)
	full := NewPlayer(testRate, nil)
	loud.Play(game.CueJump)
	full.Play(game.CueJump)
	a := make([][2]float64, 512)
	b := make([][2]float64, 512)
	loud.Stream(a)
	full.Stream(b)
	if peak(a) == 0 || peak(a) != peak(b) {
		t.Errorf("volume above 1 should clamp to full: peak %v, expected %v", peak(a), peak(b))
	}
}
