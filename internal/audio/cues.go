package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/penguin-jump/internal/game"
)

const ms = time.Millisecond

// cueVolumes is the relative loudness of each cue.
var cueVolumes = map[game.Cue]float64{
	game.CueJump:    0.35,
	game.CueLanding: 0.5,
	game.CueCoin:    0.3,
	game.CueBurst:   0.25,
	game.CueCharge:  0.2,
	game.CueSplash:  0.6,
	game.CueThunder: 0.8,
	game.CueRoar:    0.6,
	game.CueLurking: 0.35,
	game.CueZap:     0.4,
	game.CueAlert:   0.3,
}

// Synth builds the streamer for a cue. Looping cues return an endless
// streamer; every other cue ends on its own.
func Synth(c game.Cue, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case game.CueJump:
		s = tone(320, 640, 120*ms, 5*ms, 60*ms, WaveSine, rate)
	case game.CueLanding:
		s = beep.Mix(
			tone(140, 70, 110*ms, 2*ms, 80*ms, WaveSine, rate),
			newVolume(tone(0, 0, 60*ms, 1*ms, 50*ms, WaveNoise, rate), 0.3),
		)
	case game.CueCoin:
		// B5 then E6
		s = beep.Seq(
			tone(987.77, 987.77, 70*ms, 2*ms, 20*ms, WaveSquare, rate),
			tone(1318.51, 1318.51, 160*ms, 2*ms, 120*ms, WaveSquare, rate),
		)
	case game.CueBurst:
		s = tone(0, 0, 90*ms, 1*ms, 80*ms, WaveNoise, rate)
	case game.CueCharge:
		s = tone(1100, 1500, 60*ms, 2*ms, 40*ms, WaveSine, rate)
	case game.CueSplash:
		s = beep.Mix(
			tone(0, 0, 700*ms, 5*ms, 600*ms, WaveNoise, rate),
			newVolume(tone(110, 50, 500*ms, 5*ms, 400*ms, WaveSine, rate), 0.6),
		)
	case game.CueThunder:
		s = beep.Mix(
			tone(0, 0, 1600*ms, 20*ms, 1400*ms, WaveNoise, rate),
			tone(60, 35, 1600*ms, 50*ms, 1200*ms, WaveSine, rate),
		)
	case game.CueRoar:
		s = tone(90, 55, 800*ms, 40*ms, 500*ms, WaveSaw, rate)
	case game.CueZap:
		s = tone(1500, 300, 200*ms, 1*ms, 120*ms, WaveSquare, rate)
	case game.CueAlert:
		beepTone := func() beep.Streamer {
			return tone(880, 880, 80*ms, 2*ms, 20*ms, WaveSquare, rate)
		}
		s = beep.Seq(beepTone(), beep.Silence(rate.N(60*ms)), beepTone())
	case game.CueLurking:
		// Two low alternating notes, the classic approaching-shark ostinato.
		s = newRepeat(func() beep.Streamer {
			return beep.Seq(
				tone(82.41, 82.41, 250*ms, 10*ms, 80*ms, WaveSaw, rate),
				tone(87.31, 87.31, 250*ms, 10*ms, 80*ms, WaveSaw, rate),
				beep.Silence(rate.N(500*ms)),
			)
		})
	default:
		return nil
	}
	return newVolume(s, cueVolumes[c])
}

// melody is the background tune: a slow arpeggio in C major.
var melody = []float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 293.66, 349.23, 440.00, 349.23}

// Music builds the endless background tune.
func Music(rate beep.SampleRate) beep.Streamer {
	return newVolume(newRepeat(func() beep.Streamer {
		notes := make([]beep.Streamer, 0, len(melody))
		for _, f := range melody {
			notes = append(notes, tone(f, f, 300*ms, 20*ms, 150*ms, WaveSine, rate))
		}
		return beep.Seq(notes...)
	}), 0.15)
}
