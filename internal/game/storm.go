package game

import (
	"math"

	"github.com/vovakirdan/penguin-jump/internal/config"
)

// StormPhase is derived from the storm state, never stored.
type StormPhase int

const (
	PhaseCalm StormPhase = iota
	PhaseRampingUp
	PhaseSustained
	PhaseRampingDown
)

func (p StormPhase) String() string {
	switch p {
	case PhaseCalm:
		return "calm"
	case PhaseRampingUp:
		return "ramping-up"
	case PhaseSustained:
		return "sustained"
	default:
		return "ramping-down"
	}
}

// StormState is the weather cycle. Intensity stays in [0, 1] and is 0
// whenever the storm is inactive.
type StormState struct {
	Active             bool
	Intensity          float64
	Elapsed            float64
	Duration           float64
	TransitionDuration float64
	WindSpeed          float64
	WindDirection      float64 // ±1, chosen on entry
	RainTime           float64 // Seconds since entry, keeps running during ramp-down
	FlashTime          float64 // Seconds since entry, drives the storm flash

	cfg config.StormConfig
}

// NewStormState returns a calm storm controller.
func NewStormState(cfg config.StormConfig) StormState {
	return StormState{
		Duration:           cfg.Duration,
		TransitionDuration: cfg.TransitionDuration,
		WindDirection:      1,
		cfg:                cfg,
	}
}

// Begin enters storm mode. It returns false and does nothing when a storm
// is already running.
func (st *StormState) Begin(s *Session) bool {
	if st.Active {
		return false
	}
	st.Active = true
	st.Elapsed = 0
	st.RainTime = 0
	st.FlashTime = 0
	st.WindDirection = 1
	if s.rng.Intn(2) == 0 {
		st.WindDirection = -1
	}
	s.Score.Storms++
	s.emit(CueThunder)
	s.setStormBob(true)
	s.logger.Debug("storm started", "direction", st.WindDirection, "height", int(s.Height()))
	return true
}

// Update advances the storm by dt and applies wind drift to the player.
func (st *StormState) Update(s *Session, dt float64) {
	if !st.Active {
		st.WindSpeed = 0
		return
	}

	st.RainTime += dt
	st.FlashTime += dt

	rate := st.cfg.RampRate * dt / st.TransitionDuration
	if st.Elapsed < st.Duration-st.TransitionDuration {
		st.Elapsed += dt
		if st.Intensity < 0.99 {
			st.Intensity = math.Min(1, st.Intensity+rate)
		} else {
			st.Intensity = 1
		}
	} else {
		if st.Intensity > 0.01 {
			st.Intensity = math.Max(0, st.Intensity-rate)
		} else {
			st.end(s)
			return
		}
	}

	st.WindSpeed = st.WindDirection * st.Intensity * st.cfg.WindMax
	if !s.Over && !s.Player.Captured {
		s.Player.Pos.X += WindDrift(st.WindSpeed, dt, s.Difficulty, !s.Player.InAir, s.Player.Character.WindFactor)
	}
}

func (st *StormState) end(s *Session) {
	st.Intensity = 0
	st.Elapsed = 0
	st.Active = false
	st.WindSpeed = 0
	s.Score.Charge = 0
	s.setStormBob(false)
	s.logger.Debug("storm ended", "height", int(s.Height()))
}

// Phase derives the storm phase.
func (st *StormState) Phase() StormPhase {
	switch {
	case !st.Active:
		return PhaseCalm
	case st.Elapsed < st.Duration-st.TransitionDuration && st.Intensity < 1:
		return PhaseRampingUp
	case st.Elapsed < st.Duration-st.TransitionDuration:
		return PhaseSustained
	default:
		return PhaseRampingDown
	}
}

// Tint is the sky color for the current intensity.
func (st *StormState) Tint() (r, g, b uint8) {
	i := st.Intensity
	return 0, uint8(math.Round(151 - 40*i)), uint8(math.Round(255 - 120*i))
}

// RainRate returns drops per second.
func (st *StormState) RainRate() float64 {
	if !st.Active {
		return 0
	}
	var rate float64
	if st.RainTime < st.Duration-st.TransitionDuration {
		rate = 0.1*math.Pow(st.cfg.RainBase, st.RainTime) - 0.1
	} else if st.RainTime < st.Duration {
		rate = 0.1*math.Pow(st.cfg.RainBase, math.Abs(st.RainTime-st.Duration)) - 0.1
	}
	return math.Max(0, math.Min(st.cfg.RainMax, rate))
}

// Flashing reports whether the storm flash is lit this frame.
// The flash fires in short bursts every few seconds.
func (st *StormState) Flashing() bool {
	if !st.Active {
		return false
	}
	t := math.Mod(st.FlashTime, 3.5)
	return t < 0.08 || (t > 0.16 && t < 0.22)
}

// WindDrift is the horizontal displacement wind applies in one frame.
// Grounded players drift half as far; factor is the character's wind factor.
func WindDrift(windSpeed, dt, difficulty float64, grounded bool, factor float64) float64 {
	dx := windSpeed * dt * difficulty
	if grounded {
		dx /= 2
	}
	if factor != 0 {
		dx *= factor
	}
	return dx
}
