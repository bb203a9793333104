package game

import (
	"math"

	"github.com/vovakirdan/penguin-jump/internal/core"
)

// Jump starts a jump from the ground, or a double jump while airborne.
// It reports whether anything happened.
func (s *Session) Jump() bool {
	p := &s.Player
	if p.Captured || s.Over {
		return false
	}
	if !p.InAir {
		p.InAir = true
		p.DoubleJumped = false
		p.jumpElapsed = 0
		s.emit(CueJump)
		return true
	}
	if p.DoubleJumped {
		return false
	}
	p.DoubleJumped = true
	s.nudge()
	s.emit(CueJump)
	return true
}

// nudge pushes an airborne player toward the current aim.
func (s *Session) nudge() {
	ph := s.Cfg.Physics
	dir := core.V(s.Player.Aim, 1)
	dir = dir.Scale(1 / dir.Len())
	delta := dir.Scale(ph.DoubleJumpNudge)
	duration := 0.0
	if ph.NudgeRate > 0 {
		duration = ph.DoubleJumpNudge / ph.NudgeRate
	}
	s.Effects.Schedule(Effect{
		Kind:     EffectMove,
		Target:   PlayerTarget,
		Duration: duration,
		Delta:    delta,
		Ease:     core.EaseOut,
	})
}

// Steer moves the aim one step left (dir < 0) or right (dir > 0).
func (s *Session) Steer(dir float64) {
	step := s.Cfg.Physics.AimStep
	if step <= 0 {
		step = 1
	}
	s.Player.Aim = core.ClampF(s.Player.Aim+math.Copysign(step, dir), -1, 1)
}

// advancePlayer moves the player along the jump arc.
func (s *Session) advancePlayer(dt float64) {
	p := &s.Player
	if !p.InAir || p.Captured {
		p.Lift = 0
		return
	}
	ph := s.Cfg.Physics

	prev := core.ClampF(p.jumpElapsed/ph.AirTime, 0, 1)
	p.jumpElapsed += dt
	t := core.ClampF(p.jumpElapsed/ph.AirTime, 0, 1)

	p.Pos.Y += ph.JumpDistance * (t - prev)
	p.Pos.X += p.Aim * ph.SteerSpeed * ph.AirTime * (t - prev)
	p.Lift = 4 * ph.JumpDistance * 0.3 * t * (1 - t)

	if t >= 1 {
		p.InAir = false
		p.DoubleJumped = false
		p.Lift = 0
		p.Aim = 0
	}
}
