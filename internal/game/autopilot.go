package game

import (
	"math"

	"github.com/vovakirdan/penguin-jump/internal/core"
)

// Autopilot is a simple bot for the headless simulator and soak tests. It
// aims at the nearest iceberg one row up and jumps once the aim is set.
type Autopilot struct{}

// Next returns the input for the coming frame.
func (Autopilot) Next(s *Session) core.InputFrame {
	f := core.NewInputFrame()
	p := &s.Player
	if s.Over || p.InAir || p.Captured {
		return f
	}

	target, ok := s.nextPlatform()
	if !ok {
		// Nothing to aim at yet: stay put while the iceberg holds.
		if s.supported() {
			return f
		}
		f.Set(core.ActionJump)
		return f
	}

	ph := s.Cfg.Physics
	reach := ph.SteerSpeed * ph.AirTime
	want := 0.0
	if reach > 0 {
		want = core.ClampF((target.Box.Center.X-p.Pos.X)/reach, -1, 1)
	}
	if ph.AimStep > 0 {
		want = math.Round(want/ph.AimStep) * ph.AimStep
	}

	switch {
	case want < p.Aim-1e-9:
		f.Set(core.ActionLeft)
	case want > p.Aim+1e-9:
		f.Set(core.ActionRight)
	default:
		f.Set(core.ActionJump)
	}
	return f
}

// nextPlatform finds the supporting iceberg one row above the player that
// needs the least steering.
func (s *Session) nextPlatform() (*Platform, bool) {
	sp := s.Cfg.Platforms.Spacing
	y := s.Player.Pos.Y
	var best *Platform
	for _, p := range s.Platforms.All() {
		dy := p.Box.Center.Y - y
		if !p.Supports() || dy < sp/2 || dy > 1.5*sp {
			continue
		}
		if best == nil || math.Abs(p.Box.Center.X-s.Player.Pos.X) < math.Abs(best.Box.Center.X-s.Player.Pos.X) {
			best = p
		}
	}
	return best, best != nil
}
