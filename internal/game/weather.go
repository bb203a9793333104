package game

import "github.com/vovakirdan/penguin-jump/internal/core"

const (
	rainLife      = 0.3
	rainFallSpeed = 320.0
	maxRainDrops  = 400
)

// RainDrop is a purely visual particle.
type RainDrop struct {
	Pos  core.Vec2
	Life float64
}

// updateRain moves existing drops and spawns int(dt*rate)+1 new drops
// around the player while it is raining.
func (s *Session) updateRain(dt float64) {
	kept := s.Rain[:0]
	for _, d := range s.Rain {
		d.Life -= dt
		if d.Life <= 0 {
			continue
		}
		d.Pos.Y -= rainFallSpeed * dt
		d.Pos.X += s.Storm.WindSpeed * dt
		kept = append(kept, d)
	}
	s.Rain = kept

	rate := s.Storm.RainRate()
	if rate <= 0 {
		return
	}
	n := int(dt*rate) + 1
	for i := 0; i < n && len(s.Rain) < maxRainDrops; i++ {
		x := s.Player.Pos.X + (s.fx.Float64()*2-1)*s.ViewW/2 + 2*s.Storm.WindSpeed
		y := s.Camera.Pos.Y + (s.fx.Float64()*2-1)*s.ViewH/2
		s.Rain = append(s.Rain, RainDrop{Pos: core.V(x, y), Life: rainLife})
	}
}
