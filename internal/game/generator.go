package game

import "github.com/vovakirdan/penguin-jump/internal/core"

// Generator lays out icebergs above the camera and culls them below it.
type Generator struct {
	nextY float64
	lastX float64
}

// NewGenerator creates a generator. Start must be called before Update.
func NewGenerator() *Generator {
	return &Generator{}
}

// Start places the safety iceberg under the player and the two boundary
// icebergs, then fills the first screen.
func (g *Generator) Start(s *Session) {
	pc := s.Cfg.Platforms

	s.AddPlatform(Platform{
		Box:  core.BoxAt(core.V(0, 0), pc.FirstWidth, pc.FirstHeight),
		Role: RoleFirst,
	})

	for _, x := range []float64{-pc.BoundaryOffset, pc.BoundaryOffset} {
		b := s.AddPlatform(Platform{
			Box:  core.BoxAt(core.V(x, pc.Spacing), pc.MaxWidth, pc.MaxHeight),
			Role: RoleBoundary,
		})
		s.spawner.OnPlatformGenerated(s, b)
	}

	g.nextY = 2 * pc.Spacing
	g.lastX = 0
	g.Update(s)
}

// Update generates rows until the frontier is one screen above the camera,
// then culls everything far enough below it.
func (g *Generator) Update(s *Session) {
	pc := s.Cfg.Platforms
	top := s.Camera.Pos.Y + s.ViewH
	for g.nextY <= top {
		g.row(s)
	}

	floor := s.Camera.Pos.Y - pc.CullScreens*s.ViewH
	for id, p := range s.Platforms.All() {
		if p.Box.MaxY() < floor {
			s.RemovePlatform(id)
		}
	}
}

func (g *Generator) row(s *Session) {
	pc := s.Cfg.Platforms
	rng := s.rng

	x := g.lastX + (rng.Float64()*2-1)*pc.MaxShift
	x = core.ClampF(x, -pc.FieldHalfWidth, pc.FieldHalfWidth)
	w := pc.MinWidth + rng.Float64()*(pc.MaxWidth-pc.MinWidth)
	h := pc.MinHeight + rng.Float64()*(pc.MaxHeight-pc.MinHeight)

	p := s.AddPlatform(Platform{Box: core.BoxAt(core.V(x, g.nextY), w, h)})
	s.spawner.OnPlatformGenerated(s, p)

	g.lastX = x
	g.nextY += pc.Spacing
}

// Frontier returns the Y of the next row to be generated.
func (g *Generator) Frontier() float64 {
	return g.nextY
}
