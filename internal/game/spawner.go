package game

import (
	"math/rand"

	"github.com/vovakirdan/penguin-jump/internal/core"
)

// Spawner decides which coins and hazards a new platform carries.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// LightningDraws is the size of the lightning/shark draw for the given
// difficulty and storm intensity. Result 0 spawns lightning, 1 a shark.
func LightningDraws(base, scale, difficulty, intensity float64) int {
	n := int((base - scale*difficulty) / (2*intensity + 1))
	if n < 1 {
		n = 1
	}
	return n
}

// OnPlatformGenerated runs once for every platform generated after the
// safety iceberg.
func (sp *Spawner) OnPlatformGenerated(s *Session, p *Platform) {
	cfg := s.Cfg.Spawn

	if sp.rng.Intn(cfg.CoinOdds) == 0 {
		s.AddHazard(Hazard{
			Kind:   HazardCoin,
			State:  CoinFloating,
			Pos:    sp.pointOn(p.Box, 0.8),
			Parent: p.ID,
		})
	}

	n := LightningDraws(cfg.LightningBase, cfg.LightningDifficulty, s.Difficulty, s.Storm.Intensity)
	switch sp.rng.Intn(n) {
	case 0:
		sp.spawnLightning(s, p)
	case 1:
		if p.Role != RoleBoundary {
			sp.spawnShark(s, p)
		}
	}
}

func (sp *Spawner) spawnLightning(s *Session, p *Platform) *Hazard {
	return s.AddHazard(Hazard{
		Kind:   HazardLightning,
		State:  LightningIdle,
		Pos:    sp.pointOn(p.Box, 0.5),
		Parent: p.ID,
	})
}

func (sp *Spawner) spawnShark(s *Session, p *Platform) *Hazard {
	dir := 1.0
	if sp.rng.Intn(2) == 0 {
		dir = -1
	}
	return s.AddHazard(Hazard{
		Kind:   HazardShark,
		State:  SharkSwimming,
		Pos:    core.V(p.Box.Center.X, p.Box.Center.Y+s.Cfg.Spawn.SharkOffset),
		Parent: p.ID,
		Dir:    dir,
	})
}

// pointOn picks a uniform point inside the central fraction of box.
func (sp *Spawner) pointOn(b core.Box, frac float64) core.Vec2 {
	x := b.Center.X + (sp.rng.Float64()-0.5)*b.W*frac
	y := b.Center.Y + (sp.rng.Float64()-0.5)*b.H*frac
	return core.V(x, y)
}

// SpawnDebug places a lightning strike or a shark on the highest platform.
func (sp *Spawner) SpawnDebug(s *Session, kind HazardKind) *Hazard {
	var top *Platform
	for _, p := range s.Platforms.All() {
		if top == nil || p.Box.Center.Y > top.Box.Center.Y {
			top = p
		}
	}
	if top == nil {
		return nil
	}
	switch kind {
	case HazardLightning:
		return sp.spawnLightning(s, top)
	case HazardShark:
		return sp.spawnShark(s, top)
	}
	return nil
}
