package game

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/vovakirdan/penguin-jump/internal/core"
)

// Resolve runs the per-frame collision and scoring pass in a fixed order:
// landing, lightning, coins, sharks, game over, then the charge
// accumulator. Every detection sets its one-shot flag synchronously, so a
// second call in the same frame is a no-op.
func Resolve(s *Session, dt float64) {
	if s.Over {
		return
	}
	s.Player.OnPlatform = s.supported()
	resolveLanding(s)
	resolveLightning(s)
	resolveCoins(s)
	resolveSharks(s)
	resolveGameOver(s)
	updateCharge(s, dt)
}

// supported reports whether the player's shadow rests on any iceberg.
func (s *Session) supported() bool {
	shadow := s.Shadow()
	for _, p := range s.Platforms.All() {
		if p.Supports() && p.Footprint().Intersects(shadow) {
			return true
		}
	}
	return false
}

func resolveLanding(s *Session) {
	if s.Player.InAir || s.Player.Captured {
		return
	}
	shadow := s.Shadow()
	for _, p := range s.Platforms.All() {
		if p.Role == RoleFirst || p.Landed() || !p.Footprint().Intersects(shadow) {
			continue
		}
		land(s, p)
		return
	}
}

func land(s *Session, p *Platform) {
	pc := s.Cfg.Platforms
	p.State = PlatformLanded
	p.SinkDuration = pc.BaseSink - pc.SinkDifficulty*s.Difficulty

	ph := s.Cfg.Physics
	s.Camera.Shake(1+s.fx.Float64()*math.Max(0, ph.ShakeMax-1), ph.ShakeDuration)

	s.Score.Score += s.Cfg.Scoring.Landing
	s.Score.Landings++
	s.CurrentPlatform = p.ID
	s.emit(CueLanding)
}

// LightningPush is the displacement a strike centered at center applies to
// a player at pos: radially away from the center with magnitude
// max(0, maxPush - distance). A player exactly at the center is pushed
// straight up by maxPush.
func LightningPush(center, pos core.Vec2, maxPush float64) core.Vec2 {
	d := pos.Sub(center)
	dist := d.Len()
	if dist == 0 {
		return core.V(0, maxPush)
	}
	mag := math.Max(0, maxPush-dist)
	return d.Scale(mag / dist)
}

func resolveLightning(s *Session) {
	p := &s.Player
	if p.HitByShock || p.Captured {
		return
	}
	sc := s.Cfg.Spawn
	shadow := s.Shadow()
	for _, h := range s.Hazards.All() {
		if h.Kind != HazardLightning || !h.Activated() {
			continue
		}
		if !core.BoxAt(h.Pos, sc.StrikeWidth, sc.StrikeHeight).Intersects(shadow) {
			continue
		}
		h.setState(LightningStruck)
		p.HitByShock = true
		s.Effects.Schedule(Effect{
			Kind:     EffectMove,
			Target:   PlayerTarget,
			Duration: sc.PushDuration,
			Delta:    LightningPush(h.Pos, p.Pos, 2*s.Cfg.Player.BodyHeight),
			Ease:     core.EaseOut,
			Done: func(s *Session) {
				s.Player.HitByShock = false
			},
		})
		return
	}
}

func resolveCoins(s *Session) {
	size := s.Cfg.Player.CoinSize
	body := s.Body()
	for _, h := range s.Hazards.All() {
		if h.Kind != HazardCoin || h.Collected() {
			continue
		}
		if core.BoxAt(h.Pos, size, size).Intersects(body) {
			collect(s, h)
		}
	}
}

func collect(s *Session, h *Hazard) {
	h.setState(CoinCollected)

	award := s.Cfg.Scoring.Coin
	if s.Storm.Active {
		award = s.Cfg.Scoring.StormCoin
	}
	s.Score.Score += award
	s.Score.SessionCoins++
	s.Score.LifetimeCoins++
	if s.store != nil {
		if err := s.store.AddCoins(1); err != nil {
			s.logger.Warn("could not save coins", "error", err)
		}
	}
	s.emit(CueCoin)

	cc := s.Cfg.Charge
	id, from := h.ID, h.Pos
	s.Effects.After(id, cc.Rise, func(s *Session) {
		s.emit(CueBurst)
		s.RemoveHazard(id)
	})
	for i := 0; i < cc.Particles; i++ {
		s.Effects.Schedule(Effect{
			Kind:     EffectParticle,
			Target:   id,
			Delay:    cc.Rise + cc.ParticleStagger*float64(i),
			Duration: cc.ParticleTravel,
			From:     from,
			Done: func(s *Session) {
				s.chargeArrived()
			},
		})
	}
}

// chargeArrived feeds one particle into the charge accumulator.
// Particles that arrive during a storm add nothing.
func (s *Session) chargeArrived() {
	s.emit(CueCharge)
	if s.Storm.Active {
		return
	}
	s.Score.Charge = math.Min(s.Cfg.Charge.Capacity, s.Score.Charge+s.Cfg.Charge.ParticleValue)
}

func resolveSharks(s *Session) {
	p := &s.Player
	if p.Captured {
		return
	}
	pc := s.Cfg.Player
	shadow := s.Shadow()
	for _, h := range s.Hazards.All() {
		if h.Kind != HazardShark || h.KillBegun() {
			continue
		}
		if !core.BoxAt(h.Pos, pc.WaveWidth, pc.WaveHeight).Intersects(shadow) {
			continue
		}
		h.setState(SharkKilling)
		s.Effects.Cancel(PlayerTarget)
		p.Captured = true
		p.InAir = false
		p.HitByShock = false
		p.Lift = 0
		s.emit(CueRoar)
		s.Effects.Schedule(Effect{
			Kind:     EffectMove,
			Target:   PlayerTarget,
			Duration: s.Cfg.Spawn.KillPull,
			Delta:    h.Pos.Sub(p.Pos),
		})
		return
	}
}

func resolveGameOver(s *Session) {
	if s.Over || s.Player.InAir || s.Player.OnPlatform {
		return
	}
	s.Over = true
	s.Camera.Frozen = true
	s.halted = true
	s.emit(CueSplash)
	s.stopCue(CueLurking)

	if s.Score.Score > s.Score.HighScore {
		s.Score.HighScore = s.Score.Score
		s.Score.NewHigh = true
	}
	s.submitRun()

	s.logger.Info("run over",
		"score", s.Score.Score,
		"coins", s.Score.SessionCoins,
		"height", int(s.Height()),
		"storms", s.Score.Storms,
		"new_high", s.Score.NewHigh,
	)
}

func (s *Session) submitRun() {
	if s.store == nil {
		return
	}
	run := RunRecord{
		RunID:     uuid.New().String(),
		Player:    s.PlayerName,
		Character: s.Player.Character.ID,
		Score:     s.Score.Score,
		Coins:     s.Score.SessionCoins,
		Height:    s.Height(),
		Storms:    s.Score.Storms,
		Seed:      s.Seed,
		Duration:  time.Duration(s.Time * float64(time.Second)),
		EndedAt:   time.Now(),
	}
	if _, err := s.store.SubmitRun(run); err != nil {
		s.logger.Warn("could not save run", "error", err)
	}
}

func updateCharge(s *Session, dt float64) {
	if s.Storm.Active {
		return
	}
	if s.Score.Charge >= s.Cfg.Charge.Capacity {
		s.Storm.Begin(s)
		return
	}
	if s.Score.Charge > 0 {
		s.Score.Charge = math.Max(0, s.Score.Charge-s.Cfg.Charge.Drain*dt)
	}
}
