package game

// updateHazards runs the hazards' own timelines: lightning warm-up and
// strike windows, shark swimming and culling.
func (s *Session) updateHazards(dt float64) {
	sc := s.Cfg.Spawn
	for id, h := range s.Hazards.All() {
		h.Timer += dt
		switch h.Kind {
		case HazardLightning:
			s.updateLightning(id, h)
		case HazardShark:
			if h.State == SharkSwimming {
				h.Pos.X += h.Dir * sc.SharkSpeed * dt
				limit := s.Cfg.Platforms.FieldHalfWidth
				if (h.Pos.X > limit && h.Dir > 0) || (h.Pos.X < -limit && h.Dir < 0) {
					h.Dir = -h.Dir
				}
			}
			if h.Pos.Y < s.Camera.Pos.Y-sc.SharkCullScreens*s.ViewH {
				s.RemoveHazard(id)
			}
		}
	}
}

func (s *Session) updateLightning(id EntityID, h *Hazard) {
	sc := s.Cfg.Spawn
	switch h.State {
	case LightningIdle:
		if h.Pos.Y-s.Player.Pos.Y < sc.StrikeTrigger {
			h.setState(LightningCharging)
			s.emit(CueAlert)
		}
	case LightningCharging:
		if h.Timer >= sc.StrikeWarmup {
			h.setState(LightningActive)
			s.emit(CueZap)
		}
	case LightningActive, LightningStruck:
		if h.Timer >= sc.StrikeActive {
			h.setState(HazardGone)
			s.RemoveHazard(id)
		}
	}
}
