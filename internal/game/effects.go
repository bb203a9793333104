package game

import "github.com/vovakirdan/penguin-jump/internal/core"

// PlayerTarget is the effect target that means the player.
const PlayerTarget EntityID = 0

// EffectKind says what an effect animates.
type EffectKind int

const (
	EffectMove     EffectKind = iota // Displaces the player
	EffectTimer                      // Waits, then runs Done
	EffectParticle                   // Coin particle travelling to the charge bar
)

// Effect is a timed action advanced once per tick after the resolver.
// Logical flags are set when the triggering event is detected; effects only
// carry the motion and the delayed follow-ups.
type Effect struct {
	Kind     EffectKind
	Target   EntityID
	Delay    float64
	Duration float64
	Delta    core.Vec2 // Total displacement for EffectMove
	From     core.Vec2 // World position a particle starts at
	Ease     func(float64) float64
	Done     func(s *Session)

	elapsed float64
	applied float64 // Eased progress already applied
}

// Progress returns the effect's completion in [0, 1], ignoring the delay.
func (e *Effect) Progress() float64 {
	t := e.elapsed - e.Delay
	if t <= 0 {
		return 0
	}
	if e.Duration <= 0 {
		return 1
	}
	return core.ClampF(t/e.Duration, 0, 1)
}

// Started reports whether the delay has passed.
func (e *Effect) Started() bool {
	return e.elapsed >= e.Delay
}

// Effects schedules and advances timed effects.
type Effects struct {
	list []*Effect
}

// NewEffects returns an empty scheduler.
func NewEffects() *Effects {
	return &Effects{}
}

// Schedule adds an effect and returns it.
func (fx *Effects) Schedule(e Effect) *Effect {
	if e.Ease == nil {
		e.Ease = linear
	}
	ef := &e
	fx.list = append(fx.list, ef)
	return ef
}

// After runs fn once delay seconds have passed.
func (fx *Effects) After(target EntityID, delay float64, fn func(s *Session)) *Effect {
	return fx.Schedule(Effect{Kind: EffectTimer, Target: target, Delay: delay, Done: fn})
}

// Cancel drops every pending effect on target without running Done.
func (fx *Effects) Cancel(target EntityID) {
	kept := fx.list[:0]
	for _, e := range fx.list {
		if e.Target != target || e.Kind == EffectParticle {
			kept = append(kept, e)
		}
	}
	fx.list = kept
}

// Len returns the number of pending effects.
func (fx *Effects) Len() int {
	return len(fx.list)
}

// Each calls fn for every pending effect.
func (fx *Effects) Each(fn func(e *Effect)) {
	for _, e := range fx.list {
		fn(e)
	}
}

// Advance moves every effect forward by dt. Finished effects run Done
// after all effects have been advanced, so Done may schedule new ones.
func (fx *Effects) Advance(s *Session, dt float64) {
	var finished []*Effect
	kept := fx.list[:0]
	for _, e := range fx.list {
		e.elapsed += dt
		if e.Kind == EffectMove && e.Started() {
			p := e.Ease(e.Progress())
			step := p - e.applied
			e.applied = p
			if e.Target == PlayerTarget && step != 0 {
				s.Player.Pos = s.Player.Pos.Add(e.Delta.Scale(step))
			}
		}
		if e.elapsed >= e.Delay+e.Duration {
			finished = append(finished, e)
			continue
		}
		kept = append(kept, e)
	}
	fx.list = kept

	for _, e := range finished {
		if e.Done != nil {
			e.Done(s)
		}
	}
}

func linear(t float64) float64 { return t }
