package game

import (
	"iter"

	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

// EntityID identifies a platform or hazard inside a session.
// Zero is never assigned.
type EntityID uint64

// Arena owns entities of one kind, indexed by EntityID.
// Iteration follows insertion order so runs are reproducible.
type Arena[T any] struct {
	items map[EntityID]*T
	order []EntityID
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{items: make(map[EntityID]*T)}
}

// Insert stores v under id, replacing any previous entry.
func (a *Arena[T]) Insert(id EntityID, v *T) {
	if _, ok := a.items[id]; !ok {
		a.order = append(a.order, id)
	}
	a.items[id] = v
}

// Get returns the entity with the given id.
func (a *Arena[T]) Get(id EntityID) (*T, bool) {
	v, ok := a.items[id]
	return v, ok
}

// Remove deletes the entity. Removing an unknown id is a no-op.
func (a *Arena[T]) Remove(id EntityID) {
	if _, ok := a.items[id]; !ok {
		return
	}
	delete(a.items, id)
	for i, oid := range a.order {
		if oid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// All iterates entities in insertion order. Entities may be removed
// while iterating; removed entities are skipped.
func (a *Arena[T]) All() iter.Seq2[EntityID, *T] {
	ids := append([]EntityID(nil), a.order...)
	return func(yield func(EntityID, *T) bool) {
		for _, id := range ids {
			v, ok := a.items[id]
			if !ok {
				continue
			}
			if !yield(id, v) {
				return
			}
		}
	}
}

// PlatformState is the lifecycle of an iceberg.
type PlatformState int

const (
	PlatformFloating PlatformState = iota
	PlatformLanded                 // Landed this frame; sinking starts on the next advance
	PlatformSinking
	PlatformGone
)

func (s PlatformState) String() string {
	switch s {
	case PlatformFloating:
		return "floating"
	case PlatformLanded:
		return "landed"
	case PlatformSinking:
		return "sinking"
	default:
		return "gone"
	}
}

// PlatformRole marks the icebergs created at session start.
type PlatformRole int

const (
	RoleNormal   PlatformRole = iota
	RoleFirst                 // Safety iceberg under the player at start; never scores
	RoleBoundary              // Left/right start icebergs; never carry sharks
)

// Platform is an iceberg the player can land on.
type Platform struct {
	ID           EntityID
	Box          core.Box
	Role         PlatformRole
	State        PlatformState
	SinkDuration float64
	SinkElapsed  float64
	StormBob     bool    // Bobbing with storm amplitude
	BobPhase     float64 // Per-platform offset so icebergs do not bob in lockstep
}

// Landed reports whether the one-shot landing has happened.
func (p *Platform) Landed() bool {
	return p.State != PlatformFloating
}

// Supports reports whether the platform can still hold the player.
func (p *Platform) Supports() bool {
	return p.State != PlatformGone
}

// SinkProgress returns how far the platform has sunk, in [0, 1].
func (p *Platform) SinkProgress() float64 {
	if p.State == PlatformGone {
		return 1
	}
	if p.State != PlatformSinking || p.SinkDuration <= 0 {
		return 0
	}
	return core.ClampF(p.SinkElapsed/p.SinkDuration, 0, 1)
}

// Footprint is the area that supports the player. A sinking iceberg
// shrinks toward 40% of its size before it disappears.
func (p *Platform) Footprint() core.Box {
	return p.Box.Scaled(1 - 0.6*p.SinkProgress())
}

// HazardKind distinguishes coins, lightning and sharks.
type HazardKind int

const (
	HazardCoin HazardKind = iota
	HazardLightning
	HazardShark
)

func (k HazardKind) String() string {
	switch k {
	case HazardCoin:
		return "coin"
	case HazardLightning:
		return "lightning"
	default:
		return "shark"
	}
}

// HazardState is the per-kind lifecycle of a hazard.
//
//	coin:      CoinFloating -> CoinCollected -> HazardGone
//	lightning: LightningIdle -> LightningCharging -> LightningActive -> LightningStruck? -> HazardGone
//	shark:     SharkSwimming -> SharkKilling
type HazardState int

const (
	CoinFloating HazardState = iota
	CoinCollected
	LightningIdle
	LightningCharging
	LightningActive
	LightningStruck
	SharkSwimming
	SharkKilling
	HazardGone
)

// Hazard is a coin, a lightning strike or a shark.
type Hazard struct {
	ID     EntityID
	Kind   HazardKind
	State  HazardState
	Pos    core.Vec2
	Parent EntityID // Platform the hazard was spawned for
	Timer  float64  // Seconds spent in the current state
	Dir    float64  // Shark swim direction, ±1
}

// Collected reports whether a coin has been picked up.
func (h *Hazard) Collected() bool {
	return h.Kind == HazardCoin && h.State != CoinFloating
}

// Activated reports whether a lightning strike is live.
func (h *Hazard) Activated() bool {
	return h.State == LightningActive
}

// Struck reports whether a lightning strike has already hit the player.
func (h *Hazard) Struck() bool {
	return h.State == LightningStruck
}

// KillBegun reports whether a shark has started its kill.
func (h *Hazard) KillBegun() bool {
	return h.State == SharkKilling
}

func (h *Hazard) setState(st HazardState) {
	h.State = st
	h.Timer = 0
}

// Player is the penguin. Pos is its footprint on the water plane; Lift is
// the purely visual height of the jump arc.
type Player struct {
	Pos          core.Vec2
	Lift         float64
	Aim          float64 // Steering in [-1, 1]
	InAir        bool
	OnPlatform   bool
	DoubleJumped bool
	HitByShock   bool
	Captured     bool // Taken by a shark
	Character    registry.Character

	jumpElapsed float64
}

// Body returns the collision box used for coins.
func (p *Player) Body(w, h float64) core.Box {
	return core.BoxAt(core.V(p.Pos.X, p.Pos.Y+h/2), w, h)
}

// Shadow returns the collision box used for platforms, strikes and sharks.
func (p *Player) Shadow(w, h float64) core.Box {
	return core.BoxAt(p.Pos, w, h)
}
