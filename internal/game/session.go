package game

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/penguin-jump/internal/config"
	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

// ScoreState is the run's economy.
type ScoreState struct {
	Score         int
	SessionCoins  int
	LifetimeCoins int
	HighScore     int
	NewHigh       bool
	Charge        float64
	Landings      int
	Storms        int
}

// Camera follows the player and shakes on landings.
type Camera struct {
	Pos       core.Vec2
	Frozen    bool
	shakeLeft float64
	shakeAmp  float64
	Offset    core.Vec2 // Current shake offset in world units
}

// Shake starts a camera shake of the given amplitude.
func (c *Camera) Shake(amp, duration float64) {
	c.shakeAmp = amp
	c.shakeLeft = duration
}

// Session is the state of one run. Every component takes it by reference.
type Session struct {
	Cfg        *config.PenguinConfig
	Player     Player
	Platforms  *Arena[Platform]
	Hazards    *Arena[Hazard]
	Storm      StormState
	Difficulty float64
	Score      ScoreState
	Camera     Camera
	Effects    *Effects
	Rain       []RainDrop
	Time       float64

	// Over is set the frame the game-over check fires; ResultsReady once
	// the hand-off delay has passed.
	Over         bool
	OverTimer    float64
	ResultsReady bool

	CurrentPlatform EntityID
	StartY          float64
	ViewW, ViewH    float64
	SoundEnabled    bool
	Seed            int64
	PlayerName      string

	rng        *rand.Rand // gameplay randomness
	fx         *rand.Rand // visual randomness
	nextID     EntityID
	diff       *config.DifficultyManager
	generator  *Generator
	spawner    *Spawner
	cues       CueSink
	store      ProfileStore
	logger     *log.Logger
	sharkCount int
	halted     bool // Platform animations stopped by game over
}

// SessionParams configures NewSession.
type SessionParams struct {
	Config       *config.PenguinConfig
	Seed         int64
	ScreenW      int
	ScreenH      int
	Profile      Profile
	Character    registry.Character
	Store        ProfileStore
	Cues         CueSink
	Logger       *log.Logger
	SoundEnabled bool
	PlayerName   string
}

// NewSession builds the initial world: the player on the safety iceberg,
// the two boundary icebergs and a screen's worth of platforms above.
func NewSession(p SessionParams) *Session {
	cfg := p.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	if p.Cues == nil {
		p.Cues = nopSink{}
	}
	if p.Logger == nil {
		p.Logger = discardLogger()
	}
	if p.ScreenW <= 0 || p.ScreenH <= 0 {
		d := core.DefaultConfig()
		p.ScreenW, p.ScreenH = d.ScreenW, d.ScreenH
	}

	s := &Session{
		Cfg:          cfg,
		Platforms:    NewArena[Platform](),
		Hazards:      NewArena[Hazard](),
		Effects:      NewEffects(),
		ViewW:        float64(p.ScreenW) * cfg.Render.UnitsPerColumn,
		ViewH:        float64(p.ScreenH) * cfg.Render.UnitsPerRow,
		SoundEnabled: p.SoundEnabled,
		Seed:         p.Seed,
		PlayerName:   p.PlayerName,
		rng:          rand.New(rand.NewSource(p.Seed)),
		fx:           rand.New(rand.NewSource(p.Seed + 1)),
		diff:         config.NewDifficultyManager(cfg.Difficulty),
		cues:         p.Cues,
		store:        p.Store,
		logger:       p.Logger,
	}
	s.Storm = NewStormState(cfg.Storm)
	s.Player = Player{Character: p.Character}
	s.Score.HighScore = p.Profile.HighScore
	s.Score.LifetimeCoins = p.Profile.TotalCoins
	s.Camera.Pos = core.V(0, s.ViewH/6)
	s.Difficulty = s.diff.Level(0)

	s.spawner = NewSpawner(s.rng)
	s.generator = NewGenerator()
	s.generator.Start(s)
	s.Player.OnPlatform = true
	return s
}

func (s *Session) newID() EntityID {
	s.nextID++
	return s.nextID
}

// Height is how far the player has climbed since the start.
func (s *Session) Height() float64 {
	return math.Max(0, s.Player.Pos.Y-s.StartY)
}

// Body returns the player's body box.
func (s *Session) Body() core.Box {
	return s.Player.Body(s.Cfg.Player.BodyWidth, s.Cfg.Player.BodyHeight)
}

// Shadow returns the player's shadow box.
func (s *Session) Shadow() core.Box {
	return s.Player.Shadow(s.Cfg.Player.ShadowWidth, s.Cfg.Player.ShadowHeight)
}

func (s *Session) emit(c Cue) {
	if s.SoundEnabled {
		s.cues.Play(c)
	}
}

func (s *Session) stopCue(c Cue) {
	s.cues.Stop(c)
}

// AddPlatform inserts a platform and assigns its ID.
func (s *Session) AddPlatform(p Platform) *Platform {
	p.ID = s.newID()
	p.BobPhase = s.fx.Float64() * 2 * math.Pi
	p.StormBob = s.Storm.Active
	pp := &p
	s.Platforms.Insert(p.ID, pp)
	return pp
}

// AddHazard inserts a hazard and assigns its ID.
func (s *Session) AddHazard(h Hazard) *Hazard {
	h.ID = s.newID()
	hp := &h
	s.Hazards.Insert(h.ID, hp)
	if h.Kind == HazardShark {
		s.sharkCount++
		if s.sharkCount == 1 {
			s.emit(CueLurking)
		}
	}
	return hp
}

// RemoveHazard deletes a hazard, stopping the lurking loop when the last
// shark goes.
func (s *Session) RemoveHazard(id EntityID) {
	h, ok := s.Hazards.Get(id)
	if !ok {
		return
	}
	s.Hazards.Remove(id)
	if h.Kind == HazardShark {
		s.sharkCount--
		if s.sharkCount == 0 {
			s.stopCue(CueLurking)
		}
	}
}

// RemovePlatform deletes a platform and the coins and strikes that sit on it.
func (s *Session) RemovePlatform(id EntityID) {
	s.Platforms.Remove(id)
	for hid, h := range s.Hazards.All() {
		if h.Parent == id && h.Kind != HazardShark {
			s.RemoveHazard(hid)
		}
	}
}

// Count returns the number of live hazards of the given kind.
func (s *Session) Count(kind HazardKind) int {
	n := 0
	for _, h := range s.Hazards.All() {
		if h.Kind == kind && h.State != HazardGone {
			n++
		}
	}
	return n
}

// updatePlatforms advances sinking icebergs.
func (s *Session) updatePlatforms(dt float64) {
	if s.halted {
		return
	}
	for id, p := range s.Platforms.All() {
		switch p.State {
		case PlatformLanded:
			p.State = PlatformSinking
		case PlatformSinking:
			p.SinkElapsed += dt
			if p.SinkElapsed >= p.SinkDuration {
				p.State = PlatformGone
				s.RemovePlatform(id)
			}
		}
	}
}

// updateCamera eases the camera toward the player and decays the shake.
func (s *Session) updateCamera(dt float64) {
	c := &s.Camera
	if c.shakeLeft > 0 {
		c.shakeLeft -= dt
		amp := c.shakeAmp
		c.Offset = core.V((s.fx.Float64()*2-1)*amp, (s.fx.Float64()*2-1)*amp)
		if c.shakeLeft <= 0 {
			c.Offset = core.Vec2{}
		}
	}
	if c.Frozen {
		return
	}
	target := core.V(s.Player.Pos.X*0.5, s.Player.Pos.Y+s.ViewH/6)
	k := 1.0
	if s.Cfg.Physics.CameraPan > 0 {
		k = core.ClampF(dt/s.Cfg.Physics.CameraPan, 0, 1)
	}
	c.Pos = core.V(core.Lerp(c.Pos.X, target.X, k), core.Lerp(c.Pos.Y, target.Y, k))
}

// setStormBob switches every platform between calm and storm bobbing.
func (s *Session) setStormBob(on bool) {
	for _, p := range s.Platforms.All() {
		p.StormBob = on
	}
}
