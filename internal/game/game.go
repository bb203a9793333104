// Package game implements the Penguin Jump simulation: a penguin jumps up
// a field of sinking icebergs, collects coins that charge up storms, and
// avoids lightning strikes and sharks.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/penguin-jump/internal/config"
	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

// Options wires the game to its collaborators. Every field is optional.
type Options struct {
	Config *config.PenguinConfig
	Store  ProfileStore
	Cues   CueSink
	Logger *log.Logger
	Now    func() time.Time
	Player string // Name recorded with each run
}

// Game implements registry.Game.
type Game struct {
	opts    Options
	cfg     config.PenguinConfig
	runtime core.RuntimeConfig
	clock   *core.Clock
	session *Session
	profile Profile
	paused  bool
}

var _ registry.Game = (*Game)(nil)

// New creates a new Penguin Jump game. Call Reset before Step.
func New(opts Options) *Game {
	if opts.Config == nil {
		def := config.DefaultConfig()
		opts.Config = &def
	}
	if opts.Cues == nil {
		opts.Cues = nopSink{}
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Game{
		opts:    opts,
		cfg:     *opts.Config,
		profile: DefaultProfile(),
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "penguin"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Penguin Jump"
}

// Reset reads the profile and starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	if cfg.FixedStep {
		g.clock = core.NewFixedClock(cfg.TickRate)
	} else {
		g.clock = core.NewClock()
	}

	if g.opts.Store != nil {
		p, err := g.opts.Store.LoadProfile()
		if err != nil {
			// Keep whatever was last known in memory.
			g.opts.Logger.Warn("could not load profile", "error", err)
		} else {
			g.profile = p
		}
	}

	character := registry.Lookup(g.profile.SelectedCharacter)
	if !g.profile.IsUnlocked(character) {
		g.opts.Logger.Warn("selected character is locked", "character", character.ID)
		character = registry.Lookup(registry.DefaultCharacterID)
	}

	g.session = NewSession(SessionParams{
		Config:       &g.cfg,
		Seed:         cfg.Seed,
		ScreenW:      cfg.ScreenW,
		ScreenH:      cfg.ScreenH,
		Profile:      g.profile,
		Character:    character,
		Store:        g.opts.Store,
		Cues:         g.opts.Cues,
		Logger:       g.opts.Logger,
		SoundEnabled: g.profile.SoundEffectsEnabled,
		PlayerName:   g.opts.Player,
	})
	g.opts.Logger.Debug("run started", "seed", cfg.Seed, "character", character.ID)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	if in.Has(core.ActionPause) && !g.session.Over {
		g.SetPaused(!g.paused)
	}

	dt := g.clock.Tick(g.opts.Now())
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Advance(in, dt, g.runtime.Debug)
	g.profile.TotalCoins = g.session.Score.LifetimeCoins
	g.profile.HighScore = g.session.Score.HighScore

	return core.StepResult{State: g.State(), Dt: dt}
}

// SetPaused suspends or resumes the simulation. Resuming never produces a
// time jump: the first tick after resume is a zero-length correction tick.
func (g *Game) SetPaused(paused bool) {
	if g.paused == paused || g.clock == nil {
		return
	}
	g.paused = paused
	if paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{HighScore: g.profile.HighScore}
	}
	s := g.session
	return core.GameState{
		Score:     s.Score.Score,
		Coins:     s.Score.SessionCoins,
		HighScore: s.Score.HighScore,
		NewHigh:   s.Score.NewHigh,
		Storming:  s.Storm.Active,
		GameOver:  s.ResultsReady,
		Paused:    g.paused,
	}
}

// Session exposes the running session for tests and the headless simulator.
func (g *Game) Session() *Session {
	return g.session
}

// Advance runs one frame of the simulation.
func (s *Session) Advance(in core.InputFrame, dt float64, debug bool) {
	s.Time += dt

	if s.Over {
		s.OverTimer += dt
		if s.OverTimer >= s.Cfg.Scoring.GameOverDelay {
			s.ResultsReady = true
		}
		s.Storm.Update(s, dt)
	} else {
		s.handleInput(in, debug)
		s.Difficulty = s.diff.Level(s.Height())
		s.advancePlayer(dt)
		s.Storm.Update(s, dt)
		Resolve(s, dt)
		s.updateHazards(dt)
		s.generator.Update(s)
		s.updateCamera(dt)
	}

	s.updateRain(dt)
	s.updatePlatforms(dt)
	s.Effects.Advance(s, dt)
}

func (s *Session) handleInput(in core.InputFrame, debug bool) {
	if in.Has(core.ActionLeft) {
		s.Steer(-1)
	}
	if in.Has(core.ActionRight) {
		s.Steer(1)
	}
	if in.Has(core.ActionJump) {
		s.Jump()
	}
	if !debug {
		return
	}
	if in.Has(core.ActionDebugStorm) {
		s.Storm.Begin(s)
	}
	if in.Has(core.ActionDebugLightning) {
		s.spawner.SpawnDebug(s, HazardLightning)
	}
	if in.Has(core.ActionDebugShark) {
		s.spawner.SpawnDebug(s, HazardShark)
	}
	if in.Has(core.ActionDebugMoney) {
		s.Score.LifetimeCoins += 1000
		if s.store != nil {
			if err := s.store.AddCoins(1000); err != nil {
				s.logger.Warn("could not save coins", "error", err)
			}
		}
	}
}
