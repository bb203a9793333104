package core

// RuntimeConfig is passed to the game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay

	// FixedStep makes every tick advance exactly 1/TickRate seconds
	// regardless of wall time. Used by the headless simulator and tests.
	FixedStep bool

	// Debug enables the debug actions (force storm, spawn hazards, coins).
	Debug bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform needs to drive menus and the HUD.
type GameState struct {
	Score     int  // Current run score
	Coins     int  // Coins picked up this run
	HighScore int  // Best score known to the profile
	NewHigh   bool // The run beat the stored high score
	Storming  bool
	GameOver  bool // Results view should be shown
	Paused    bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Dt    float64 // Seconds simulated by this step
}
