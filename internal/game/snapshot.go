package game

// Snapshot is a serializable summary of a session, used by the headless
// simulator and by tests.
type Snapshot struct {
	Time          float64 `yaml:"time"`
	Score         int     `yaml:"score"`
	Coins         int     `yaml:"coins"`
	LifetimeCoins int     `yaml:"lifetime_coins"`
	HighScore     int     `yaml:"high_score"`
	NewHigh       bool    `yaml:"new_high"`
	Charge        float64 `yaml:"charge"`
	Difficulty    float64 `yaml:"difficulty"`
	Height        float64 `yaml:"height"`
	Landings      int     `yaml:"landings"`
	Storms        int     `yaml:"storms"`
	StormPhase    string  `yaml:"storm_phase"`
	Intensity     float64 `yaml:"intensity"`
	Wind          float64 `yaml:"wind"`
	PlayerX       float64 `yaml:"player_x"`
	PlayerY       float64 `yaml:"player_y"`
	InAir         bool    `yaml:"in_air"`
	OnPlatform    bool    `yaml:"on_platform"`
	Character     string  `yaml:"character"`
	Platforms     int     `yaml:"platforms"`
	CoinsOnField  int     `yaml:"coins_on_field"`
	Lightning     int     `yaml:"lightning"`
	Sharks        int     `yaml:"sharks"`
	Over          bool    `yaml:"over"`
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Time:          s.Time,
		Score:         s.Score.Score,
		Coins:         s.Score.SessionCoins,
		LifetimeCoins: s.Score.LifetimeCoins,
		HighScore:     s.Score.HighScore,
		NewHigh:       s.Score.NewHigh,
		Charge:        s.Score.Charge,
		Difficulty:    s.Difficulty,
		Height:        s.Height(),
		Landings:      s.Score.Landings,
		Storms:        s.Score.Storms,
		StormPhase:    s.Storm.Phase().String(),
		Intensity:     s.Storm.Intensity,
		Wind:          s.Storm.WindSpeed,
		PlayerX:       s.Player.Pos.X,
		PlayerY:       s.Player.Pos.Y,
		InAir:         s.Player.InAir,
		OnPlatform:    s.Player.OnPlatform,
		Character:     s.Player.Character.ID,
		Platforms:     s.Platforms.Len(),
		CoinsOnField:  s.Count(HazardCoin),
		Lightning:     s.Count(HazardLightning),
		Sharks:        s.Count(HazardShark),
		Over:          s.Over,
	}
}

// Snapshot captures the running session, or the zero value before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}
