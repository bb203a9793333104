// Package config provides YAML/TOML game configuration loading and
// difficulty management for Penguin Jump.
package config

// PenguinConfig contains every tunable of the simulation.
// World distances are in world units; times are in seconds.
type PenguinConfig struct {
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Platforms  PlatformConfig   `yaml:"platforms" toml:"platforms"`
	Storm      StormConfig      `yaml:"storm" toml:"storm"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Charge     ChargeConfig     `yaml:"charge" toml:"charge"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Render     RenderConfig     `yaml:"render" toml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PhysicsConfig defines player motion and camera behavior.
type PhysicsConfig struct {
	JumpDistance    float64 `yaml:"jump_distance" toml:"jump_distance"`         // Upward travel of one jump
	AirTime         float64 `yaml:"air_time" toml:"air_time"`                   // Seconds spent airborne per jump
	SteerSpeed      float64 `yaml:"steer_speed" toml:"steer_speed"`             // Horizontal speed at full aim
	AimStep         float64 `yaml:"aim_step" toml:"aim_step"`                   // Aim change per steer key press
	DoubleJumpNudge float64 `yaml:"double_jump_nudge" toml:"double_jump_nudge"` // Nudge distance of the double jump
	NudgeRate       float64 `yaml:"nudge_rate" toml:"nudge_rate"`               // Units per second of the nudge
	CameraPan       float64 `yaml:"camera_pan" toml:"camera_pan"`               // Seconds for the camera to catch up
	ShakeDuration   float64 `yaml:"shake_duration" toml:"shake_duration"`
	ShakeMax        float64 `yaml:"shake_max" toml:"shake_max"`
}

// PlatformConfig defines iceberg generation.
type PlatformConfig struct {
	Spacing        float64 `yaml:"spacing" toml:"spacing"` // Vertical cadence between rows
	MinWidth       float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth       float64 `yaml:"max_width" toml:"max_width"`
	MinHeight      float64 `yaml:"min_height" toml:"min_height"`
	MaxHeight      float64 `yaml:"max_height" toml:"max_height"`
	MaxShift       float64 `yaml:"max_shift" toml:"max_shift"`               // Max horizontal offset from the previous row
	FieldHalfWidth float64 `yaml:"field_half_width" toml:"field_half_width"` // Platforms stay within ±this
	FirstWidth     float64 `yaml:"first_width" toml:"first_width"`
	FirstHeight    float64 `yaml:"first_height" toml:"first_height"`
	BoundaryOffset float64 `yaml:"boundary_offset" toml:"boundary_offset"` // X offset of the left/right start bergs
	BaseSink       float64 `yaml:"base_sink" toml:"base_sink"`             // Sink seconds at difficulty 0
	SinkDifficulty float64 `yaml:"sink_difficulty" toml:"sink_difficulty"` // Seconds removed at difficulty 1
	CullScreens    float64 `yaml:"cull_screens" toml:"cull_screens"`       // Cull below camera by this many screens
}

// StormConfig defines the storm cycle and its weather.
type StormConfig struct {
	Duration           float64 `yaml:"duration" toml:"duration"`
	TransitionDuration float64 `yaml:"transition_duration" toml:"transition_duration"`
	RampRate           float64 `yaml:"ramp_rate" toml:"ramp_rate"`
	WindMax            float64 `yaml:"wind_max" toml:"wind_max"`
	RainMax            float64 `yaml:"rain_max" toml:"rain_max"`   // Drops per second cap
	RainBase           float64 `yaml:"rain_base" toml:"rain_base"` // Exponential base of the rain ramp
}

// SpawnConfig defines hazard and coin spawning.
type SpawnConfig struct {
	CoinOdds            int     `yaml:"coin_odds" toml:"coin_odds"` // One in N platforms carries a coin
	LightningBase       float64 `yaml:"lightning_base" toml:"lightning_base"`
	LightningDifficulty float64 `yaml:"lightning_difficulty" toml:"lightning_difficulty"`
	SharkOffset         float64 `yaml:"shark_offset" toml:"shark_offset"`
	SharkSpeed          float64 `yaml:"shark_speed" toml:"shark_speed"`
	SharkCullScreens    float64 `yaml:"shark_cull_screens" toml:"shark_cull_screens"`
	StrikeTrigger       float64 `yaml:"strike_trigger" toml:"strike_trigger"` // Player distance below a cloud that starts a strike
	StrikeWarmup        float64 `yaml:"strike_warmup" toml:"strike_warmup"`
	StrikeActive        float64 `yaml:"strike_active" toml:"strike_active"`
	StrikeWidth         float64 `yaml:"strike_width" toml:"strike_width"`
	StrikeHeight        float64 `yaml:"strike_height" toml:"strike_height"`
	PushDuration        float64 `yaml:"push_duration" toml:"push_duration"`
	KillPull            float64 `yaml:"kill_pull" toml:"kill_pull"` // Seconds the shark drags the player
}

// ScoringConfig defines score awards and the results hand-off.
type ScoringConfig struct {
	Landing       int     `yaml:"landing" toml:"landing"`
	Coin          int     `yaml:"coin" toml:"coin"`
	StormCoin     int     `yaml:"storm_coin" toml:"storm_coin"`
	GameOverDelay float64 `yaml:"game_over_delay" toml:"game_over_delay"`
}

// ChargeConfig defines the charge accumulator and coin particles.
type ChargeConfig struct {
	Capacity        float64 `yaml:"capacity" toml:"capacity"`
	Drain           float64 `yaml:"drain" toml:"drain"` // Units per second while calm
	Particles       int     `yaml:"particles" toml:"particles"`
	ParticleValue   float64 `yaml:"particle_value" toml:"particle_value"`
	Rise            float64 `yaml:"rise" toml:"rise"`
	ParticleStagger float64 `yaml:"particle_stagger" toml:"particle_stagger"`
	ParticleTravel  float64 `yaml:"particle_travel" toml:"particle_travel"`
}

// PlayerConfig defines the penguin's collision boxes.
type PlayerConfig struct {
	BodyWidth    float64 `yaml:"body_width" toml:"body_width"`
	BodyHeight   float64 `yaml:"body_height" toml:"body_height"`
	ShadowWidth  float64 `yaml:"shadow_width" toml:"shadow_width"`
	ShadowHeight float64 `yaml:"shadow_height" toml:"shadow_height"`
	CoinSize     float64 `yaml:"coin_size" toml:"coin_size"`
	WaveWidth    float64 `yaml:"wave_width" toml:"wave_width"`
	WaveHeight   float64 `yaml:"wave_height" toml:"wave_height"`
}

// RenderConfig maps world units onto terminal cells.
type RenderConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column" toml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row" toml:"units_per_row"`
}

// DifficultyConfig defines the difficulty curve.
//
// Level = Floor + (1-Floor) * (1 - Base^height). With Floor 0 this is the
// plain exponential approach toward 1.
type DifficultyConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Base    float64 `yaml:"base" toml:"base"`
	Floor   float64 `yaml:"floor" toml:"floor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// FloorForPreset returns the difficulty floor for a preset.
func FloorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string keeps the
// configured curve untouched.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset pins the level at the current floor.
func ApplyPreset(cfg *PenguinConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Floor = FloorForPreset(preset)
	}
}
