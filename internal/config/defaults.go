package config

import (
	_ "embed"
)

//go:embed defaults/penguin.yaml
var defaultPenguinYAML []byte

// DefaultConfig returns the hard-coded Penguin Jump configuration.
// It matches defaults/penguin.yaml.
func DefaultConfig() PenguinConfig {
	return PenguinConfig{
		Physics: PhysicsConfig{
			JumpDistance:    110,
			AirTime:         0.6,
			SteerSpeed:      220,
			AimStep:         0.5,
			DoubleJumpNudge: 60,
			NudgeRate:       180,
			CameraPan:       0.125,
			ShakeDuration:   0.25,
			ShakeMax:        12,
		},
		Platforms: PlatformConfig{
			Spacing:        110,
			MinWidth:       96,
			MaxWidth:       160,
			MinHeight:      40,
			MaxHeight:      56,
			MaxShift:       150,
			FieldHalfWidth: 260,
			FirstWidth:     200,
			FirstHeight:    72,
			BoundaryOffset: 70,
			BaseSink:       7,
			SinkDifficulty: 3,
			CullScreens:    1,
		},
		Storm: StormConfig{
			Duration:           15,
			TransitionDuration: 2,
			RampRate:           0.3,
			WindMax:            70,
			RainMax:            80,
			RainBase:           5.3,
		},
		Spawn: SpawnConfig{
			CoinOdds:            3,
			LightningBase:       100,
			LightningDifficulty: 95,
			SharkOffset:         55,
			SharkSpeed:          45,
			SharkCullScreens:    1.2,
			StrikeTrigger:       40,
			StrikeWarmup:        1.0,
			StrikeActive:        0.6,
			StrikeWidth:         72,
			StrikeHeight:        40,
			PushDuration:        1.0,
			KillPull:            0.5,
		},
		Scoring: ScoringConfig{
			Landing:       1,
			Coin:          2,
			StormCoin:     4,
			GameOverDelay: 2,
		},
		Charge: ChargeConfig{
			Capacity:        100,
			Drain:           5,
			Particles:       5,
			ParticleValue:   4,
			Rise:            0.5,
			ParticleStagger: 0.2,
			ParticleTravel:  1.0,
		},
		Player: PlayerConfig{
			BodyWidth:    24,
			BodyHeight:   32,
			ShadowWidth:  22,
			ShadowHeight: 10,
			CoinSize:     16,
			WaveWidth:    56,
			WaveHeight:   16,
		},
		Render: RenderConfig{
			UnitsPerColumn: 8,
			UnitsPerRow:    16,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Base:    0.9995,
			Floor:   0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPenguinYAML
}
