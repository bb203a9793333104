package config

import "math"

// maxLevel is the largest float64 below 1.
var maxLevel = math.Nextafter(1, 0)

// Curve is the raw difficulty curve 1 - base^height.
// Negative heights count as zero, so the result is in [0, 1).
func Curve(base, height float64) float64 {
	if height <= 0 || math.IsNaN(height) {
		return 0
	}
	return math.Min(-math.Expm1(height*math.Log(base)), maxLevel)
}

// DifficultyManager maps climbed height onto a difficulty level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.Base <= 0 || cfg.Base >= 1 {
		cfg.Base = DefaultConfig().Difficulty.Base
	}
	cfg.Floor = clampF(cfg.Floor, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty grows with height.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Floor returns the lowest level the manager reports.
func (d *DifficultyManager) Floor() float64 {
	return d.cfg.Floor
}

// Level returns the difficulty in [0, 1) at the given height.
func (d *DifficultyManager) Level(height float64) float64 {
	if !d.cfg.Enabled {
		return math.Min(d.cfg.Floor, maxLevel)
	}
	return math.Min(d.cfg.Floor+(1-d.cfg.Floor)*Curve(d.cfg.Base, height), maxLevel)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
