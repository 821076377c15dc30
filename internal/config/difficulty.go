package config

import "math"

const (
	minGap     = 4.0  // Minimum playable pipe gap
	minSpacing = 15.0 // Minimum playable pipe spacing
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales base from base to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(base float64, score int, ticks uint64) float64 {
	return base * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Chance scales a per-tick spawn probability, capped at 1.
func (d *DifficultyManager) Chance(base float64, score int, ticks uint64) float64 {
	return math.Min(1, base*(1.0+d.Level(score, ticks)*d.cfg.Scaling.SpawnMultiplier))
}

// GapSize shrinks a pipe gap with difficulty.
func (d *DifficultyManager) GapSize(base float64, score int, ticks uint64) float64 {
	v := base - math.Floor(d.Level(score, ticks)*float64(d.cfg.Scaling.GapReduction))
	return math.Max(minGap, v)
}

// Spacing shrinks obstacle spacing with difficulty.
func (d *DifficultyManager) Spacing(base float64, score int, ticks uint64) float64 {
	v := base - math.Floor(d.Level(score, ticks)*float64(d.cfg.Scaling.SpacingReduction))
	return math.Max(minSpacing, v)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
