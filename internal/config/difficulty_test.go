package config

import (
	"math"
	"testing"
)

func testDifficulty(kind string) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: kind, MaxAt: 100},
		Scaling: ScalingConfig{
			SpeedMultiplier:  1.0,
			SpawnMultiplier:  1.0,
			GapReduction:     4,
			SpacingReduction: 20,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		score    int
		ticks    uint64
		expected float64
	}{
		{"score start", "score", 0, 0, 0},
		{"score half", "score", 50, 0, 0.5},
		{"score capped", "score", 500, 0, 1},
		{"time half", "time", 0, 50, 0.5},
		{"none ignores progress", "none", 500, 500, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(testDifficulty(tc.kind))
			if got := d.Level(tc.score, tc.ticks); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := testDifficulty("score")
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) = %f, expected 0.5", got)
	}
	if got := d.Level(50, 0); got != 0.75 {
		t.Errorf("Level(50) = %f, expected 0.75", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(testDifficulty("score"))

	if got := d.Speed(10, 100, 0); got != 20 {
		t.Errorf("Speed() at max = %f, expected 20", got)
	}
	if got := d.Chance(0.8, 100, 0); got != 1 {
		t.Errorf("Chance() = %f, expected capped at 1", got)
	}
	if got := d.GapSize(10, 100, 0); got != 6 {
		t.Errorf("GapSize() = %f, expected 6", got)
	}
	if got := d.GapSize(5, 100, 0); got != minGap {
		t.Errorf("GapSize() = %f, expected floor %f", got, minGap)
	}
	if got := d.Spacing(40, 50, 0); got != 30 {
		t.Errorf("Spacing() = %f, expected 30", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty("score")
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Speed(10, 1000, 0); got != 10 {
		t.Errorf("Speed() = %f, expected base speed", got)
	}
}
