package config

import (
	"math"
	"testing"
)

func progressionConfig() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReductionMs: 1000},
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(1, 500, 1e6); got != 1 {
		t.Errorf("Speed() = %v, expected base 1", got)
	}
	if got := d.SpawnInterval(3000, 500, 1e6); got != 3000 {
		t.Errorf("SpawnInterval() = %v, expected base 3000", got)
	}
}

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(progressionConfig())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{100, 1}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	cfg := progressionConfig()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 60000}
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 30000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(30s) = %v, expected 0.75", got)
	}
}

func TestDifficultySpeedAndInterval(t *testing.T) {
	d := NewDifficultyManager(progressionConfig())

	if got := d.Speed(1, 10, 0); got != 2 {
		t.Errorf("Speed at max = %v, expected 2", got)
	}
	if got := d.SpawnInterval(3000, 10, 0); got != 2000 {
		t.Errorf("SpawnInterval at max = %v, expected 2000", got)
	}

	cfg := progressionConfig()
	cfg.Scaling.IntervalReductionMs = 5000
	d = NewDifficultyManager(cfg)
	if got := d.SpawnInterval(3000, 10, 0); got != minSpawnIntervalMs {
		t.Errorf("SpawnInterval floor = %v, expected %v", got, minSpawnIntervalMs)
	}
}
