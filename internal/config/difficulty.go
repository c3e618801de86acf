package config

import "math"

// minSpawnIntervalMs keeps enemies far enough apart to be jumpable.
const minSpawnIntervalMs = 1200

// DifficultyManager calculates dynamic game parameters based on score or elapsed time.
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

// Level returns the current difficulty level (0.0 to 1.0).
// elapsedMs is the run time in milliseconds.
func (d *DifficultyManager) Level(score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsedMs / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the enemy speed for the current difficulty. With progression
// disabled the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return baseSpeed
	}
	level := d.Level(score, elapsedMs)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the base spawn interval for the current difficulty.
func (d *DifficultyManager) SpawnInterval(baseMs float64, score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return baseMs
	}
	level := d.Level(score, elapsedMs)
	result := baseMs - level*d.cfg.Scaling.IntervalReductionMs
	if result < minSpawnIntervalMs {
		result = math.Min(baseMs, minSpawnIntervalMs)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
