// Package config provides YAML-based runner configuration loading, validation,
// difficulty presets, and hot reload.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RunnerConfig contains all tuning for the endless runner.
type RunnerConfig struct {
	Background BackgroundConfig `yaml:"background"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	TUI        TUIConfig        `yaml:"tui"`
}

// BackgroundConfig defines the scrolling tile.
type BackgroundConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // px per ms
}

// PlayerConfig defines the player's size, motion and animation.
type PlayerConfig struct {
	StartX         float64      `yaml:"start_x"`
	Width          float64      `yaml:"width"`
	Height         float64      `yaml:"height"`
	InitialVelX    float64      `yaml:"initial_vel_x"`
	RunSpeed       float64      `yaml:"run_speed"`    // px per ms while left/right is held
	JumpImpulse    float64      `yaml:"jump_impulse"` // subtracted from velY on jump
	Weight         float64      `yaml:"weight"`       // added to velY every airborne frame
	FPS            float64      `yaml:"fps"`
	GroundMaxFrame int          `yaml:"ground_max_frame"`
	AirMaxFrame    int          `yaml:"air_max_frame"`
	Hitbox         HitboxConfig `yaml:"hitbox"`
}

// EnemyConfig defines the obstacle.
type EnemyConfig struct {
	Width    float64      `yaml:"width"`
	Height   float64      `yaml:"height"`
	Speed    float64      `yaml:"speed"` // px per ms
	FPS      float64      `yaml:"fps"`
	MaxFrame int          `yaml:"max_frame"`
	Hitbox   HitboxConfig `yaml:"hitbox"`
}

// HitboxConfig biases the collision circle away from the sprite center.
// The radius is width / RadiusDivisor.
type HitboxConfig struct {
	OffsetX       float64 `yaml:"offset_x"`
	OffsetY       float64 `yaml:"offset_y"`
	RadiusDivisor float64 `yaml:"radius_divisor"`
}

// SpawnConfig defines the enemy spawn timer.
type SpawnConfig struct {
	IntervalMs    float64 `yaml:"interval_ms"`
	JitterMinMs   float64 `yaml:"jitter_min_ms"`
	JitterRangeMs float64 `yaml:"jitter_range_ms"`
	// RerollJitter draws a fresh jitter after every spawn instead of once per load.
	RerollJitter bool `yaml:"reroll_jitter"`
}

// InputConfig defines key and swipe handling.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"`
	// LegacyKeyList keeps the old key list behavior: index-0 dedup
	// and removal of the last entry when an absent key is released.
	LegacyKeyList bool `yaml:"legacy_key_list"`
}

// TUIConfig holds terminal host settings.
type TUIConfig struct {
	// KeyHoldMs is how long a key press counts as held. Terminals report no
	// key release, so presses are expired after this delay.
	KeyHoldMs int `yaml:"key_hold_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or elapsed ms at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added to enemy speed factor at max difficulty
	IntervalReductionMs float64 `yaml:"interval_reduction_ms"` // Spawn interval cut at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means keep the config.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset disables progression and leaves the base speeds untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks that sizes, speeds and timers are usable.
func (c RunnerConfig) Validate() error {
	positives := []struct {
		name string
		val  float64
	}{
		{"background.width", c.Background.Width},
		{"background.height", c.Background.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.fps", c.Player.FPS},
		{"player.hitbox.radius_divisor", c.Player.Hitbox.RadiusDivisor},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.speed", c.Enemy.Speed},
		{"enemy.fps", c.Enemy.FPS},
		{"enemy.hitbox.radius_divisor", c.Enemy.Hitbox.RadiusDivisor},
		{"spawn.interval_ms", c.Spawn.IntervalMs},
		{"input.swipe_threshold", c.Input.SwipeThreshold},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.val, ErrInvalidConfig)
		}
	}

	if c.Player.GroundMaxFrame < 0 || c.Player.AirMaxFrame < 0 || c.Enemy.MaxFrame < 0 {
		return fmt.Errorf("config: max frame indices must not be negative: %w", ErrInvalidConfig)
	}
	if c.Spawn.JitterMinMs < 0 || c.Spawn.JitterRangeMs < 0 {
		return fmt.Errorf("config: spawn jitter must not be negative: %w", ErrInvalidConfig)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q: %w", c.Difficulty.Progression.Type, ErrInvalidConfig)
	}
	return nil
}
