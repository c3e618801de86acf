package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration. It mirrors
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Background: BackgroundConfig{
			Width:  2400,
			Height: 720,
			Speed:  0.5,
		},
		Player: PlayerConfig{
			StartX:         100,
			Width:          200,
			Height:         200,
			InitialVelX:    0.1,
			RunSpeed:       0.5,
			JumpImpulse:    2,
			Weight:         0.03,
			FPS:            20,
			GroundMaxFrame: 7,
			AirMaxFrame:    4,
			Hitbox: HitboxConfig{
				OffsetX:       0,
				OffsetY:       20,
				RadiusDivisor: 3,
			},
		},
		Enemy: EnemyConfig{
			Width:    160,
			Height:   119,
			Speed:    1,
			FPS:      20,
			MaxFrame: 4,
			Hitbox: HitboxConfig{
				OffsetX:       -20,
				OffsetY:       0,
				RadiusDivisor: 3,
			},
		},
		Spawn: SpawnConfig{
			IntervalMs:    3000,
			JitterMinMs:   500,
			JitterRangeMs: 1000,
		},
		Input: InputConfig{
			SwipeThreshold: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     1.0,
				IntervalReductionMs: 1500,
			},
		},
		TUI: TUIConfig{
			KeyHoldMs: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
