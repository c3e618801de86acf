package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig() differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("enemy:\n  speed: 1.5\nspawn:\n  reroll_jitter: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Enemy.Speed != 1.5 {
		t.Errorf("Enemy.Speed = %v, expected 1.5", cfg.Enemy.Speed)
	}
	if !cfg.Spawn.RerollJitter {
		t.Error("Spawn.RerollJitter should be overridden to true")
	}
	// Keys absent from the file keep their defaults
	if cfg.Player.Width != 200 {
		t.Errorf("Player.Width = %v, expected default 200", cfg.Player.Width)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadRunner() should fail for a missing explicit path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadRunnerInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRunner(path); err == nil {
		t.Error("LoadRunner() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		valid  bool
	}{
		{"defaults", func(*RunnerConfig) {}, true},
		{"zero player width", func(c *RunnerConfig) { c.Player.Width = 0 }, false},
		{"negative spawn interval", func(c *RunnerConfig) { c.Spawn.IntervalMs = -1 }, false},
		{"zero swipe threshold", func(c *RunnerConfig) { c.Input.SwipeThreshold = 0 }, false},
		{"negative jitter", func(c *RunnerConfig) { c.Spawn.JitterRangeMs = -10 }, false},
		{"negative max frame", func(c *RunnerConfig) { c.Enemy.MaxFrame = -1 }, false},
		{"unknown progression", func(c *RunnerConfig) { c.Difficulty.Progression.Type = "level" }, false},
		{"zero jitter", func(c *RunnerConfig) { c.Spawn.JitterMinMs, c.Spawn.JitterRangeMs = 0, 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave config unchanged")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Error("marshalled defaults should decode back to defaults")
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  speed: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("enemy:\n  speed: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Reloads:
		if cfg.Enemy.Speed != 2 {
			t.Errorf("reloaded Enemy.Speed = %v, expected 2", cfg.Enemy.Speed)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
