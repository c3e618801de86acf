package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
)

func newTestSpawner(mutate func(*config.RunnerConfig)) *Spawner {
	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSpawner(cfg.Spawn, cfg.Enemy, config.NewDifficultyManager(cfg.Difficulty),
		rand.New(rand.NewSource(42)), core.WorldWidth, core.WorldHeight)
}

func TestSpawnerJitterRange(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		cfg := config.DefaultRunnerConfig()
		s := NewSpawner(cfg.Spawn, cfg.Enemy, config.NewDifficultyManager(cfg.Difficulty),
			rand.New(rand.NewSource(seed)), core.WorldWidth, core.WorldHeight)
		if j := s.Jitter(); j < 500 || j >= 1500 {
			t.Errorf("seed %d: Jitter() = %v, expected [500, 1500)", seed, j)
		}
	}
}

func TestSpawnerTimer(t *testing.T) {
	s := newTestSpawner(func(c *config.RunnerConfig) {
		c.Spawn.JitterMinMs = 500
		c.Spawn.JitterRangeMs = 0
	})

	s.Update(3500, 0, 0)
	s.Update(0, 0, 0)
	if n := len(s.Enemies()); n != 0 {
		t.Fatalf("spawned %d enemies with timer equal to the threshold", n)
	}
	s.Update(1, 0, 0)
	s.Update(0, 0, 0)
	if n := len(s.Enemies()); n != 1 {
		t.Fatalf("Enemies() = %d, expected 1 once the threshold is exceeded", n)
	}
	if s.Timer() != 0 {
		t.Errorf("Timer() = %v, expected reset to 0 after a spawn", s.Timer())
	}

	e := s.Enemies()[0]
	if e.X != core.WorldWidth || e.Y != core.WorldHeight-e.Height {
		t.Errorf("spawned at (%v, %v), expected right edge on the floor", e.X, e.Y)
	}
}

func TestSpawnerJitterReroll(t *testing.T) {
	static := newTestSpawner(nil)
	before := static.Jitter()
	for i := 0; i < 5; i++ {
		static.Update(10000, 0, 0)
	}
	if static.Jitter() != before {
		t.Errorf("static Jitter() changed from %v to %v", before, static.Jitter())
	}

	reroll := newTestSpawner(func(c *config.RunnerConfig) { c.Spawn.RerollJitter = true })
	before = reroll.Jitter()
	reroll.Update(10000, 0, 0) // timer passes the threshold
	reroll.Update(0, 0, 0)     // spawn and re-roll
	if reroll.Jitter() == before {
		t.Errorf("re-rolled Jitter() stayed at %v", before)
	}
	if j := reroll.Jitter(); j < 500 || j >= 1500 {
		t.Errorf("re-rolled Jitter() = %v, expected [500, 1500)", j)
	}
}

func TestSpawnerTuneJitterBounds(t *testing.T) {
	s := newTestSpawner(nil)
	cfg := config.DefaultRunnerConfig()
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	before := s.Jitter()
	cfg.Spawn.IntervalMs = 100
	s.Tune(cfg.Spawn, cfg.Enemy, difficulty)
	if s.Jitter() != before {
		t.Errorf("Jitter() = %v after an interval change, expected %v kept", s.Jitter(), before)
	}

	cfg.Spawn.JitterMinMs = 5000
	cfg.Spawn.JitterRangeMs = 0
	s.Tune(cfg.Spawn, cfg.Enemy, difficulty)
	if s.Jitter() != 5000 {
		t.Errorf("Jitter() = %v after new bounds, expected 5000", s.Jitter())
	}
}

func TestSpawnerCullPairsScore(t *testing.T) {
	s := newTestSpawner(nil)
	e := s.Spawn(0, 0)

	// 1300 -> -160 is exactly -width, still on the field.
	if culled := s.Update(1460, 0, 0); culled != 0 || e.CanDelete {
		t.Fatalf("at X=%v: culled = %d, CanDelete = %v", e.X, culled, e.CanDelete)
	}
	if culled := s.Update(1, 0, 0); culled != 1 || !e.CanDelete {
		t.Fatalf("at X=%v: culled = %d, CanDelete = %v", e.X, culled, e.CanDelete)
	}
	if len(s.Enemies()) != 0 {
		t.Errorf("Enemies() = %d after cull, expected 0", len(s.Enemies()))
	}
}

func TestSpawnerCullKeepsOrder(t *testing.T) {
	s := newTestSpawner(nil)
	a, b, c := s.Spawn(0, 0), s.Spawn(0, 0), s.Spawn(0, 0)
	b.CanDelete = true

	if n := s.Cull(); n != 1 {
		t.Errorf("Cull() = %d, expected 1", n)
	}
	got := s.Enemies()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Enemies() order broken after cull")
	}
}

func TestSpawnerDifficultySpeed(t *testing.T) {
	s := newTestSpawner(func(c *config.RunnerConfig) {
		config.ApplyPreset(c, config.DifficultyEasy)
		c.Difficulty.Progression.MaxAt = 10
	})
	if e := s.Spawn(0, 0); e.VelX != 1 {
		t.Errorf("score 0 VelX = %v, expected 1", e.VelX)
	}
	if e := s.Spawn(10, 0); e.VelX != 2 {
		t.Errorf("score 10 VelX = %v, expected 2", e.VelX)
	}
}

func TestSpawnerClear(t *testing.T) {
	s := newTestSpawner(nil)
	s.Spawn(0, 0)
	s.Update(100, 0, 0)
	timer := s.Timer()

	s.Clear()
	if len(s.Enemies()) != 0 {
		t.Errorf("Clear() left %d enemies", len(s.Enemies()))
	}
	if s.Timer() != timer {
		t.Errorf("Clear() reset the timer to %v", s.Timer())
	}
}
