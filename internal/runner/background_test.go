package runner

import (
	"testing"

	"github.com/vovakirdan/dusk-runner/internal/config"
)

func TestBackgroundWrap(t *testing.T) {
	b := NewBackground(config.DefaultRunnerConfig().Background)

	b.Update(4798) // 0.5 px/ms
	if b.X != -2399 {
		t.Fatalf("X = %v, expected -2399", b.X)
	}
	b.Update(1)
	if b.X != -2399.5 {
		t.Fatalf("X = %v, expected -2399.5", b.X)
	}
	b.Update(1)
	if b.X != 0 {
		t.Errorf("X = %v, expected wrap to 0 at -width", b.X)
	}
}

func TestBackgroundNeverPastOneTile(t *testing.T) {
	b := NewBackground(config.DefaultRunnerConfig().Background)
	for _, dt := range []float64{0, 16, 33, 1000, 4800, 9000, 16, 250} {
		b.Update(dt)
		if b.X <= -b.Width || b.X > 0 {
			t.Errorf("after Update(%v) X = %v, expected within (-%v, 0]", dt, b.X, b.Width)
		}
	}
}

func TestBackgroundDrawAndRestart(t *testing.T) {
	b := NewBackground(config.DefaultRunnerConfig().Background)
	b.Update(100)

	s := &recordingSurface{}
	b.Draw(s)
	if len(s.sprites) != 2 {
		t.Fatalf("Draw() made %d blits, expected 2", len(s.sprites))
	}
	if s.sprites[0].dst.X != -50 {
		t.Errorf("first copy X = %v, expected -50", s.sprites[0].dst.X)
	}
	if got, want := s.sprites[1].dst.X, -50+2400-0.5; got != want {
		t.Errorf("second copy X = %v, expected %v", got, want)
	}

	b.Restart()
	if b.X != 0 {
		t.Errorf("Restart() left X = %v", b.X)
	}
}
