package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
)

type spriteCall struct {
	id       SpriteID
	src, dst core.RectF
}

type textCall struct {
	text  string
	x, y  float64
	style TextStyle
}

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	clears  int
	sprites []spriteCall
	texts   []textCall
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.sprites = s.sprites[:0]
	s.texts = s.texts[:0]
}

func (s *recordingSurface) DrawSprite(id SpriteID, src, dst core.RectF) {
	s.sprites = append(s.sprites, spriteCall{id, src, dst})
}

func (s *recordingSurface) FillText(text string, x, y float64, style TextStyle) {
	s.texts = append(s.texts, textCall{text, x, y, style})
}

// ghostConfig shrinks hitboxes to points that never meet and stops spawning,
// so tests decide exactly which enemies exist.
func ghostConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.Hitbox.RadiusDivisor = 1e9
	cfg.Enemy.Hitbox.RadiusDivisor = 1e9
	cfg.Spawn.IntervalMs = 1e12
	return cfg
}

// collide puts an enemy on top of the player.
func collide(g *Game) *Enemy {
	e := g.State().Spawner.Spawn(0, 0)
	e.X = g.State().Player.X
	return e
}

func TestEnemyPassScoresOnce(t *testing.T) {
	g := New(ghostConfig(), 1)
	e := g.State().Spawner.Spawn(0, 0)
	if e.X != core.WorldWidth {
		t.Fatalf("enemy spawned at X = %v, expected %v", e.X, core.WorldWidth)
	}

	ts := 0.0
	for len(g.State().Spawner.Enemies()) > 0 {
		if g.State().Score != 0 {
			t.Fatalf("score %d while enemy at X = %v", g.State().Score, e.X)
		}
		ts += 16
		g.Frame(ts, nil)
		if ts > 10000 {
			t.Fatal("enemy never left the field")
		}
	}

	if !e.CanDelete || e.X >= -e.Width {
		t.Errorf("culled enemy: X = %v, CanDelete = %v", e.X, e.CanDelete)
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
	if g.State().GameOver {
		t.Error("ghost hitboxes should never collide")
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), 1)
	g.Frame(16, nil)
	collide(g)

	g.Frame(32, nil)
	if !g.Snapshot().GameOver {
		t.Fatal("overlapping enemy should end the run")
	}
	if g.Running() {
		t.Error("loop should halt on game over")
	}

	last := g.State().LastTime
	x := g.State().Background.X
	g.Frame(1000, nil)
	if g.State().LastTime != last || g.State().Background.X != x {
		t.Error("Frame() advanced a halted game")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), 1)
	clock := time.Unix(0, 0)
	g.now = func() time.Time { return clock }
	g.start = clock

	clock = clock.Add(500 * time.Millisecond)
	g.Tick(nil)
	collide(g)
	clock = clock.Add(16 * time.Millisecond)
	g.Tick(nil)
	if !g.Snapshot().GameOver {
		t.Fatal("expected game over before restart")
	}
	g.State().Score = 7

	clock = clock.Add(time.Second)
	g.Input().KeyDown(KeyEnter)

	st := g.State()
	if st.Score != 0 || st.GameOver {
		t.Errorf("after restart: score %d, game over %v", st.Score, st.GameOver)
	}
	if n := len(st.Spawner.Enemies()); n != 0 {
		t.Errorf("after restart: %d enemies, expected 0", n)
	}
	if st.Background.X != 0 {
		t.Errorf("after restart: background X = %v, expected 0", st.Background.X)
	}
	if st.Player.X != 100 || st.Player.Y != st.Player.Floor() {
		t.Errorf("after restart: player at (%v, %v), expected (100, %v)", st.Player.X, st.Player.Y, st.Player.Floor())
	}
	if st.LastTime != 0 || !g.Running() {
		t.Errorf("after restart: LastTime = %v, running = %v", st.LastTime, g.Running())
	}

	// The clock restarts at 0, so the next frame sees only the time since restart.
	clock = clock.Add(16 * time.Millisecond)
	g.Tick(nil)
	if st.LastTime != 16 {
		t.Errorf("first frame after restart at %v ms, expected 16", st.LastTime)
	}
}

func TestNegativeDeltaIsZero(t *testing.T) {
	g := New(ghostConfig(), 1)
	g.Frame(1000, nil)
	x := g.State().Background.X

	g.Frame(500, nil)
	if g.State().Background.X != x {
		t.Errorf("background moved on a backwards timestamp: %v -> %v", x, g.State().Background.X)
	}
}

func TestDrawOrderAndStatus(t *testing.T) {
	g := New(ghostConfig(), 1)
	g.State().Spawner.Spawn(0, 0)
	s := &recordingSurface{}

	g.Frame(16, s)
	if s.clears != 1 {
		t.Errorf("Clear() called %d times, expected 1", s.clears)
	}
	ids := []SpriteID{SpriteBackground, SpriteBackground, SpritePlayer, SpriteEnemy}
	if len(s.sprites) != len(ids) {
		t.Fatalf("drew %d sprites, expected %d", len(s.sprites), len(ids))
	}
	for i, id := range ids {
		if s.sprites[i].id != id {
			t.Errorf("sprite %d = %v, expected %v", i, s.sprites[i].id, id)
		}
	}

	if len(s.texts) != 2 {
		t.Fatalf("running status drew %d texts, expected 2", len(s.texts))
	}
	shadow, front := s.texts[0], s.texts[1]
	if shadow.text != "Score: 0" || shadow.x != 20 || shadow.y != 50 || shadow.style.Color != core.ColorBlack {
		t.Errorf("shadow text = %+v", shadow)
	}
	if front.x != 22 || front.y != 52 || front.style.Color != core.ColorWhite || front.style.Size != 40 {
		t.Errorf("front text = %+v", front)
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), 1)
	collide(g)
	g.State().Score = 3
	s := &recordingSurface{}

	g.Frame(16, s)
	if len(s.texts) != 6 {
		t.Fatalf("game over drew %d texts, expected 6", len(s.texts))
	}
	expected := []textCall{
		{"GAME OVER, your score is 3", 650, 150, TextStyle{core.ColorBlack, 40, AlignCenter}},
		{RestartHint, 650, 210, TextStyle{core.ColorBlack, 40, AlignCenter}},
		{"GAME OVER, your score is 3", 652, 152, TextStyle{core.ColorWhite, 40, AlignCenter}},
		{RestartHint, 652, 212, TextStyle{core.ColorWhite, 40, AlignCenter}},
	}
	for i, want := range expected {
		if got := s.texts[i+2]; got != want {
			t.Errorf("text %d = %+v, expected %+v", i+2, got, want)
		}
	}
}

func TestApplyConfigKeepsGeometry(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), 1)

	cfg := config.DefaultRunnerConfig()
	cfg.Enemy.Speed = 3
	cfg.Enemy.Width = 999
	cfg.Player.Width = 1
	cfg.Background.Speed = 2
	g.ApplyConfig(cfg)

	if e := g.State().Spawner.Spawn(0, 0); e.VelX != 3 || e.Width != 160 {
		t.Errorf("retuned enemy: VelX %v Width %v, expected 3 and 160", e.VelX, e.Width)
	}
	if g.State().Player.Width != 200 {
		t.Errorf("player Width = %v, expected 200", g.State().Player.Width)
	}
	if g.State().Background.VelX != 2 {
		t.Errorf("background VelX = %v, expected 2", g.State().Background.VelX)
	}
	if g.Config().Enemy.Width != 160 {
		t.Errorf("Config().Enemy.Width = %v, expected 160", g.Config().Enemy.Width)
	}
}

func TestApplyConfigRerollsJitter(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), 1)

	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.JitterMinMs = 2000
	cfg.Spawn.JitterRangeMs = 0
	g.ApplyConfig(cfg)

	if j := g.State().Spawner.Jitter(); j != 2000 {
		t.Errorf("Jitter() = %v after reload, expected 2000", j)
	}
}
