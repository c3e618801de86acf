package runner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
)

// Status text layout, in world pixels.
const (
	statusFontSize = 40
	shadowOffset   = 2
	scoreX         = 20
	scoreY         = 50
	gameOverY      = 150
	restartHintY   = 210
)

// RestartHint is the second game-over line.
const RestartHint = "Press ENTER or Swipe Down to play again!"

// Game runs one endless-runner session on a fixed-size world.
type Game struct {
	state  State
	input  *InputHandler
	cfg    config.RunnerConfig
	width  float64
	height float64

	halted bool
	now    func() time.Time
	start  time.Time
}

// New creates a game on the core.WorldWidth x core.WorldHeight field.
// seed drives the spawn jitter; 0 picks a time based seed.
func New(cfg config.RunnerConfig, seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, h := float64(core.WorldWidth), float64(core.WorldHeight)
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		input:  NewInputHandler(cfg.Input),
		cfg:    cfg,
		width:  w,
		height: h,
		now:    time.Now,
	}
	g.state = State{
		Background: NewBackground(cfg.Background),
		Player:     NewPlayer(cfg.Player, w, h),
		Spawner:    NewSpawner(cfg.Spawn, cfg.Enemy, config.NewDifficultyManager(cfg.Difficulty), rng, w, h),
	}
	g.input.bind(func() bool { return g.state.GameOver }, g.Restart)
	g.start = g.now()
	return g
}

// Input returns the handler hosts feed key and touch events into.
func (g *Game) Input() *InputHandler {
	return g.input
}

// State exposes the live run state.
func (g *Game) State() *State {
	return &g.state
}

// Snapshot returns score and game-over status.
func (g *Game) Snapshot() core.GameState {
	return g.state.Snapshot()
}

// Running reports whether the loop is still advancing.
func (g *Game) Running() bool {
	return !g.halted
}

// Frame advances the game to timestamp ts (ms) and draws it to s when s is non-nil.
// It does nothing once the run has ended, until Restart.
func (g *Game) Frame(ts float64, s Surface) {
	if g.halted {
		return
	}
	dt := ts - g.state.LastTime
	if dt < 0 {
		dt = 0
	}
	g.state.LastTime = ts

	g.step(dt)
	if s != nil {
		g.Draw(s)
	}
	if g.state.GameOver {
		g.halted = true
	}
}

// Tick runs Frame with the game's own clock, milliseconds since the last restart.
func (g *Game) Tick(s Surface) {
	g.Frame(g.clock(), s)
}

func (g *Game) clock() float64 {
	return float64(g.now().Sub(g.start)) / float64(time.Millisecond)
}

func (g *Game) step(dt float64) {
	st := &g.state
	st.Elapsed += dt

	st.Background.Update(dt)

	// Collision is checked against the positions drawn last frame.
	player := st.Player.Hitbox()
	for _, e := range st.Spawner.Enemies() {
		if Collides(e.Hitbox(), player) {
			st.GameOver = true
		}
	}
	st.Player.Update(dt, g.input.Actions(), g.input.Held())

	st.Score += st.Spawner.Update(dt, st.Score, st.Elapsed)
}

// Draw renders the current state: background, player, enemies, then status text.
func (g *Game) Draw(s Surface) {
	st := &g.state
	s.Clear()
	st.Background.Draw(s)
	st.Player.Draw(s)
	for _, e := range st.Spawner.Enemies() {
		e.Draw(s)
	}
	g.drawStatus(s)
}

func (g *Game) drawStatus(s Surface) {
	st := &g.state
	score := fmt.Sprintf("Score: %d", st.Score)
	s.FillText(score, scoreX, scoreY, TextStyle{Color: core.ColorBlack, Size: statusFontSize})
	s.FillText(score, scoreX+shadowOffset, scoreY+shadowOffset, TextStyle{Color: core.ColorWhite, Size: statusFontSize})

	if !st.GameOver {
		return
	}
	over := fmt.Sprintf("GAME OVER, your score is %d", st.Score)
	cx := g.width / 2
	black := TextStyle{Color: core.ColorBlack, Size: statusFontSize, Align: AlignCenter}
	white := TextStyle{Color: core.ColorWhite, Size: statusFontSize, Align: AlignCenter}
	s.FillText(over, cx, gameOverY, black)
	s.FillText(RestartHint, cx, restartHintY, black)
	s.FillText(over, cx+shadowOffset, gameOverY+shadowOffset, white)
	s.FillText(RestartHint, cx+shadowOffset, restartHintY+shadowOffset, white)
}

// Restart begins a new run. The clock is re-based so the first frame after a
// restart has a zero delta. The spawn timer and player velocity carry over.
func (g *Game) Restart() {
	st := &g.state
	st.Background.Restart()
	st.Player.Restart()
	st.GameOver = false
	st.Score = 0
	st.Spawner.Clear()
	st.LastTime = 0
	st.Elapsed = 0

	g.start = g.now()
	g.halted = false
	g.Frame(0, nil)
}

// ApplyConfig retunes speeds, timers and input handling mid-run. Sprite sizes
// and the background tile keep their current values.
func (g *Game) ApplyConfig(cfg config.RunnerConfig) {
	cfg.Background.Width, cfg.Background.Height = g.cfg.Background.Width, g.cfg.Background.Height
	cfg.Player.Width, cfg.Player.Height, cfg.Player.StartX = g.cfg.Player.Width, g.cfg.Player.Height, g.cfg.Player.StartX
	cfg.Enemy.Width, cfg.Enemy.Height = g.cfg.Enemy.Width, g.cfg.Enemy.Height
	g.cfg = cfg

	g.input.Tune(cfg.Input)
	g.state.Player.Tune(cfg.Player)
	g.state.Background.VelX = cfg.Background.Speed
	g.state.Spawner.Tune(cfg.Spawn, cfg.Enemy, config.NewDifficultyManager(cfg.Difficulty))
}

// Config returns the configuration the game is running with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}
