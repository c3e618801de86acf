// Package gui hosts the runner in an ebiten window or browser canvas.
package gui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/runner"
)

// ScoreSaver records finished runs. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(player string, score int) (int64, error)
}

// Options configures a window session.
type Options struct {
	Runner     config.RunnerConfig
	Runtime    core.RuntimeConfig
	AssetDir   string     // directory with background.png, player.png, enemy.png; empty paints placeholders
	Scores     ScoreSaver // nil disables score saving
	Player     string
	Reloads    <-chan config.RunnerConfig // hot reload source, may be nil
	Fullscreen Fullscreener               // F key target, nil disables the key
	Title      string
	Logger     *log.Logger
}

// errQuit ends RunGame without an error being reported.
var errQuit = errors.New("quit")

// Game adapts runner.Game to ebiten.Game.
type Game struct {
	game       *runner.Game
	canvas     *Canvas
	input      pointer
	scores     ScoreSaver
	player     string
	reloads    <-chan config.RunnerConfig
	fullscreen Fullscreener
	logger     *log.Logger
	scoreSaved bool
}

// NewGame builds the sprite sheets and starts a run.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var sheets Sheets
	if opts.AssetDir != "" {
		s, err := LoadSheets(opts.AssetDir)
		if err != nil {
			return nil, err
		}
		sheets = s
		logger.Debug("sprite sheets loaded", "dir", opts.AssetDir)
	} else {
		sheets = GenerateSheets(opts.Runner)
	}

	canvas, err := NewCanvas(sheets)
	if err != nil {
		return nil, err
	}

	return &Game{
		game:       runner.New(opts.Runner, opts.Runtime.Seed),
		canvas:     canvas,
		scores:     opts.Scores,
		player:     opts.Player,
		reloads:    opts.Reloads,
		fullscreen: opts.Fullscreen,
		logger:     logger,
	}, nil
}

// Runner returns the hosted game.
func (g *Game) Runner() *runner.Game {
	return g.game
}

// Update polls input, applies pending config and advances the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if g.fullscreen != nil && inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if err := g.fullscreen.ToggleFullscreen(); err != nil {
			g.logger.Warn("fullscreen toggle failed", "error", err)
		}
	}

	g.input.poll(g.game.Input())
	g.applyReload()
	g.game.Tick(nil)

	state := g.game.Snapshot()
	if !state.GameOver {
		g.scoreSaved = false
	} else if !g.scoreSaved {
		g.saveScore(state.Score)
		g.scoreSaved = true
	}
	return nil
}

func (g *Game) applyReload() {
	if g.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-g.reloads:
		if ok {
			g.game.ApplyConfig(cfg)
			g.logger.Info("config reloaded")
		}
	default:
	}
}

func (g *Game) saveScore(score int) {
	if g.scores == nil || score <= 0 {
		return
	}
	if _, err := g.scores.SaveScore(g.player, score); err != nil {
		g.logger.Warn("could not save score", "player", g.player, "score", score, "error", err)
		return
	}
	g.logger.Debug("score saved", "player", g.player, "score", score)
}

// Draw renders the run onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Bind(screen)
	g.game.Draw(g.canvas)
}

// Layout keeps the world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return core.WorldWidth, core.WorldHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(opts Options) error {
	game, err := NewGame(opts)
	if err != nil {
		return err
	}
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}
	return RunGame(game, opts.Title)
}

// RunGame runs an already built game.
func RunGame(game *Game, title string) error {
	if title == "" {
		title = "Dusk Runner"
	}
	ebiten.SetWindowSize(core.WorldWidth, core.WorldHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
