package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/runner"
	"github.com/vovakirdan/dusk-runner/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables score saving
	Player  string
	Reloads <-chan config.RunnerConfig // hot reload source, may be nil
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running the runner in a terminal.
type Model struct {
	game       *runner.Game
	raster     *Raster
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	reloads    <-chan config.RunnerConfig
	logger     *log.Logger
	now        func() time.Time
	embedded   bool // Hosted inside a SessionModel; back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model and starts a run.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    runner.New(opts.Runner, cfg.Seed),
		raster:  NewRaster(core.NewScreen(cfg.ScreenW, cfg.ScreenH)),
		store:   opts.Store,
		player:  opts.Player,
		config:  cfg,
		keys:    NewKeyMapper(),
		holds:   NewHoldTracker(time.Duration(opts.Runner.TUI.KeyHoldMs) * time.Millisecond),
		reloads: opts.Reloads,
		logger:  logger,
		now:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.raster.Screen().Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.IsBack(msg) && m.game.Snapshot().GameOver {
		for _, k := range m.game.Input().Keys() {
			m.game.Input().KeyUp(k)
		}
		m.holds.Reset()
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	k, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch k {
	case "":
	case runner.KeyEnter:
		m.game.Input().KeyDown(k)
	default:
		if m.holds.Press(k, m.now()) {
			m.game.Input().KeyDown(k)
		}
	}
	return m, nil
}

// handleMouse treats a left-button drag as a touch gesture.
func (m Model) handleMouse(msg tea.MouseMsg) {
	in := m.game.Input()
	y := m.worldY(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			in.TouchStart(y)
		}
	case tea.MouseActionMotion:
		in.TouchMove(y)
	case tea.MouseActionRelease:
		in.TouchEnd()
	}
}

// worldY converts a terminal row to the world y of the row's center.
func (m Model) worldY(row int) float64 {
	h := m.raster.Screen().Height()
	if h <= 0 {
		return 0
	}
	return (float64(row) + 0.5) * core.WorldHeight / float64(h)
}

// handleTick releases expired keys, applies pending config and advances the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, k := range m.holds.Expire(m.now()) {
		m.game.Input().KeyUp(k)
	}

	m.applyReload()
	m.game.Tick(nil)

	state := m.game.Snapshot()
	if !state.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore(state.Score)
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) applyReload() {
	if m.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-m.reloads:
		if ok {
			m.game.ApplyConfig(cfg)
			m.logger.Info("config reloaded")
		}
	default:
	}
}

// saveScore records a finished run. Saving is best-effort; the game continues regardless.
func (m Model) saveScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.player, score); err != nil {
		m.logger.Warn("could not save score", "player", m.player, "score", score, "error", err)
		return
	}
	m.logger.Debug("score saved", "player", m.player, "score", score)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Draw(m.raster)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dusk-runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.raster.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Draw(m.raster)
	return RenderScreen(m.raster.Screen())
}

// Game returns the running game.
func (m Model) Game() *runner.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drag stands in for touch swipes
	)

	_, err := p.Run()
	return err
}
