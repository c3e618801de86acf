package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dusk-runner/internal/storage"
)

// maxScores caps the rows loaded per view.
const maxScores = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
)

// scoreView is one tab of the scoreboard.
type scoreView int

const (
	viewTop scoreView = iota
	viewRecent
	viewPlayers
)

var scoreViews = []struct {
	view  scoreView
	title string
}{
	{viewTop, "Top Runs"},
	{viewRecent, "Recent"},
	{viewPlayers, "Players"},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextView key.Binding
	PrevView key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev view"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	viewCursor  int
	store       *storage.Store
	rows        []table.Row
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	loadErr     error
	summary     string // Totals over every run, empty without a store
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	if store != nil {
		if st, err := store.GetStats(); err == nil && st.Runs > 0 {
			m.summary = fmt.Sprintf("%d runs   best %d   average %.1f   last played %s",
				st.Runs, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04"))
		}
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) current() scoreView {
	return scoreViews[m.viewCursor].view
}

// columns returns the table columns of the current view.
func (m *ScoreboardModel) columns() []table.Column {
	// Box border and padding take 4 columns, the fixed columns 34
	dateWidth := min(max(m.width-4-34, 12), 20)

	if m.current() == viewPlayers {
		return []table.Column{
			{Title: "Player", Width: 16},
			{Title: "Runs", Width: 6},
			{Title: "Best", Width: 8},
			{Title: "Average", Width: 8},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: dateWidth},
	}
}

// createTable creates a new table with the current view's columns.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, tabs, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the rows of the current view.
func (m *ScoreboardModel) load() {
	m.rows, m.loadErr = loadRows(m.store, m.current())
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func loadRows(store *storage.Store, view scoreView) ([]table.Row, error) {
	if store == nil {
		return nil, nil
	}

	switch view {
	case viewPlayers:
		stats, err := store.GetPlayerStats()
		if err != nil {
			return nil, err
		}
		players := make([]*storage.Stats, 0, len(stats))
		for _, s := range stats {
			players = append(players, s)
		}
		sort.Slice(players, func(i, j int) bool {
			if players[i].HighScore != players[j].HighScore {
				return players[i].HighScore > players[j].HighScore
			}
			return players[i].Player < players[j].Player
		})
		rows := make([]table.Row, len(players))
		for i, s := range players {
			rows[i] = table.Row{s.Player, fmt.Sprintf("%d", s.Runs), fmt.Sprintf("%d", s.HighScore), fmt.Sprintf("%.1f", s.AvgScore)}
		}
		return rows, nil

	default:
		var scores []storage.ScoreEntry
		var err error
		if view == viewRecent {
			scores, err = store.RecentScores(maxScores)
		} else {
			scores, err = store.TopScores(maxScores)
		}
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(scores))
		for i, s := range scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				s.Player,
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil
	}
}

// switchView moves the view cursor by delta and reloads.
func (m *ScoreboardModel) switchView(delta int) {
	n := len(scoreViews)
	m.viewCursor = ((m.viewCursor+delta)%n + n) % n
	m.table = m.createTable()
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView), key.Matches(msg, m.keys.Right):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView), key.Matches(msg, m.keys.Left):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, view tabs, the table and the key help.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := fmt.Sprintf("HIGH SCORES - %s", scoreViews[m.viewCursor].title)
	tabs := make([]string, len(scoreViews))
	for i, v := range scoreViews {
		style := boardTabStyle
		if i == m.viewCursor {
			style = boardActiveTab
		}
		tabs[i] = style.Render(v.title)
	}

	var content string
	switch {
	case m.loadErr != nil:
		content = boardEmptyStyle.Render(fmt.Sprintf("Could not load scores:\n%v", m.loadErr))
	case len(m.rows) == 0:
		content = boardEmptyStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")
	default:
		content = m.table.View()
	}

	parts := []string{
		boardTitleStyle.Render(title),
		"",
		strings.Join(tabs, " "),
		boardBoxStyle.Render(content),
	}
	if m.summary != "" {
		parts = append(parts, boardDimStyle.Render(m.summary))
	}
	parts = append(parts, "", boardDimStyle.Render(m.help.View(m.keys)))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
