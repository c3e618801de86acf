package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dusk-runner/internal/storage"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{ChoicePlay, "Play"},
	{ChoiceScores, "High Scores"},
	{ChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int // Best score shown under the title, 0 hides it
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model. The store, if any, supplies the best score.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	m := MenuModel{
		items:     menuItems,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor].Choice
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit
	}

	if msg.String() == "tab" {
		m.selected = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  D U S K   R U N N E R  ", m.width)))
	b.WriteString("\n\n")

	subtitle := "Jump the night creatures"
	if m.best > 0 {
		subtitle = fmt.Sprintf("Best run: %d", m.best)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the start menu and returns the user's choice and the terminal size.
func RunMenu(store *storage.Store, width, height int) (MenuChoice, int, int, error) {
	p := tea.NewProgram(
		NewMenuModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ChoiceNone, width, height, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return ChoiceQuit, width, height, nil
	}
	w, h := m.Size()
	if m.IsQuitting() {
		return ChoiceQuit, w, h, nil
	}
	return m.Selected(), w, h, nil
}
