package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/storage"
)

// MenuChoice is what the user picked on the title menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// Difficulties lists the presets the menu cycles through. The empty preset
// keeps the spawn rate from the loaded config.
var Difficulties = []string{"", "easy", "normal", "hard"}

func difficultyLabel(preset string) string {
	if preset == "" {
		return "config"
	}
	return preset
}

const (
	itemPlay = iota
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

// MenuKeyMap defines the key bindings for the title menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	title      string
	config     core.RuntimeConfig
	keys       MenuKeyMap
	best       int
	cursor     int
	difficulty int
	choice     MenuChoice
}

// NewMenuModel creates a title menu for gameID. difficulty preselects a preset
// from Difficulties; unknown values select the config's own spawn rate.
func NewMenuModel(store *storage.Store, gameID, title, difficulty string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:      title,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		best:       loadBestScore(store, gameID),
	}
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuChoiceScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < itemCount-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		}

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case itemPlay:
			m.choice = MenuChoicePlay
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
			return m, nil
		case itemScores:
			m.choice = MenuChoiceScores
		case itemQuit:
			m.choice = MenuChoiceQuit
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	width := m.config.ScreenW
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(strings.Join(strings.Split(m.title, ""), " ")), width)))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), width))
		b.WriteString("\n\n")
	}

	items := [itemCount]string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", difficultyLabel(Difficulties[m.difficulty])),
		"High scores",
		"Quit",
	}
	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(hintStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", width)))
	b.WriteString("\n")

	return b.String()
}

func loadBestScore(store *storage.Store, gameID string) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		return 0
	}
	return best
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Config     core.RuntimeConfig
}

// Result reports the choice, the selected difficulty and the resized config.
func (m MenuModel) Result() MenuResult {
	choice := m.choice
	if choice == MenuChoiceNone {
		choice = MenuChoiceQuit
	}
	return MenuResult{
		Choice:     choice,
		Difficulty: Difficulties[m.difficulty],
		Config:     m.config,
	}
}

// RunMenu runs the title menu and returns the selection result.
func RunMenu(store *storage.Store, gameID, title, difficulty string, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, gameID, title, difficulty, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}
	return m.Result(), nil
}
