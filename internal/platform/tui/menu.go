package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// presets is the difficulty cycle shown in the menu. "" leaves the loaded
// config untouched.
var presets = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "as configured"
	}
	return string(p)
}

// MenuChoice is what the player asked the menu for.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuModel lists the registered games and a difficulty selector. It does
// not act on a choice; the owner reads Choice and calls Reset.
type MenuModel struct {
	games  []registry.GameInfo
	cursor int
	preset int

	width, height int

	keys   MenuKeyMap
	help   help.Model
	choice MenuChoice
}

func NewMenuModel(width, height int, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		games: registry.List(),
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	m.SetSize(width, height)
	return m
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m *MenuModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
}

// Reset clears a consumed choice, keeping the cursor and difficulty.
func (m *MenuModel) Reset() { m.choice = ChoiceNone }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m.handleKey(msg)
	}
	return m, nil
}

func (m *MenuModel) handleKey(msg tea.KeyMsg) {
	n := len(m.games)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = ChoiceQuit
	case key.Matches(msg, m.keys.Scoreboard):
		m.choice = ChoiceScores
	case key.Matches(msg, m.keys.Select):
		if n > 0 {
			m.choice = ChoicePlay
		}
	case key.Matches(msg, m.keys.Up) && n > 0:
		m.cursor = (m.cursor + n - 1) % n
	case key.Matches(msg, m.keys.Down) && n > 0:
		m.cursor = (m.cursor + 1) % n
	case key.Matches(msg, m.keys.Easier):
		m.preset = max(m.preset-1, 0)
	case key.Matches(msg, m.keys.Harder):
		m.preset = min(m.preset+1, len(presets)-1)
	}
}

func (m MenuModel) Choice() MenuChoice { return m.choice }

// Game is the highlighted entry. It is only meaningful when the registry
// is not empty.
func (m MenuModel) Game() registry.GameInfo {
	if len(m.games) == 0 {
		return registry.GameInfo{}
	}
	return m.games[m.cursor]
}

func (m MenuModel) Difficulty() config.DifficultyPreset { return presets[m.preset] }

func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	lines := []string{titleStyle.Render("B R E A K O U T"), "", "Select a game", ""}
	for i, g := range m.games {
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+g.Title+" <"))
		} else {
			lines = append(lines, g.Title)
		}
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Difficulty: ‹ %s ›", presetLabel(m.Difficulty())),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
