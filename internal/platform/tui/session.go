package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

type SessionOptions struct {
	Store *storage.Store
	// Env is copied into every game; the menu sets Difficulty.
	Env registry.Env
	// SharedScores reads and writes high scores in Store rather than the
	// local save file. SSH sessions set it.
	SharedScores bool
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel is the root model of the menu command and of every SSH
// session. It moves between the menu, a game and the scoreboard.
type SessionModel struct {
	opts     SessionOptions
	config   core.RuntimeConfig
	view     sessionView
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	opts.Env = opts.Env.WithDefaults()
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH, opts.Env.Difficulty),
	}
}

func (m SessionModel) Init() tea.Cmd { return m.menu.Init() }

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
		// Views not on screen still need the new size when they come back.
		m.menu.SetSize(size.Width, size.Height)
	}

	var cmd tea.Cmd
	switch m.view {
	case viewGame:
		cmd = m.updateGame(msg)
	case viewScores:
		cmd = m.updateScores(msg)
	default:
		cmd = m.updateMenu(msg)
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *SessionModel) updateMenu(msg tea.Msg) tea.Cmd {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	choice := m.menu.Choice()
	m.menu.Reset()
	switch choice {
	case ChoiceQuit:
		m.quitting = true
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m.scores.Init()
	case ChoicePlay:
		return m.startGame(m.menu.Game().ID)
	}
	return cmd
}

func (m *SessionModel) startGame(id string) tea.Cmd {
	env := m.opts.Env
	env.Difficulty = m.menu.Difficulty()
	if m.opts.SharedScores && m.opts.Store != nil {
		env.HighScores = m.opts.Store.HighScores(id)
	}
	game, err := registry.Create(id, env)
	if err != nil {
		env.Logger.Error("could not create game", "game", id, "err", err)
		return nil
	}
	m.game = NewGameModel(game, m.config, GameOptions{
		Store:  m.opts.Store,
		Clock:  env.Clock,
		Logger: env.Logger,
	})
	m.view = viewGame
	return m.game.Init()
}

func (m *SessionModel) updateGame(msg tea.Msg) tea.Cmd {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)
	switch {
	case m.game.IsQuitting():
		m.quitting = true
	case m.game.BackToMenu():
		m.game = GameModel{}
		m.view = viewMenu
		return nil
	}
	return cmd
}

func (m *SessionModel) updateScores(msg tea.Msg) tea.Cmd {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)
	switch {
	case m.scores.IsQuitting():
		m.quitting = true
	case m.scores.IsGoingBack():
		m.scores = ScoreboardModel{}
		m.view = viewMenu
		return nil
	}
	return cmd
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs a menu session on the local terminal until the player
// quits.
func RunSession(cfg core.RuntimeConfig, opts SessionOptions) error {
	_, err := tea.NewProgram(NewSessionModel(cfg, opts), tea.WithAltScreen()).Run()
	return err
}
