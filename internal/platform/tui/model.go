package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// winner is implemented by games that can tell a win from a loss.
type winner interface {
	Won() bool
}

// GameOptions carries the collaborators of a GameModel. Zero values are valid.
type GameOptions struct {
	Store  *storage.Store // run history, nil disables recording
	Clock  core.Clock
	Logger *log.Logger
}

// GameModel drives one game: it turns key presses into intents, advances the
// simulation with a fixed-step accumulator on every frame and records the run
// when the game ends.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	clock   core.Clock
	logger  *log.Logger
	driver  *core.FixedStep
	hold    *HoldTracker
	keys    GameKeyMap
	help    help.Model
	input   core.InputFrame
	started time.Time

	recorded   bool // run saved for the current game over
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The game is reset in Init.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:   opts.Store,
		config:  cfg,
		clock:   opts.Clock,
		logger:  opts.Logger,
		driver:  core.NewFixedStep(cfg.TickRate, cfg.MaxSteps),
		hold:    NewHoldTracker(DefaultFirstHold, DefaultRepeatHold),
		keys:    DefaultGameKeyMap(),
		help:    h,
		input:   core.NewInputFrame(),
		started: opts.Clock.Now(),
	}
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation runs in field coordinates, so only the view changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey collects intents; they are applied at the start of the next frame.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	quit, back := mapGameKey(m.keys, msg, m.hold, m.clock.Now(), &m.input)
	switch {
	case quit:
		m.recordQuit()
		m.quitting = true
		return m, tea.Quit
	case back:
		m.recordQuit()
		m.backToMenu = true
		return m, nil
	}
	return m, nil
}

// handleFrame polls input, runs the fixed-step driver and records finished runs.
func (m GameModel) handleFrame() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	now := m.clock.Now()

	m.hold.Expire(now, &m.input)
	if !m.input.Empty() {
		m.game.Handle(m.input)
		m.input.Clear()
	}
	m.driver.Frame(now, m.game)

	state := m.game.State()
	switch {
	case state.GameOver && !m.recorded:
		m.recordRun(m.outcome(), state.Score, now)
		m.recorded = true
	case !state.GameOver && m.recorded:
		// Restarted.
		m.recorded = false
		m.started = now
		m.hold.Reset()
	}

	return m, frameCmd(m.config.FrameRate)
}

func (m GameModel) outcome() storage.Outcome {
	if w, ok := m.game.(winner); ok && w.Won() {
		return storage.OutcomeWin
	}
	return storage.OutcomeLose
}

// recordQuit saves an unfinished run that scored anything.
func (m *GameModel) recordQuit() {
	state := m.game.State()
	if state.GameOver || state.Score == 0 {
		return
	}
	m.recordRun(storage.OutcomeQuit, state.Score, m.clock.Now())
	m.recorded = true
}

func (m *GameModel) recordRun(outcome storage.Outcome, score int, now time.Time) {
	if m.store == nil {
		return
	}
	runID, err := m.store.SaveRun(m.game.ID(), score, outcome, now.Sub(m.started))
	if err != nil {
		m.logger.Error("could not save run", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("run saved", "game", m.game.ID(), "run", runID, "score", score, "outcome", outcome)
}

// View renders the game followed by the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a full-screen Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		standalone{model},
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// standalone exits the program where a session would return to the menu.
type standalone struct {
	GameModel
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		s.GameModel = gm
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
