package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the bindings of the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Harder     key.Binding
	Easier     key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Easier, k.Harder, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←", "easier"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction is a horizontal movement intent.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

func (d Direction) on() core.Action {
	if d == DirLeft {
		return core.ActionMoveLeftOn
	}
	return core.ActionMoveRightOn
}

func (d Direction) off() core.Action {
	if d == DirLeft {
		return core.ActionMoveLeftOff
	}
	return core.ActionMoveRightOff
}

func (d Direction) opposite() Direction {
	return 1 - d
}

// Terminals report key presses (and auto-repeats) but no releases.
// HoldTracker turns presses into held intents that lapse on their own.
const (
	DefaultFirstHold  = 300 * time.Millisecond // covers the delay before auto-repeat starts
	DefaultRepeatHold = 120 * time.Millisecond
)

// HoldTracker emulates key-up events for directional keys.
type HoldTracker struct {
	first  time.Duration
	repeat time.Duration
	held   [2]bool
	until  [2]time.Time
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	return &HoldTracker{first: first, repeat: repeat}
}

// Press records a key press at now. A new press emits the On intent; a
// repeat extends the hold. The opposite direction is released at once.
func (h *HoldTracker) Press(d Direction, now time.Time, frame *core.InputFrame) {
	opp := d.opposite()
	if h.held[opp] {
		h.held[opp] = false
		frame.Set(opp.off())
	}

	if !h.held[d] {
		h.held[d] = true
		h.until[d] = now.Add(h.first)
		frame.Set(d.on())
		return
	}
	if next := now.Add(h.repeat); next.After(h.until[d]) {
		h.until[d] = next
	}
}

// Expire releases every direction whose hold has lapsed by now.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for d := DirLeft; d <= DirRight; d++ {
		if h.held[d] && !now.Before(h.until[d]) {
			h.held[d] = false
			frame.Set(d.off())
		}
	}
}

// Held reports whether d is currently held.
func (h *HoldTracker) Held(d Direction) bool {
	return h.held[d]
}

// Reset forgets every held direction without emitting releases.
func (h *HoldTracker) Reset() {
	h.held = [2]bool{}
}

// mapGameKey turns a key message into input intents. It reports quit and
// back-to-menu requests separately since those are handled by the platform.
func mapGameKey(keys GameKeyMap, msg tea.KeyMsg, hold *HoldTracker, now time.Time, frame *core.InputFrame) (quit, back bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return true, false
	case key.Matches(msg, keys.Back):
		return false, true
	case key.Matches(msg, keys.Left):
		hold.Press(DirLeft, now, frame)
	case key.Matches(msg, keys.Right):
		hold.Press(DirRight, now, frame)
	case key.Matches(msg, keys.Launch):
		frame.Set(core.ActionLaunch)
	case key.Matches(msg, keys.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, keys.Restart):
		frame.Set(core.ActionRestart)
	}
	return false, false
}
