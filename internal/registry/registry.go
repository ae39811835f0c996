// Package registry maps game IDs to constructors. Game packages register
// from init, and frontends look games up by ID at runtime.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/hiscore"
)

// ErrUnknownGame is wrapped by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is a simulation driven by a frontend. The frontend owns timing,
// input and output; a game only sees actions, ticks and a screen.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session. It runs before the first frame and
	// again on restart, and is where a game loads config and high scores.
	Reset(cfg core.RuntimeConfig)

	// Handle applies the actions gathered since the last frame.
	Handle(in core.InputFrame)

	// Advance runs one fixed tick of dt seconds.
	Advance(dt float64)

	// Halted is true while ticks have no effect, for example when paused.
	Halted() bool

	Render(dst *core.Screen)
	State() core.GameState
}

// Env is what a session passes to a game constructor. Zero fields are
// replaced by WithDefaults.
type Env struct {
	ConfigPath string                  // YAML file; "" searches the usual places
	Difficulty config.DifficultyPreset // "" uses the file's own settings
	SavePath   string                  // high score file
	HighScores hiscore.Backend         // takes precedence over SavePath
	Clock      core.Clock
	Logger     *log.Logger
}

// WithDefaults fills unset fields.
func (e Env) WithDefaults() Env {
	if e.Clock == nil {
		e.Clock = core.SystemClock{}
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.SavePath == "" {
		e.SavePath = config.UserFile("save_file.txt")
	}
	return e
}

type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game. It must not touch the filesystem; Reset does that.
type Factory func(env Env) Game

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register panics if id is taken. The title is read from a throwaway
// instance built with a zero Env.
func Register(id string, f Factory) {
	title := f(Env{}).Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: %q registered twice", id))
	}
	entries[id] = entry{title: title, build: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game registered as id.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.build(env.WithDefaults()), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
