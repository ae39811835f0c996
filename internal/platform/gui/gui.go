// Package gui is the windowed frontend. The ebiten renderer is only compiled
// with the ebiten build tag; without it Run reports ErrUnavailable.
package gui

import (
	"errors"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: windowed mode requires building with -tags ebiten")

// Options carries the collaborators of the window. Zero values are valid.
type Options struct {
	Scale  float64        // window pixels per field unit, <= 0 means 1
	Store  *storage.Store // run history, nil disables recording
	Clock  core.Clock
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Clock == nil {
		o.Clock = core.SystemClock{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Window colours.
var (
	Background = color.RGBA{33, 33, 33, 255}
	TextColor  = color.RGBA{220, 220, 220, 255}
	BallColor  = color.RGBA{220, 220, 220, 255}
)

var palette = map[core.Color]color.RGBA{
	core.ColorRed:    {154, 78, 78, 255},
	core.ColorPink:   {179, 100, 138, 255},
	core.ColorGreen:  {99, 141, 91, 255},
	core.ColorYellow: {187, 165, 59, 255},
	core.ColorGray:   {195, 195, 195, 255},
	core.ColorWhite:  {220, 220, 220, 255},
	core.ColorBlue:   {78, 110, 154, 255},
	core.ColorCyan:   {78, 154, 150, 255},
	core.ColorOrange: {196, 120, 60, 255},
}

// RGBA maps a terminal colour to its window colour. Unknown colours are white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return TextColor
}

// runRecorder saves one run per finished game.
type runRecorder struct {
	store    *storage.Store
	logger   *log.Logger
	gameID   string
	started  time.Time
	recorded bool
}

// observe is called after every frame with the game state.
func (r *runRecorder) observe(state core.GameState, won bool, now time.Time) {
	switch {
	case state.GameOver && !r.recorded:
		r.recorded = true
		if r.store == nil {
			return
		}
		outcome := storage.OutcomeLose
		if won {
			outcome = storage.OutcomeWin
		}
		if _, err := r.store.SaveRun(r.gameID, state.Score, outcome, now.Sub(r.started)); err != nil {
			r.logger.Error("could not save run", "game", r.gameID, "err", err)
		}
	case !state.GameOver && r.recorded:
		r.recorded = false
		r.started = now
	}
}

// directionEdges folds the edges of several keys bound to one direction.
// The direction is released only when a key went up and none is still held.
func directionEdges[K comparable](keys []K, justPressed, justReleased, held func(K) bool) (pressed, released bool) {
	anyHeld := false
	for _, k := range keys {
		pressed = pressed || justPressed(k)
		released = released || justReleased(k)
		anyHeld = anyHeld || held(k)
	}
	return pressed, released && !anyHeld
}
