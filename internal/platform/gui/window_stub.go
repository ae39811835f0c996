//go:build !ebiten

package gui

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Run reports that the windowed frontend was not compiled in.
func Run(*breakout.Game, core.RuntimeConfig, Options) error {
	return ErrUnavailable
}
