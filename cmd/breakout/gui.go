package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/gui"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play Breakout in a window",
	Long: `Open Breakout in a 960x700 window.

Requires a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/breakout

Controls:
  Left/A, Right/D  - Move the paddle (held)
  Space            - Launch the ball
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Quit

Examples:
  breakout gui
  breakout gui --scale 0.75 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per field unit")
}

func runGUI(_ *cobra.Command, _ []string) error {
	logger, closeLog := fileLogger()
	defer closeLog()

	env, err := baseEnv(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return gui.Run(breakout.New(env), runtimeConfig(), gui.Options{
		Scale:  flagScale,
		Store:  store,
		Clock:  env.Clock,
		Logger: logger,
	})
}
