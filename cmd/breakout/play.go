package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game (Breakout when omitted).

Controls:
  Left/A, Right/D  - Move the paddle
  Space            - Launch the ball
  P                - Pause
  R                - Restart (after game over)
  Esc              - Leave the game
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - The classic settings
  hard   - Fewer lives, narrow paddle, faster ball
  fixed  - Pong only: no speed progression

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play pong
  breakout play --config ./my-breakout.yaml
  breakout play --tps 240 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'breakout list' to see available games", gameID)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	env, err := baseEnv(logger)
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID, env)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:  store,
		Clock:  env.Clock,
		Logger: logger,
	})
}
