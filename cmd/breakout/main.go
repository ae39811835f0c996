// Command breakout plays Breakout, and Pong as a bonus, in the terminal, in a
// window or over SSH, and keeps a shared history of runs.
//
//	breakout play [game]     play straight away (default: breakout)
//	breakout menu            pick a game and difficulty interactively
//	breakout gui             Breakout in a desktop window (build tag ebiten)
//	breakout serve           host menu sessions over SSH
//	breakout scores [game]   run history and high scores
//	breakout list            registered games
//	breakout config [game]   print or install the default YAML config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
	_ "github.com/vovakirdan/tui-breakout/internal/games/pong"
)

// Persistent flags shared by every subcommand.
var (
	flagTPS        int
	flagFPS        int
	flagMaxSteps   int
	flagSeed       int64
	flagDBPath     string
	flagSavePath   string
	flagConfig     string
	flagDifficulty string
)

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Bounce a ball, clear the wall",
	Long: `Move the paddle, keep the ball in play and clear all 112 blocks before
your lives run out. Rows score 7, 5, 3 and 1 points from the top.

The simulation runs at a fixed tick rate (--tps) independent of how often
the screen is drawn (--fps). High scores are kept in a save file locally
and in the run database when served over SSH.`,
	Example: `  breakout play
  breakout play --difficulty hard
  breakout menu
  breakout serve --ssh :2222
  breakout scores --recent`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagTPS, "tps", 120, "simulation ticks per second")
	pf.IntVar(&flagFPS, "fps", 60, "frames drawn per second")
	pf.IntVar(&flagMaxSteps, "max-steps", 30, "simulation ticks allowed per frame, 0 for no cap")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed, 0 picks one from the clock")
	pf.StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "run history database")
	pf.StringVar(&flagSavePath, "save", "", "high score file (default ~/.breakout/save_file.txt)")
	pf.StringVar(&flagConfig, "config", "", "game config YAML to use instead of the lookup path")
	pf.StringVar(&flagDifficulty, "difficulty", "", "preset: easy, normal, hard or fixed")

	rootCmd.AddCommand(playCmd, menuCmd, guiCmd, serveCmd, scoresCmd, listCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "breakout:", err)
		os.Exit(1)
	}
}
