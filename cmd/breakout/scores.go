package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/hiscore"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresAll    bool
	flagScoresRecent bool
	flagScoresRun    string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show run history and high scores",
	Long: `Display the best runs for the specified game (Breakout when omitted).

Examples:
  breakout scores
  breakout scores pong --limit 20
  breakout scores --recent
  breakout scores --all
  breakout scores --run 0f8c...
  breakout scores breakout --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show statistics for every game")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs of all games")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by id")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'breakout list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresRun != "":
		return showRun(store, flagScoresRun)
	case flagScoresAll:
		return showStats(store)
	case flagScoresRecent:
		runs, err := store.RecentRuns(flagScoresLimit)
		if err != nil {
			return err
		}
		fmt.Println("Recent runs")
		fmt.Println()
		printRuns(runs, true)
		return nil
	case flagScoresClear:
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared run history of %s.\n", gameID)
		return nil
	}

	return showTop(store, gameID)
}

func showTop(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID, registry.Env{})
	if err != nil {
		return err
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breakout play %s' to set the first high score!\n", gameID)
		return nil
	}

	printRuns(runs, false)

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best run: %d\n", best)
	}
	if gameID == "breakout" {
		savePath := flagSavePath
		if savePath == "" {
			savePath = config.UserFile("save_file.txt")
		}
		if saved, err := hiscore.NewFile(savePath).ReadScore(); err == nil {
			fmt.Printf("Saved high score: %03d\n", saved)
		}
	}
	return nil
}

func printRuns(runs []storage.Run, withGame bool) {
	now := time.Now()
	if withGame {
		fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-6s  %s\n", "Rank", "Game", "Score", "Result", "Time", "When")
		fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-6s  %s\n", "----", "----", "-----", "------", "----", "----")
	} else {
		fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Result", "Time", "When")
		fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "----", "----")
	}

	for i, r := range runs {
		when := humanize.RelTime(r.CreatedAt, now, "ago", "from now")
		dur := fmt.Sprintf("%02d:%02d", int(r.Duration.Minutes()), int(r.Duration.Seconds())%60)
		if withGame {
			fmt.Printf("  %-4d  %-10s  %-6d  %-6s  %-6s  %s\n", i+1, r.GameID, r.Score, r.Outcome, dur, when)
		} else {
			fmt.Printf("  %-4d  %-6d  %-6s  %-6s  %s\n", i+1, r.Score, r.Outcome, dur, when)
		}
	}
}

func showRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", runID)
	}
	fmt.Printf("Run      %s\n", r.RunID)
	fmt.Printf("Game     %s\n", r.GameID)
	fmt.Printf("Score    %d\n", r.Score)
	fmt.Printf("Result   %s\n", r.Outcome)
	fmt.Printf("Duration %s\n", r.Duration)
	fmt.Printf("Played   %s (%s)\n", r.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(r.CreatedAt))
	return nil
}

func showStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-5s  %-4s  %-5s  %-7s  %-10s  %s\n", "Game", "Runs", "Wins", "Best", "Average", "Played", "Last")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-10s  %-5s  %-4d  %-5d  %-7.1f  %-10s  %s\n",
			id,
			humanize.Comma(int64(st.RunsCount)),
			st.Wins,
			st.HighScore,
			st.AvgScore,
			st.TotalTime.Round(time.Second),
			humanize.Time(st.LastPlayed),
		)
	}
	return nil
}
