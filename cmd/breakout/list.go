package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games with their best scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		games := registry.List()
		if len(games) == 0 {
			return fmt.Errorf("no games registered")
		}

		var stats map[string]*storage.GameStats
		if store := openStore(log.New(io.Discard)); store != nil {
			//nolint:errcheck // read-only use
			defer store.Close()
			stats, _ = store.GetAllGamesStats()
		}

		fmt.Fprintln(cmd.OutOrStdout(), gameTable(games, stats))
		fmt.Fprintln(cmd.OutOrStdout(), "Start one with 'breakout play <id>'.")
		return nil
	},
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	listCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// gameTable renders one row per game. stats may be nil.
func gameTable(games []registry.GameInfo, stats map[string]*storage.GameStats) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "RUNS", "BEST", "LAST PLAYED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return listCellStyle
		})

	for _, g := range games {
		runs, best, last := "0", "-", "never"
		if st, ok := stats[g.ID]; ok && st.RunsCount > 0 {
			runs = strconv.Itoa(st.RunsCount)
			best = humanize.Comma(int64(st.HighScore))
			last = humanize.Time(st.LastPlayed)
		}
		t.Row(g.ID, g.Title, runs, best, last)
	}
	return t.String()
}
