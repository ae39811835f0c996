package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// palette holds the true-colour value of each cell colour with an ANSI-256
// fallback for terminals that cannot show it. Block and paddle colours match
// the windowed frontend.
var palette = map[core.Color]lipgloss.CompleteColor{
	core.ColorRed:    {TrueColor: "#9a4e4e", ANSI256: "131", ANSI: "1"},
	core.ColorPink:   {TrueColor: "#b3648a", ANSI256: "132", ANSI: "5"},
	core.ColorGreen:  {TrueColor: "#638d5b", ANSI256: "65", ANSI: "2"},
	core.ColorYellow: {TrueColor: "#bba53b", ANSI256: "143", ANSI: "3"},
	core.ColorGray:   {TrueColor: "#c3c3c3", ANSI256: "251", ANSI: "7"},
	core.ColorWhite:  {TrueColor: "#dcdcdc", ANSI256: "253", ANSI: "15"},
	core.ColorBlue:   {TrueColor: "#4e6e9a", ANSI256: "67", ANSI: "4"},
	core.ColorCyan:   {TrueColor: "#4e9a96", ANSI256: "73", ANSI: "6"},
	core.ColorOrange: {TrueColor: "#c4783c", ANSI256: "173", ANSI: "3"},
}

var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, fg := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(fg)
	}
	return styles
}()

func cellStyle(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns a screen buffer into styled text. Runs of cells sharing
// a colour are emitted with a single style.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run []rune
	for y := range rows {
		var line strings.Builder
		color := core.ColorDefault
		run = run[:0]
		flush := func() {
			if len(run) > 0 {
				line.WriteString(cellStyle(color).Render(string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				flush()
				color = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush()
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
