package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared look of the menu, scoreboard and game help line.
var (
	accent = lipgloss.Color("229")
	dim    = lipgloss.Color("241")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle     = lipgloss.NewStyle().Foreground(dim)
)

// centerText left-pads text so its printable width sits in the middle of
// width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
