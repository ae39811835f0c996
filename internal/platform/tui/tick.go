// Package tui provides the Bubble Tea frontend: the frame loop that drives the
// fixed-step simulation, key mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameCmd schedules the next FrameMsg.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = core.DefaultFrameRate
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
