package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/hud"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BlockChar  = '█'
)

// Minimum terminal size that still shows every block column.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// Render draws the game scaled from field units onto the cell grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.field.W <= 0 || g.field.H <= 0 {
		return
	}

	sx := float64(dst.Width()) / g.field.W
	sy := float64(dst.Height()) / g.field.H

	g.renderHUD(dst)
	g.renderBlocks(dst, sx, sy)

	ball := g.ball.Rect.Cells(sx, sy)
	dst.SetColored(ball.X, ball.Y, BallChar, core.ColorWhite)

	paddle := g.paddle.Rect.Cells(sx, sy)
	dst.DrawRectColored(core.NewRect(paddle.X, paddle.Y, paddle.W, 1), PaddleChar, g.paddle.Color)

	g.renderOverlay(dst)
}

// renderHUD draws the cached HUD strings at their anchors on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	for _, f := range hud.Fields {
		x := int(f.Anchor() * float64(dst.Width()))
		dst.DrawTextColored(x, 0, g.text.Text(f), core.ColorWhite)
	}
}

// renderBlocks rounds block edges to the nearest cell so adjacent rows
// do not overdraw each other.
func (g *Game) renderBlocks(dst *core.Screen, sx, sy float64) {
	for i := range g.grid.Blocks {
		b := &g.grid.Blocks[i]
		if !b.Alive {
			continue
		}
		x0 := int(math.Round(b.Rect.X * sx))
		x1 := int(math.Round(b.Rect.Right() * sx))
		y0 := int(math.Round(b.Rect.Y * sy))
		y1 := int(math.Round(b.Rect.Bottom() * sy))
		dst.DrawRectColored(core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1)), BlockChar, b.Color)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.status == StatusGameOver:
		title := "GAME OVER"
		if g.Won() {
			title = "YOU WIN!"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, title, subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case g.status == StatusResetRound:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func(env registry.Env) registry.Game {
		return New(env)
	})
}
