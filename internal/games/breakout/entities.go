package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Status is the round state machine.
type Status int

const (
	StatusResetRound Status = iota // ball rests on the paddle until launched
	StatusInPlay
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusResetRound:
		return "reset_round"
	case StatusInPlay:
		return "in_play"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Paddle colors.
const (
	PaddleColor = core.ColorGray
	WinColor    = core.ColorGreen
	LoseColor   = core.ColorRed
)

// Field is the playfield the ball is confined to.
type Field struct {
	W, H   float64
	Hotbar float64 // the ball reflects at this y
}

// Paddle is the player-controlled bar.
type Paddle struct {
	Rect      core.RectF
	Color     core.Color
	Velocity  float64 // -1, 0 or +1
	Speed     float64 // field units per second
	MoveLeft  bool
	MoveRight bool
	Started   bool // set by the first launch and never cleared
}

// intent resolves held directions into a velocity; both or neither cancel.
func (p *Paddle) intent() float64 {
	switch {
	case p.MoveLeft && !p.MoveRight:
		return -1
	case p.MoveRight && !p.MoveLeft:
		return 1
	default:
		return 0
	}
}

// move steps the paddle, rejecting any position that leaves the field.
func (p *Paddle) move(dt float64, f Field) {
	p.Velocity = p.intent()
	x := p.Rect.X + p.Velocity*p.Speed*dt
	if x < 0 || x+p.Rect.W > f.W {
		return
	}
	p.Rect.X = x
}

// Ball is the square projectile.
type Ball struct {
	Rect       core.RectF
	VelX, VelY float64 // direction components, |VelY| == 1
	Speed      float64 // base speed in field units per second
}

// rest parks the ball centred on top of the paddle, aimed straight up.
func (b *Ball) rest(p Paddle) {
	b.Rect.X = p.Rect.MidX() - 0.5*b.Rect.W
	b.Rect.Y = p.Rect.Y - b.Rect.H
	b.VelX = 0
	b.VelY = -1
}

// Block is one brick of the grid.
type Block struct {
	Rect   core.RectF
	Alive  bool
	Color  core.Color
	Points int
}

// Grid stores blocks row-major. It is allocated once per game.
type Grid struct {
	Rows, Cols int
	Blocks     []Block
	alive      int
}

// NewGrid lays out a full grid inside a field of width fieldW below the hotbar.
// Block width is floored to whole units and the leftover width centres the grid.
func NewGrid(cfg config.BlocksConfig, fieldW, fieldH, hotbar float64) Grid {
	rows, cols := cfg.Rows, cfg.Cols
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := Grid{Rows: rows, Cols: cols, Blocks: make([]Block, rows*cols)}
	if rows == 0 || cols == 0 {
		return g
	}

	blockW := float64(int((fieldW - float64(cols)*cfg.GapX) / float64(cols)))
	blockH := fieldH * cfg.AreaRatio / float64(rows)
	margin := 0.5*(fieldW-float64(cols)*blockW) + cfg.GapX

	for r := 0; r < rows; r++ {
		color, ok := core.ParseColor(cfg.RowColor(r))
		if !ok {
			color = core.ColorWhite
		}
		for c := 0; c < cols; c++ {
			g.Blocks[r*cols+c] = Block{
				Rect: core.RectF{
					X: margin + float64(c)*blockW,
					Y: hotbar + cfg.GapY + float64(r)*(blockH+cfg.GapY),
					W: blockW - cfg.GapX,
					H: blockH,
				},
				Alive:  true,
				Color:  color,
				Points: cfg.RowPoints(r),
			}
		}
	}
	g.alive = len(g.Blocks)
	return g
}

// Index returns the row-major index of (row, col).
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// At returns the block at (row, col).
func (g *Grid) At(row, col int) *Block {
	return &g.Blocks[g.Index(row, col)]
}

// Alive returns the number of live blocks.
func (g *Grid) Alive() int {
	return g.alive
}

// Kill destroys block i and returns its points. Dead blocks yield 0.
func (g *Grid) Kill(i int) int {
	b := &g.Blocks[i]
	if !b.Alive {
		return 0
	}
	b.Alive = false
	g.alive--
	return b.Points
}

// MaxScore is the sum of all block points.
func (g *Grid) MaxScore() int {
	total := 0
	for i := range g.Blocks {
		total += g.Blocks[i].Points
	}
	return total
}

// Timer counts elapsed play time at one second granularity.
type Timer struct {
	Minutes, Seconds int
	Last             time.Time
}

// Start marks now as the reference instant.
func (t *Timer) Start(now time.Time) {
	t.Last = now
}

// Tick adds a second once at least one second has passed since the last
// increment. It reports whether the displayed time changed.
func (t *Timer) Tick(now time.Time) bool {
	if t.Last.IsZero() {
		t.Last = now
		return false
	}
	if now.Sub(t.Last) < time.Second {
		return false
	}
	t.Seconds++
	if t.Seconds >= 60 {
		t.Seconds = 0
		t.Minutes++
	}
	t.Last = now
	return true
}
