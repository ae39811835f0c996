package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot is a read-only copy of everything a renderer or test needs.
type Snapshot struct {
	Tick   uint64
	Status Status
	Paused bool

	Field       Field
	Paddle      core.RectF
	PaddleColor core.Color
	Ball        core.RectF
	BallVelX    float64
	BallVelY    float64

	// Blocks is a copy of the grid, row-major.
	Rows, Cols  int
	Blocks      []Block
	AliveBlocks int

	Lives     int
	MaxLives  int
	Score     int
	HighScore int
	Minutes   int
	Seconds   int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blocks := make([]Block, len(g.grid.Blocks))
	copy(blocks, g.grid.Blocks)

	snap := Snapshot{
		Tick:        g.ticks,
		Status:      g.status,
		Paused:      g.paused,
		Field:       g.field,
		Paddle:      g.paddle.Rect,
		PaddleColor: g.paddle.Color,
		Ball:        g.ball.Rect,
		BallVelX:    g.ball.VelX,
		BallVelY:    g.ball.VelY,
		Rows:        g.grid.Rows,
		Cols:        g.grid.Cols,
		Blocks:      blocks,
		AliveBlocks: g.grid.Alive(),
		Lives:       g.lives,
		MaxLives:    g.maxLives,
		Score:       g.score,
		Minutes:     g.timer.Minutes,
		Seconds:     g.timer.Seconds,
	}
	if g.keeper != nil {
		snap.HighScore = g.keeper.Best()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Status) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + math.Float64bits(snap.BallVelX)
	h = h*31 + math.Float64bits(snap.BallVelY)
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AliveBlocks) //#nosec G115 -- hash computation

	for i := range snap.Blocks {
		if snap.Blocks[i].Alive {
			h = h*31 + uint64(i+1) //#nosec G115 -- hash computation
		}
	}
	return h
}
