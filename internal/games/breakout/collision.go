package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// EventKind names the first collision found for a candidate ball position.
type EventKind int

const (
	EventNone EventKind = iota
	EventWallX
	EventWallY
	EventPaddleDrop
	EventPaddleHit
	EventBlockHit
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventWallX:
		return "wall_x"
	case EventWallY:
		return "wall_y"
	case EventPaddleDrop:
		return "paddle_drop"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBlockHit:
		return "block_hit"
	default:
		return "unknown"
	}
}

// Event is the outcome of Resolve. Block is the grid index for EventBlockHit
// and -1 otherwise.
type Event struct {
	Kind  EventKind
	Block int
}

// Resolve returns the first collision of candidate in priority order:
// side walls, top wall, drop past the paddle, paddle, then the first live
// overlapping block in row-major order. It does not modify anything.
func Resolve(candidate, paddle core.RectF, grid *Grid, f Field) Event {
	if candidate.X <= 0 || candidate.Right() > f.W {
		return Event{Kind: EventWallX, Block: -1}
	}
	if candidate.Y <= f.Hotbar {
		return Event{Kind: EventWallY, Block: -1}
	}
	if candidate.Y > paddle.Y+0.5*paddle.H {
		return Event{Kind: EventPaddleDrop, Block: -1}
	}
	if candidate.Overlaps(paddle) {
		return Event{Kind: EventPaddleHit, Block: -1}
	}
	if grid != nil {
		for i := range grid.Blocks {
			b := &grid.Blocks[i]
			if b.Alive && candidate.Overlaps(b.Rect) {
				return Event{Kind: EventBlockHit, Block: i}
			}
		}
	}
	return Event{Kind: EventNone, Block: -1}
}
