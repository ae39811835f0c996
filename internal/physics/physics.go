// Package physics holds the ball and paddle math shared by the paddle games.
// Velocities are direction components, not unit vectors: VelX lies roughly in
// [-1, 1] and also modulates how fast the ball travels on both axes.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DynamicSpeed returns the per-axis travel speed for a ball whose horizontal
// direction component is velX. Shallow (more horizontal) directions travel
// slower, steep ones faster.
func DynamicSpeed(base, velX float64) float64 {
	return base * (1 + (1 - math.Abs(velX)))
}

// Nudge replaces an exactly-zero horizontal component with epsilon so a ball
// never travels perfectly vertically.
func Nudge(velX, epsilon float64) float64 {
	if velX == 0 {
		return epsilon
	}
	return velX
}

// Step returns the candidate position after moving r for dt seconds.
func Step(r core.RectF, velX, velY, base, dt float64) core.RectF {
	speed := DynamicSpeed(base, velX)
	r.X += velX * speed * dt
	r.Y += velY * speed * dt
	return r
}

// PaddleBounce returns the new horizontal component after ball strikes paddle.
// The result is the offset of the ball's midpoint from the paddle's midpoint
// divided by divisor: centre hits go nearly straight up, edge hits reach
// halfWidth/divisor.
func PaddleBounce(ball, paddle core.RectF, divisor float64) float64 {
	if divisor == 0 {
		return 0
	}
	return (ball.MidX() - paddle.MidX()) / divisor
}

// ShallowAngle returns the fixed block-rebound component keeping the sign of
// velX (positive when velX is zero or positive).
func ShallowAngle(velX, angle float64) float64 {
	if velX >= 0 {
		return angle
	}
	return -angle
}
