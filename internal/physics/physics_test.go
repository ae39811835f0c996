package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestDynamicSpeed(t *testing.T) {
	tests := []struct {
		name     string
		velX     float64
		expected float64
	}{
		{"vertical", 0, 200},
		{"diagonal", 0.5, 150},
		{"horizontal", 1, 100},
		{"negative", -0.5, 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DynamicSpeed(100, tc.velX); got != tc.expected {
				t.Errorf("DynamicSpeed(100, %v) = %v, expected %v", tc.velX, got, tc.expected)
			}
		})
	}
}

func TestNudge(t *testing.T) {
	if got := Nudge(0, 0.003); got != 0.003 {
		t.Errorf("Nudge(0) = %v, expected 0.003", got)
	}
	if got := Nudge(math.Copysign(0, -1), 0.003); got != 0.003 {
		t.Errorf("Nudge(-0) = %v, expected 0.003", got)
	}
	if got := Nudge(-0.2, 0.003); got != -0.2 {
		t.Errorf("Nudge(-0.2) = %v, expected unchanged", got)
	}
}

func TestStep(t *testing.T) {
	r := core.RectF{X: 100, Y: 100, W: 10, H: 10}
	got := Step(r, 0.5, -1, 100, 0.01)

	// speed = 150, dx = 0.5*150*0.01, dy = -1*150*0.01
	if math.Abs(got.X-100.75) > 1e-9 || math.Abs(got.Y-98.5) > 1e-9 {
		t.Errorf("Step() = (%v, %v), expected (100.75, 98.5)", got.X, got.Y)
	}
	if got.W != 10 || got.H != 10 {
		t.Error("Step() must not change size")
	}
}

func TestPaddleBounce(t *testing.T) {
	paddle := core.RectF{X: 100, Y: 500, W: 200, H: 20}

	centre := core.RectF{X: 195, Y: 490, W: 10, H: 10}
	if got := PaddleBounce(centre, paddle, 100); got != 0 {
		t.Errorf("centre hit = %v, expected 0", got)
	}

	right := core.RectF{X: 295, Y: 490, W: 10, H: 10}
	if got := PaddleBounce(right, paddle, 100); got != 1 {
		t.Errorf("right edge hit = %v, expected 1", got)
	}

	left := core.RectF{X: 95, Y: 490, W: 10, H: 10}
	if got := PaddleBounce(left, paddle, 100); got != -1 {
		t.Errorf("left edge hit = %v, expected -1", got)
	}

	if got := PaddleBounce(right, paddle, 0); got != 0 {
		t.Errorf("zero divisor should yield 0, got %v", got)
	}
}

func TestShallowAngle(t *testing.T) {
	if got := ShallowAngle(0, 0.3); got != 0.3 {
		t.Errorf("ShallowAngle(0) = %v, expected 0.3", got)
	}
	if got := ShallowAngle(0.8, 0.3); got != 0.3 {
		t.Errorf("ShallowAngle(0.8) = %v, expected 0.3", got)
	}
	if got := ShallowAngle(-0.01, 0.3); got != -0.3 {
		t.Errorf("ShallowAngle(-0.01) = %v, expected -0.3", got)
	}
}
