// Package core holds the frontend-neutral pieces of the game platform: the
// cell screen, colours, input, clocks and the fixed-step driver. Nothing here
// imports a UI toolkit.
package core

import "math"

// Rect is a box measured in whole screen cells.
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a Rect from its origin and size.
func NewRect(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// RectF is a box in field units. Games simulate in RectF and convert to
// cells only while drawing.
type RectF struct {
	X, Y, W, H float64
}

// Right is the x coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom is the y coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// MidX is the horizontal centre.
func (r RectF) MidX() float64 { return r.X + r.W/2 }

// Overlaps is strict: boxes that only touch along an edge do not overlap.
func (r RectF) Overlaps(o RectF) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Cells projects r onto a cell grid where one field unit spans sx by sy
// cells. Partially covered cells are included, and the result is never
// smaller than 1x1.
func (r RectF) Cells(sx, sy float64) Rect {
	x := int(math.Floor(r.X * sx))
	y := int(math.Floor(r.Y * sy))
	w := int(math.Ceil(r.Right()*sx)) - x
	h := int(math.Ceil(r.Bottom()*sy)) - y
	return Rect{X: x, Y: y, W: Max(w, 1), H: Max(h, 1)}
}

// Max returns the larger of a and b.
func Max(a, b int) int { return max(a, b) }
