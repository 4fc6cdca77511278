package entity

import "math"

// Rect is an axis-aligned rectangle in world pixel coordinates
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects reports whether the two rectangles overlap.
// Touching edges do not count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Pad grows the rectangle horizontally by dx on both sides
func (r Rect) Pad(dx float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y, W: r.W + 2*dx, H: r.H}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseOutCubic maps t in [0, 1] onto a decelerating curve
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
