// Package core provides fundamental value types shared by the roster packages.
// It has no external dependencies (especially no Bubble Tea) so selection
// logic stays pure and testable.
package core

import "math"

// Size is a width/height pair in pixels or cells depending on context.
type Size struct {
	W, H int
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// FitScale returns the uniform scale that fits s inside bounds without
// distortion. ok is false for a degenerate size or bounds.
func (s Size) FitScale(bounds Size) (scale float64, ok bool) {
	if s.Empty() || bounds.Empty() {
		return 0, false
	}
	sx := float64(bounds.W) / float64(s.W)
	sy := float64(bounds.H) / float64(s.H)
	return math.Min(sx, sy), true
}

// Scaled returns s multiplied by scale, rounded, never below 1x1.
func (s Size) Scaled(scale float64) Size {
	return Size{
		W: Max(1, int(math.Round(float64(s.W)*scale))),
		H: Max(1, int(math.Round(float64(s.H)*scale))),
	}
}

// Rect represents an axis-aligned box, used for pointer hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Wrap maps i into [0, n) with correct handling of negative values.
// n must be positive.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
