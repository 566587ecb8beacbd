// Package core provides fundamental types and utilities shared by the engine,
// the input adapters and the terminal host. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in field coordinates.
type Rect struct {
	X float64 `json:"x"` // Top-left corner position
	Y float64 `json:"y"`
	W float64 `json:"w"` // Width and height
	H float64 `json:"h"`
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Width returns the rectangle width.
func (r Rect) Width() float64 {
	return r.W
}

// Height returns the rectangle height.
func (r Rect) Height() float64 {
	return r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
