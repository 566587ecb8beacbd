package breakout

import (
	"math"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// Axis identifies which velocity component a collision reverses.
type Axis int

const (
	AxisNone       Axis = iota // No classified collision
	AxisHorizontal             // Left or right edge: reverse VX
	AxisVertical               // Top or bottom edge: reverse VY
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Classify tests the ball against an axis-aligned rectangle.
//
// The ball center is clamped onto the rectangle to find the nearest point.
// If that point is farther than the radius there is no collision. Otherwise a
// zero horizontal offset means the ball touched the top or bottom edge (this
// includes a center inside the rectangle) and a zero vertical offset means it
// touched the left or right edge. A corner contact, where both offsets are
// nonzero, is reported as AxisNone.
func Classify(b *Ball, r core.Rect) Axis {
	cx, cy := b.Center()
	nx := core.ClampF(cx, r.Left(), r.Right())
	ny := core.ClampF(cy, r.Top(), r.Bottom())

	dx := cx - nx
	dy := cy - ny
	if math.Hypot(dx, dy) > b.Radius() {
		return AxisNone
	}

	switch {
	case dx == 0:
		return AxisVertical
	case dy == 0:
		return AxisHorizontal
	default:
		return AxisNone
	}
}

// Bounce reverses the velocity component selected by the axis.
func Bounce(b *Ball, axis Axis) {
	switch axis {
	case AxisHorizontal:
		b.VX = -b.VX
	case AxisVertical:
		b.VY = -b.VY
	}
}

// BounceBounds reflects the ball off the left, right and top field edges.
// The velocity is pointed away from the touched edge, so a ball that is already
// leaving an edge is not turned back into it. This departs from a plain sign
// flip, which traps a ball that is still past the edge on the next tick.
// The top edge is checked even after a side bounce, so a ball entering a top
// corner reflects on both axes in the same tick. The bottom edge is open.
// Returns true if any component changed.
func BounceBounds(b *Ball, fieldWidth float64) bool {
	bounced := false

	if b.X <= 0 && b.VX < 0 {
		b.VX = -b.VX
		bounced = true
	} else if b.X+b.Diameter > fieldWidth && b.VX > 0 {
		b.VX = -b.VX
		bounced = true
	}

	if b.Y <= 0 && b.VY < 0 {
		b.VY = -b.VY
		bounced = true
	}

	return bounced
}
