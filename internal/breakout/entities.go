// Package breakout implements the brick-breaking engine: entity motion,
// circle-versus-rectangle collisions, the brick field, scoring and the
// Intro/Started/Won/Lost state machine. It is driven one tick at a time by
// Game.Step and knows nothing about terminals or sensors.
package breakout

import "github.com/vovakirdan/tilt-breakout/internal/core"

// Ball is a circle described by the top-left corner of its bounding box.
type Ball struct {
	X, Y     float64 // Top-left of the bounding box
	Diameter float64
	VX, VY   float64 // Velocity per tick
}

// Radius returns half the diameter.
func (b *Ball) Radius() float64 {
	return b.Diameter / 2
}

// Center returns the center of the ball.
func (b *Ball) Center() (float64, float64) {
	r := b.Radius()
	return b.X + r, b.Y + r
}

// Move advances the ball by its velocity.
// Collisions and the game-over check are run by the game after each move.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Bounds returns the bounding box of the ball.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Diameter, b.Diameter)
}

// Paddle is the player-controlled rectangle at the bottom of the field.
type Paddle struct {
	core.Rect
	FieldWidth float64
}

// Move shifts the paddle horizontally and keeps it inside [0, FieldWidth-W].
func (p *Paddle) Move(delta float64) {
	p.X = core.ClampF(p.X+delta, 0, max(p.FieldWidth-p.W, 0))
}

// Brick is a breakable rectangle. A brick with HitsToBreak <= 0 is never
// left in a BrickField.
type Brick struct {
	core.Rect
	HitsToBreak int
}
