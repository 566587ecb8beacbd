package breakout

import (
	"time"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// Frame is an immutable view of one tick for renderers and spectators.
// It shares no memory with the game.
type Frame struct {
	Tick        uint64        `json:"tick"`
	Elapsed     time.Duration `json:"elapsed"`
	State       State         `json:"state"`
	Score       int           `json:"score"`
	Ball        BallView      `json:"ball"`
	Paddle      core.Rect     `json:"paddle"`
	Bricks      []BrickView   `json:"bricks"`
	FieldWidth  float64       `json:"field_width"`
	FieldHeight float64       `json:"field_height"`
}

// BallView is the drawable part of the ball.
type BallView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Diameter float64 `json:"diameter"`
}

// BrickView is a live brick and its remaining hits.
type BrickView struct {
	Rect        core.Rect `json:"rect"`
	HitsToBreak int       `json:"hits"`
}

// Snapshot returns the current frame.
func (g *Game) Snapshot() Frame {
	bricks := make([]BrickView, 0, g.field.Len())
	for _, b := range g.field.bricks {
		bricks = append(bricks, BrickView{Rect: b.Rect, HitsToBreak: b.HitsToBreak})
	}

	return Frame{
		Tick:    g.tick,
		Elapsed: g.elapsed,
		State:   g.state,
		Score:   g.score.Value(),
		Ball: BallView{
			X:        g.ball.X,
			Y:        g.ball.Y,
			Diameter: g.ball.Diameter,
		},
		Paddle:      g.paddle.Rect,
		Bricks:      bricks,
		FieldWidth:  g.cfg.Field.Width,
		FieldHeight: g.cfg.Field.Height,
	}
}
