package breakout

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-breakout/internal/config"
	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// State is the phase of the game.
type State int

// Game states
const (
	StateIntro   State = iota // Waiting for the first press
	StateStarted              // Ball in play
	StateWon                  // All bricks cleared
	StateLost                 // Ball fell past the bottom edge
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateStarted:
		return "started"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	for _, st := range []State{StateIntro, StateStarted, StateWon, StateLost} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("breakout: unknown state %q", text)
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game owns one ball, one paddle, one brick field and the score.
// It is not safe for concurrent use; the host calls Step from a single loop.
type Game struct {
	cfg    config.GameConfig
	rng    *rand.Rand
	logger *log.Logger

	ball   Ball
	paddle Paddle
	field  *BrickField
	score  ScoreTracker

	state    State
	tick     uint64
	elapsed  time.Duration
	cooldown int // Ticks left before paddle and brick collisions resume
}

// New creates a game in the Intro state. The seed drives brick hit counts
// and the paddle rebound jitter, so equal seeds and inputs give equal games.
func New(cfg config.GameConfig, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.field = NewBrickField(&g.score, g.rng, cfg.Bricks.TopBuffer)
	g.initPaddle()
	g.field.Reset(cfg.Bricks.Rows, cfg.Bricks.Columns, cfg.Field.Width, cfg.Field.Height)
	g.initBall()
	g.state = StateIntro

	return g
}

// initPaddle centers the paddle near the bottom of the field.
func (g *Game) initPaddle() {
	pc := g.cfg.Paddle
	fc := g.cfg.Field
	g.paddle = Paddle{
		Rect:       core.NewRect(fc.Width/2-pc.Width/2, fc.Height-pc.Height-pc.BottomMargin, pc.Width, pc.Height),
		FieldWidth: fc.Width,
	}
}

// initBall places the ball above the paddle, moving up and to the right.
func (g *Game) initBall() {
	bc := g.cfg.Ball
	g.ball = Ball{
		X:        g.paddle.X + g.paddle.W/2,
		Y:        g.paddle.Y - bc.Diameter - bc.SpawnGap,
		Diameter: bc.Diameter,
		VX:       bc.Speed,
		VY:       -bc.Speed,
	}
	g.cooldown = 0
}

// Step advances the game by one tick and returns the resulting frame.
//
// A press starts the round from Intro and restarts it from Won or Lost.
// While Started, the paddle follows the axis signal (skipped when the
// signal is unavailable), the ball moves and collides, and the round ends
// when the ball falls out or the last brick breaks.
func (g *Game) Step(in core.InputFrame) Frame {
	if in.Pressed {
		g.press()
	}

	if g.state != StateStarted {
		return g.Snapshot()
	}

	g.tick++
	g.elapsed += in.Elapsed

	if in.HasAxis {
		g.paddle.Move(in.Axis * g.cfg.Paddle.Speed)
	}

	g.advanceBall()

	if g.state == StateStarted && g.field.IsCleared() {
		g.setState(StateWon)
	}

	return g.Snapshot()
}

// press handles a primary button press.
func (g *Game) press() {
	switch g.state {
	case StateIntro:
		g.setState(StateStarted)
	case StateWon, StateLost:
		g.Restart()
	}
}

// advanceBall moves the ball, resolves collisions and checks for a loss.
func (g *Game) advanceBall() {
	g.ball.Move()

	BounceBounds(&g.ball, g.cfg.Field.Width)

	if g.cooldown > 0 {
		g.cooldown--
	} else {
		paddleHit := g.collidePaddle()
		brickHit := g.collideBricks()
		if paddleHit || brickHit {
			g.cooldown = g.cfg.Physics.CollisionCooldown
		}
	}

	if g.ball.Y > g.cfg.Field.Height {
		g.setState(StateLost)
	}
}

// collidePaddle bounces the ball off the paddle. A hit on the top or bottom
// edge may also nudge the horizontal speed to vary the rebound angle.
func (g *Game) collidePaddle() bool {
	axis := Classify(&g.ball, g.paddle.Rect)
	if axis == AxisNone {
		return false
	}

	Bounce(&g.ball, axis)
	if axis == AxisVertical && g.cfg.Physics.AngleJitter {
		r := g.cfg.Physics.JitterRange
		g.ball.VX += g.rng.Float64()*2*r - r
	}
	return true
}

// collideBricks resolves every brick the ball touches this tick, in field order.
func (g *Game) collideBricks() bool {
	hit := false
	for _, b := range g.field.Bricks() {
		axis := Classify(&g.ball, b.Rect)
		if axis == AxisNone {
			continue
		}
		broke := g.field.Hit(b)
		Bounce(&g.ball, axis)
		hit = true

		g.logger.Debug("brick hit", "axis", axis, "broke", broke, "left", g.field.Len(), "score", g.score.Value())
	}
	return hit
}

// Restart rebuilds the brick field and respawns the ball above the paddle.
// The score is kept after a win and cleared after a loss. The paddle stays
// where it is. The game returns to Intro.
func (g *Game) Restart() {
	if g.state == StateLost {
		g.score.Reset()
	}

	g.field.Reset(g.cfg.Bricks.Rows, g.cfg.Bricks.Columns, g.cfg.Field.Width, g.cfg.Field.Height)
	g.initBall()
	g.tick = 0
	g.elapsed = 0
	g.setState(StateIntro)
}

// setState switches state and logs the transition.
func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Debug("state changed", "from", g.state, "to", s, "score", g.score.Value(), "tick", g.tick)
	g.state = s
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Value()
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
