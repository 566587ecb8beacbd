package breakout

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilt-breakout/internal/config"
	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// testConfig returns a square field with deterministic rebounds.
func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Field.Width = 1000
	cfg.Field.Height = 1000
	cfg.Physics.AngleJitter = false
	return cfg
}

// startedGame returns a game already in the Started state.
func startedGame(t *testing.T, cfg config.GameConfig) *Game {
	t.Helper()
	g := New(cfg, 42)
	g.state = StateStarted
	return g
}

// idle is a tick with no axis signal and no press.
var idle = core.InputFrame{}

func TestScenarioABrickHitFlipsVerticalVelocity(t *testing.T) {
	g := startedGame(t, testConfig())
	brick := &Brick{Rect: core.NewRect(90, 90, 50, 50), HitsToBreak: 2}
	g.field.Set([]*Brick{brick})
	// Center at (105, 105) after the move, radius 10
	g.ball = Ball{X: 94.5, Y: 94.5, Diameter: 20, VX: 0.5, VY: 0.5}

	f := g.Step(idle)

	assert.Equal(t, 1, brick.HitsToBreak)
	assert.Equal(t, 1, f.Score)
	assert.Equal(t, -0.5, g.ball.VY)
	assert.Equal(t, 0.5, g.ball.VX)
	require.Len(t, f.Bricks, 1)
	assert.Equal(t, 1, f.Bricks[0].HitsToBreak)
	assert.Equal(t, StateStarted, f.State)
}

func TestScenarioBPaddleClampsAtLeftEdge(t *testing.T) {
	p := Paddle{Rect: core.NewRect(0, 690, 130, 20), FieldWidth: 1280}
	p.Move(-15)
	assert.Equal(t, 0.0, p.X)
}

func TestPaddleMoveStaysInField(t *testing.T) {
	deltas := []float64{-1e9, -500, -15, -0.1, 0, 0.1, 15, 500, 1e9}
	for _, start := range []float64{0, 300, 1150} {
		for _, d := range deltas {
			p := Paddle{Rect: core.NewRect(start, 690, 130, 20), FieldWidth: 1280}
			p.Move(d)
			assert.GreaterOrEqual(t, p.X, 0.0, "start=%v delta=%v", start, d)
			assert.LessOrEqual(t, p.X, 1280.0-130, "start=%v delta=%v", start, d)
		}
	}

	p := Paddle{Rect: core.NewRect(100, 690, 130, 20), FieldWidth: 1280}
	p.Move(25)
	assert.Equal(t, 125.0, p.X)
}

func TestScenarioCClearingLastBrickWinsSameTick(t *testing.T) {
	g := startedGame(t, testConfig())
	g.field.Set([]*Brick{{Rect: core.NewRect(90, 90, 50, 50), HitsToBreak: 1}})
	g.ball = Ball{X: 94.5, Y: 94.5, Diameter: 20, VX: 0.5, VY: 0.5}

	f := g.Step(idle)

	assert.Equal(t, StateWon, f.State)
	assert.Empty(t, f.Bricks)
	assert.Equal(t, 1, f.Score)
}

func TestEmptyFieldWinsOnNextTick(t *testing.T) {
	g := startedGame(t, testConfig())
	g.field.Set(nil)

	assert.Equal(t, StateWon, g.Step(idle).State)
}

func TestScenarioDBallBelowFieldLoses(t *testing.T) {
	cfg := testConfig()
	g := startedGame(t, cfg)
	g.ball = Ball{X: 10, Y: cfg.Field.Height + 1, Diameter: 25, VX: 2.5, VY: 2.5}

	assert.Equal(t, StateLost, g.Step(idle).State)
}

func TestLossOnFirstTickPastBottom(t *testing.T) {
	cfg := testConfig()
	g := startedGame(t, cfg)
	g.ball = Ball{X: 10, Y: cfg.Field.Height - 2, Diameter: 25, VX: 1, VY: 1}

	assert.Equal(t, StateStarted, g.Step(idle).State, "y = height - 1 is still in play")
	assert.Equal(t, StateStarted, g.Step(idle).State, "y = height is still in play")
	assert.Equal(t, StateLost, g.Step(idle).State)
}

func TestLossTakesPrecedenceOverWin(t *testing.T) {
	cfg := testConfig()
	g := startedGame(t, cfg)
	g.field.Set([]*Brick{{Rect: core.NewRect(0, 990, 100, 20), HitsToBreak: 1}})
	g.ball = Ball{X: 20, Y: 999.5, Diameter: 20, VX: 0, VY: 1}

	f := g.Step(idle)

	assert.Empty(t, f.Bricks)
	assert.Equal(t, StateLost, f.State)
}

func TestScenarioERestartAfterLossResetsScore(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, 7)
	g.state = StateLost
	g.score.value = 7
	g.field.Set(nil)

	f := g.Step(core.InputFrame{Pressed: true})

	assert.Equal(t, StateIntro, f.State)
	assert.Equal(t, 0, f.Score)
	assert.Len(t, f.Bricks, cfg.Bricks.Rows*cfg.Bricks.Columns)
}

func TestRestartAfterWinKeepsScore(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, 7)
	g.state = StateWon
	g.score.value = 12
	g.field.Set(nil)

	f := g.Step(core.InputFrame{Pressed: true})

	assert.Equal(t, StateIntro, f.State)
	assert.Equal(t, 12, f.Score)
	assert.Len(t, f.Bricks, cfg.Bricks.Rows*cfg.Bricks.Columns)
	for _, b := range f.Bricks {
		assert.GreaterOrEqual(t, b.HitsToBreak, 1)
		assert.LessOrEqual(t, b.HitsToBreak, MaxBrickHits)
	}
}

func TestRestartRespawnsBallAbovePaddle(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, 7)
	g.state = StateLost
	g.paddle.X = 0
	g.ball = Ball{X: 500, Y: 1200, Diameter: 25, VX: -3, VY: 3}

	g.Restart()

	assert.Equal(t, 0.0, g.paddle.X, "paddle is not moved by a restart")
	assert.Equal(t, g.paddle.X+g.paddle.W/2, g.ball.X)
	assert.Equal(t, g.paddle.Y-cfg.Ball.Diameter-cfg.Ball.SpawnGap, g.ball.Y)
	assert.Equal(t, cfg.Ball.Speed, g.ball.VX)
	assert.Equal(t, -cfg.Ball.Speed, g.ball.VY)
	assert.Equal(t, uint64(0), g.Snapshot().Tick)
}

func TestPressStartsRound(t *testing.T) {
	g := New(testConfig(), 1)
	require.Equal(t, StateIntro, g.State())

	g.Step(idle)
	assert.Equal(t, StateIntro, g.State(), "no press keeps the intro")

	g.Step(core.InputFrame{Pressed: true})
	assert.Equal(t, StateStarted, g.State())

	g.Step(core.InputFrame{Pressed: true})
	assert.Equal(t, StateStarted, g.State(), "press while playing does nothing")
}

func TestIdleStatesDoNotAdvance(t *testing.T) {
	for _, s := range []State{StateIntro, StateWon, StateLost} {
		g := New(testConfig(), 1)
		g.state = s
		before := g.Snapshot()

		after := g.Step(core.InputFrame{Axis: 1, HasAxis: true, Elapsed: time.Second})

		assert.Equal(t, before, after, s.String())
	}
}

func TestMissingAxisSkipsPaddleMove(t *testing.T) {
	cfg := testConfig()
	g := startedGame(t, cfg)
	x := g.paddle.X

	g.Step(core.InputFrame{Axis: 1, HasAxis: false})
	assert.Equal(t, x, g.paddle.X)

	g.Step(core.InputFrame{Axis: 1, HasAxis: true})
	assert.Equal(t, x+cfg.Paddle.Speed, g.paddle.X)

	g.Step(core.InputFrame{Axis: -0.5, HasAxis: true})
	assert.Equal(t, x+cfg.Paddle.Speed/2, g.paddle.X)
}

func TestTickAndElapsedCountOnlyWhileStarted(t *testing.T) {
	g := New(testConfig(), 1)
	g.Step(core.InputFrame{Elapsed: 16 * time.Millisecond})
	assert.Equal(t, uint64(0), g.Snapshot().Tick)

	g.Step(core.InputFrame{Pressed: true, Elapsed: 16 * time.Millisecond})
	f := g.Step(core.InputFrame{Elapsed: 16 * time.Millisecond})

	assert.Equal(t, uint64(2), f.Tick)
	assert.Equal(t, 32*time.Millisecond, f.Elapsed)
}

func TestPaddleHitReversesBall(t *testing.T) {
	cfg := testConfig()
	g := startedGame(t, cfg)
	g.field.Set([]*Brick{{Rect: core.NewRect(0, 0, 10, 10), HitsToBreak: 1}})
	// Ball center directly above the paddle, touching its top edge after the move
	cx := g.paddle.X + g.paddle.W/2
	g.ball = Ball{X: cx - 10, Y: g.paddle.Y - 20, Diameter: 20, VX: 1, VY: 2}

	g.Step(idle)

	assert.Equal(t, -2.0, g.ball.VY)
	assert.Equal(t, 1.0, g.ball.VX, "jitter disabled")
}

func TestPaddleHitJitterIsBounded(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.AngleJitter = true
	cfg.Physics.JitterRange = 1

	for seed := range int64(50) {
		g := New(cfg, seed)
		g.state = StateStarted
		cx := g.paddle.X + g.paddle.W/2
		g.ball = Ball{X: cx - 10, Y: g.paddle.Y - 20, Diameter: 20, VX: 2.5, VY: 2}

		g.Step(idle)

		assert.Equal(t, -2.0, g.ball.VY)
		assert.GreaterOrEqual(t, g.ball.VX, 1.5)
		assert.Less(t, g.ball.VX, 3.5)
	}
}

func TestCollisionCooldown(t *testing.T) {
	tests := []struct {
		name     string
		cooldown int
		hitsLeft int
	}{
		{"enabled", 6, 2},
		{"disabled", 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Physics.CollisionCooldown = tc.cooldown
			g := startedGame(t, cfg)
			brick := &Brick{Rect: core.NewRect(90, 90, 50, 50), HitsToBreak: 3}
			g.field.Set([]*Brick{brick})
			g.ball = Ball{X: 100, Y: 100, Diameter: 20, VX: 0.1, VY: 0.1}

			g.Step(idle)
			require.Equal(t, 2, brick.HitsToBreak, "first contact always counts")

			// Still overlapping on the next tick
			g.Step(idle)
			assert.Equal(t, tc.hitsLeft, brick.HitsToBreak)
		})
	}
}

func TestDefaultConfigResolvesEveryTick(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Physics.AngleJitter = false
	require.Zero(t, cfg.Physics.CollisionCooldown)

	g := startedGame(t, cfg)
	left := &Brick{Rect: core.NewRect(0, 100, 100, 50), HitsToBreak: 3}
	right := &Brick{Rect: core.NewRect(130, 100, 100, 50), HitsToBreak: 3}
	g.field.Set([]*Brick{left, right})
	g.ball = Ball{X: 104, Y: 110, Diameter: 25, VX: 2, VY: 0}

	f := g.Step(idle)
	require.Equal(t, 1, f.Score)
	require.Equal(t, 2, right.HitsToBreak)
	require.Equal(t, -2.0, g.ball.VX)

	// The ball crosses the gap and touches the left brick three ticks later,
	// well inside any cooldown window.
	for range 2 {
		f = g.Step(idle)
		require.Equal(t, 1, f.Score)
	}
	f = g.Step(idle)

	assert.Equal(t, 2, f.Score)
	assert.Equal(t, 2, left.HitsToBreak)
	assert.Equal(t, 2.0, g.ball.VX)
	assert.Equal(t, 100.0, g.ball.X)
}

func TestScoreNeverDecreasesWhilePlaying(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := New(cfg, 99)
	g.Step(core.InputFrame{Pressed: true})

	prev := 0
	for i := range 20000 {
		axis := -0.4
		if i%200 < 100 {
			axis = 0.4
		}
		f := g.Step(core.InputFrame{Axis: axis, HasAxis: true})
		if f.State != StateStarted {
			break
		}
		assert.GreaterOrEqual(t, f.Score, prev)
		assert.GreaterOrEqual(t, f.Paddle.X, 0.0)
		assert.LessOrEqual(t, f.Paddle.X, cfg.Field.Width-cfg.Paddle.Width)
		for _, b := range f.Bricks {
			require.Positive(t, b.HitsToBreak)
		}
		prev = f.Score
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultGameConfig()

	run := func() Frame {
		g := New(cfg, 12345)
		var f Frame
		for i := range 3000 {
			in := core.InputFrame{Axis: float64(i%7-3) / 3, HasAxis: i%11 != 0, Pressed: i == 0}
			f = g.Step(in)
		}
		return f
	}

	assert.Equal(t, run(), run())
}

func TestFrameJSON(t *testing.T) {
	g := New(testConfig(), 1)
	g.Step(core.InputFrame{Pressed: true})

	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "started", decoded["state"])
	assert.Contains(t, decoded, "bricks")
	assert.Contains(t, decoded, "paddle")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "intro", StateIntro.String())
	assert.Equal(t, "started", StateStarted.String())
	assert.Equal(t, "won", StateWon.String())
	assert.Equal(t, "lost", StateLost.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestFrameJSONRoundTrip(t *testing.T) {
	g := New(testConfig(), 1)
	g.Step(core.InputFrame{Pressed: true, Elapsed: time.Millisecond})
	want := g.Snapshot()

	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got Frame
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)

	var s State
	assert.Error(t, s.UnmarshalText([]byte("paused")))
}
