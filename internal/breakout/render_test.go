package breakout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// unitFrame maps one field unit to one cell on a 40x11 screen.
func unitFrame(state State) Frame {
	return Frame{
		State: state,
		Score: 7,
		Ball:  BallView{X: 19, Y: 4, Diameter: 2},
		Bricks: []BrickView{
			{Rect: core.NewRect(0, 0, 4, 1), HitsToBreak: 3},
			{Rect: core.NewRect(10, 0, 4, 1), HitsToBreak: 2},
			{Rect: core.NewRect(20, 0, 4, 1), HitsToBreak: 1},
		},
		Paddle:      core.NewRect(5, 8, 6, 1),
		FieldWidth:  40,
		FieldHeight: 10,
	}
}

func TestBrickColor(t *testing.T) {
	assert.Equal(t, core.ColorGray, BrickColor(4))
	assert.Equal(t, core.ColorBlue, BrickColor(3))
	assert.Equal(t, core.ColorGreen, BrickColor(2))
	assert.Equal(t, core.ColorYellow, BrickColor(1))
}

func TestRenderEntities(t *testing.T) {
	s := core.NewScreen(40, 11)
	Render(unitFrame(StateStarted), s)

	assert.Equal(t, core.Cell{Rune: BrickChar, Color: core.ColorBlue}, s.GetCell(0, 1))
	assert.Equal(t, core.Cell{Rune: BrickChar, Color: core.ColorBlue}, s.GetCell(2, 1))
	assert.Equal(t, ' ', s.Get(3, 1), "gap between bricks")
	assert.Equal(t, core.ColorGreen, s.GetCell(10, 1).Color)
	assert.Equal(t, core.ColorYellow, s.GetCell(20, 1).Color)

	assert.Equal(t, core.Cell{Rune: PaddleChar, Color: core.ColorRed}, s.GetCell(5, 9))
	assert.Equal(t, core.Cell{Rune: PaddleChar, Color: core.ColorRed}, s.GetCell(10, 9))
	assert.Equal(t, ' ', s.Get(11, 9))

	assert.Equal(t, BallChar, s.Get(20, 6))

	assert.True(t, strings.HasPrefix(s.Row(0), " Score: 7"))
	assert.Contains(t, s.Row(0), "started")
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		state State
		text  string
	}{
		{StateIntro, "Press 'Button 1' to start the game."},
		{StateWon, "You won!"},
		{StateLost, "You lost!"},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			s := core.NewScreen(80, 11)
			Render(unitFrame(tc.state), s)
			assert.Contains(t, s.String(), tc.text)
		})
	}

	s := core.NewScreen(80, 11)
	Render(unitFrame(StateStarted), s)
	assert.NotContains(t, s.String(), "You")
}

func TestRenderTinyScreen(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {10, 1}, {1, 2}} {
		s := core.NewScreen(size[0], size[1])
		assert.NotPanics(t, func() { Render(unitFrame(StateIntro), s) })
	}
}

func TestRenderGameSnapshot(t *testing.T) {
	g := New(testConfig(), 3)
	s := core.NewScreen(80, 24)

	Render(g.Snapshot(), s)

	assert.Contains(t, s.String(), string(BrickChar))
	assert.Contains(t, s.String(), string(PaddleChar))
}
