package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '='
	BallChar   = '●'
)

// Overlay messages
var (
	IntroLines = []string{
		"Hold your phone sideways.",
		"Press 'Button 1' to start the game.",
		"When the game is started, tilt your phone sideways to move the paddle.",
	}
	WonLines  = []string{"You won!", "Press Button 1 to start another round"}
	LostLines = []string{"You lost!", "Press Button 1 to start another round"}
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

// BrickColor returns the color band for a brick's remaining hits.
func BrickColor(hits int) core.Color {
	switch {
	case hits > 3:
		return core.ColorGray
	case hits == 3:
		return core.ColorBlue
	case hits == 2:
		return core.ColorGreen
	default:
		return core.ColorYellow
	}
}

// Render draws a frame onto the screen, scaling field coordinates to the
// available cells. Row 0 holds the score line.
func Render(f Frame, dst *core.Screen) {
	dst.Clear()

	if dst.Width() == 0 || dst.Height() <= hudRows || f.FieldWidth <= 0 || f.FieldHeight <= 0 {
		return
	}

	v := viewport{
		sx:  float64(dst.Width()) / f.FieldWidth,
		sy:  float64(dst.Height()-hudRows) / f.FieldHeight,
		top: hudRows,
	}

	for _, b := range f.Bricks {
		x0, y0, x1, y1 := v.cells(b.Rect)
		// Leave a one-cell gap between neighbouring bricks when there is room.
		if x1-x0 >= 2 {
			x1--
		}
		dst.DrawRect(x0, y0, x1, y1, BrickChar, BrickColor(b.HitsToBreak))
	}

	x0, y0, x1, y1 := v.cells(f.Paddle)
	dst.DrawRect(x0, y0, x1, y1, PaddleChar, core.ColorRed)

	bx, by := v.point(f.Ball.X+f.Ball.Diameter/2, f.Ball.Y+f.Ball.Diameter/2)
	if by >= v.top {
		dst.Set(bx, by, BallChar, core.ColorBrightWhite)
	}

	drawHUD(f, dst)

	switch f.State {
	case StateIntro:
		drawOverlay(dst, IntroLines)
	case StateWon:
		drawOverlay(dst, WonLines)
	case StateLost:
		drawOverlay(dst, LostLines)
	}
}

// viewport maps field units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// cells returns the half-open cell range covered by r, at least one cell wide and tall.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.point(r.Left(), r.Top())
	x1, y1 = v.point(r.Right(), r.Bottom())
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	return x0, y0, x1, y1
}

func drawHUD(f Frame, dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", f.Score), core.ColorBrightWhite)

	state := f.State.String()
	dst.DrawText(core.Clamp(dst.Width()-len(state)-1, 0, dst.Width()), 0, state, core.ColorGray)
}

func drawOverlay(dst *core.Screen, lines []string) {
	y := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, core.ColorBrightWhite)
	}
}
