package breakout

import (
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// MaxBrickHits is the largest hit count a fresh brick can be seeded with.
const MaxBrickHits = 3

// BrickField is the ordered set of live bricks for one round.
// Every hit is credited to the score tracker it was built with.
type BrickField struct {
	bricks    []*Brick
	score     *ScoreTracker
	rng       *rand.Rand
	topBuffer float64
}

// NewBrickField creates an empty field. Call Reset to build the grid.
func NewBrickField(score *ScoreTracker, rng *rand.Rand, topBuffer float64) *BrickField {
	return &BrickField{
		score:     score,
		rng:       rng,
		topBuffer: topBuffer,
	}
}

// Reset discards all bricks and builds a rows × columns grid covering the
// upper half of the field below the top buffer. Bricks are stored column by
// column and each one gets a hit count drawn uniformly from [1, MaxBrickHits].
func (f *BrickField) Reset(rows, columns int, fieldWidth, fieldHeight float64) {
	f.bricks = make([]*Brick, 0, rows*columns)
	if rows <= 0 || columns <= 0 {
		return
	}

	w := fieldWidth / float64(columns)
	h := fieldHeight / 2 / float64(rows)

	for col := range columns {
		for row := range rows {
			f.bricks = append(f.bricks, &Brick{
				Rect:        core.NewRect(float64(col)*w, float64(row)*h+f.topBuffer, w, h),
				HitsToBreak: f.rng.IntN(MaxBrickHits) + 1,
			})
		}
	}
}

// Hit registers one hit on the brick: the score grows by one and the brick
// loses one hit. A brick that reaches zero is removed before Hit returns.
// Returns true if the brick was removed.
func (f *BrickField) Hit(b *Brick) bool {
	b.HitsToBreak--
	f.score.Add()

	if b.HitsToBreak > 0 {
		return false
	}
	f.bricks = slices.DeleteFunc(f.bricks, func(other *Brick) bool {
		return other == b
	})
	return true
}

// IsCleared reports whether no live bricks remain.
func (f *BrickField) IsCleared() bool {
	return len(f.bricks) == 0
}

// Len returns the number of live bricks.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Bricks returns a copy of the live bricks in field order. The copy is safe
// to iterate while calling Hit.
func (f *BrickField) Bricks() []*Brick {
	return slices.Clone(f.bricks)
}

// Set replaces the live bricks. Bricks with no hits left are dropped.
func (f *BrickField) Set(bricks []*Brick) {
	f.bricks = slices.DeleteFunc(slices.Clone(bricks), func(b *Brick) bool {
		return b.HitsToBreak <= 0
	})
}
