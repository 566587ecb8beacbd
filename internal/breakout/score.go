package breakout

// ScoreTracker counts brick hits. It only grows until Reset.
type ScoreTracker struct {
	value int
}

// Add records one brick hit.
func (s *ScoreTracker) Add() {
	s.value++
}

// Value returns the current score.
func (s *ScoreTracker) Value() int {
	return s.value
}

// Reset sets the score back to zero.
func (s *ScoreTracker) Reset() {
	s.value = 0
}
