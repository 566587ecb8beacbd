package sensor

import (
	"time"

	"github.com/vovakirdan/tilt-breakout/internal/config"
	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// Sampler turns an InputSource into one InputFrame per tick.
// It must be used from a single goroutine.
type Sampler struct {
	src    core.InputSource
	motion core.Capability
	axis   string
	button core.Capability

	presses uint64 // Press count seen at the previous sample
}

// NewSampler creates a sampler for the capabilities named in cfg.
// Presses delivered before the sampler existed are not reported.
func NewSampler(src core.InputSource, cfg config.SensorConfig) *Sampler {
	s := &Sampler{
		src:    src,
		motion: core.Capability(cfg.Motion),
		axis:   cfg.Axis,
		button: core.Capability(cfg.Button),
	}
	if r, ok := src.Value(s.button); ok {
		s.presses = r.Presses
	}
	return s
}

// Sample reads the latest values. The axis is reported only when the motion
// capability is available; Pressed is true when at least one press arrived
// since the previous sample.
func (s *Sampler) Sample(elapsed time.Duration) core.InputFrame {
	in := core.InputFrame{Elapsed: elapsed}

	if r, ok := s.src.Value(s.motion); ok {
		in.Axis = r.Axis(s.axis)
		in.HasAxis = true
	}

	if r, ok := s.src.Value(s.button); ok && r.Presses != s.presses {
		in.Pressed = r.Presses > s.presses
		s.presses = r.Presses
	}

	return in
}
