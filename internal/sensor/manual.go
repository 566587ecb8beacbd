package sensor

import "github.com/vovakirdan/tilt-breakout/internal/core"

// ManualSource is fed directly by the host, e.g. from keyboard events.
// It reports a motion capability only while an axis value is held.
type ManualSource struct {
	cells
}

// NewManualSource creates an empty manual source.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// Tilt sets one component of a vector capability and clears the others.
func (m *ManualSource) Tilt(c core.Capability, axis string, v float64) {
	var r core.Reading
	switch axis {
	case "x":
		r.X = v
	case "y":
		r.Y = v
	case "z":
		r.Z = v
	default:
		r.Value = v
	}
	m.put(c, r)
}

// Release makes the capability unavailable again.
func (m *ManualSource) Release(c core.Capability) {
	m.drop(c)
}

// Press delivers a press followed by a release of a button capability.
func (m *ManualSource) Press(c core.Capability) {
	m.put(c, core.Reading{Value: 1})
	m.put(c, core.Reading{Value: 0})
}
