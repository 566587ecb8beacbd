package core

import "time"

// Capability names a sensor feature whose presence and value can be queried
// from an input source (e.g. the accelerometer or a button).
type Capability string

// Capabilities reported by DIPPID-compatible devices.
const (
	CapAccelerometer Capability = "accelerometer"
	CapGyroscope     Capability = "gyroscope"
	CapGravity       Capability = "gravity"
	CapButton1       Capability = "button_1"
	CapButton2       Capability = "button_2"
	CapButton3       Capability = "button_3"
	CapButton4       Capability = "button_4"
)

// IsVector reports whether the capability delivers x/y/z readings.
func (c Capability) IsVector() bool {
	switch c {
	case CapAccelerometer, CapGyroscope, CapGravity:
		return true
	}
	return false
}

// IsButton reports whether the capability is one of the device buttons.
func (c Capability) IsButton() bool {
	switch c {
	case CapButton1, CapButton2, CapButton3, CapButton4:
		return true
	}
	return false
}

// Reading is the latest value delivered for one capability.
// Vector capabilities fill X, Y and Z; scalar capabilities (buttons) fill Value.
type Reading struct {
	X, Y, Z float64
	Value   float64

	// Presses counts every nonzero scalar delivered so far. Consumers compare it
	// against the count they saw last tick, so a press followed by a release
	// inside one tick is still observed.
	Presses uint64
}

// Axis returns the named vector component ("x", "y" or "z").
// Unknown names fall back to the scalar value.
func (r Reading) Axis(name string) float64 {
	switch name {
	case "x":
		return r.X
	case "y":
		return r.Y
	case "z":
		return r.Z
	default:
		return r.Value
	}
}

// Pressed reports whether the scalar value is in its pressed (nonzero) state.
func (r Reading) Pressed() bool {
	return r.Value != 0
}

// InputSource is the capability contract the game loop samples once per tick.
// Implementations may be fed asynchronously; reads always see the latest value.
type InputSource interface {
	// HasCapability reports whether a value for the capability has been delivered.
	HasCapability(c Capability) bool

	// Value returns the latest reading for the capability.
	// The boolean is false when the capability is unavailable.
	Value(c Capability) (Reading, bool)
}

// InputFrame is the input sampled for a single simulation tick.
type InputFrame struct {
	// Axis is the control signal used to move the paddle (roughly [-1, 1]).
	Axis float64

	// HasAxis is false when the motion capability was unavailable this tick.
	// The engine then skips the paddle move.
	HasAxis bool

	// Pressed is true when the primary button was pressed since the last tick.
	Pressed bool

	// Elapsed is the wall time covered by this tick.
	Elapsed time.Duration
}
