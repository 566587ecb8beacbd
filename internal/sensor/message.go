package sensor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// ErrEmptyMessage is returned for a datagram that carries no readings.
var ErrEmptyMessage = errors.New("sensor: empty message")

// vector is the JSON shape of a motion capability.
type vector struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// ParseMessage decodes one DIPPID datagram: a JSON object keyed by capability
// name. Object values are vector readings and numbers are scalar readings.
// Values of any other type are ignored.
func ParseMessage(data []byte) (map[core.Capability]core.Reading, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("sensor: cannot decode message: %w", err)
	}

	readings := make(map[core.Capability]core.Reading, len(raw))
	for name, value := range raw {
		if r, ok := parseReading(value); ok {
			readings[core.Capability(name)] = r
		}
	}

	if len(readings) == 0 {
		return nil, ErrEmptyMessage
	}
	return readings, nil
}

func parseReading(value json.RawMessage) (core.Reading, bool) {
	if string(value) == "null" {
		return core.Reading{}, false
	}

	var scalar float64
	if err := json.Unmarshal(value, &scalar); err == nil {
		return core.Reading{Value: scalar}, true
	}

	var v vector
	if err := json.Unmarshal(value, &v); err != nil {
		return core.Reading{}, false
	}
	if v.X == nil && v.Y == nil && v.Z == nil {
		return core.Reading{}, false
	}

	var r core.Reading
	if v.X != nil {
		r.X = *v.X
	}
	if v.Y != nil {
		r.Y = *v.Y
	}
	if v.Z != nil {
		r.Z = *v.Z
	}
	return r, true
}
