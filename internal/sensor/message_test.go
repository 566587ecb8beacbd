package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

func TestParseMessage(t *testing.T) {
	data := []byte(`{
		"accelerometer": {"x": 0.1, "y": -0.5, "z": 9.8},
		"gravity": {"y": 1},
		"button_1": 1,
		"button_2": 0,
		"name": "phone",
		"empty": {},
		"nothing": null
	}`)

	readings, err := ParseMessage(data)
	require.NoError(t, err)

	assert.Equal(t, map[core.Capability]core.Reading{
		core.CapAccelerometer: {X: 0.1, Y: -0.5, Z: 9.8},
		core.CapGravity:       {Y: 1},
		core.CapButton1:       {Value: 1},
		core.CapButton2:       {Value: 0},
	}, readings)
}

func TestParseMessageErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "hello"},
		{"array", "[1, 2]"},
		{"truncated", `{"button_1": `},
		{"no readings", `{"name": "phone"}`},
		{"empty object", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMessage([]byte(tc.data))
			assert.Error(t, err)
		})
	}

	_, err := ParseMessage([]byte(`{}`))
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
