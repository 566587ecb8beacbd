package config

import (
	_ "embed"
)

//go:embed defaults/tiltbreak.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  1280,
			Height: 720,
		},
		Bricks: BrickConfig{
			Rows:      5,
			Columns:   15,
			TopBuffer: 40,
		},
		Paddle: PaddleConfig{
			Width:        130,
			Height:       20,
			Speed:        10,
			BottomMargin: 10,
		},
		Ball: BallConfig{
			Diameter: 25,
			Speed:    2.5,
			SpawnGap: 5,
		},
		Physics: PhysicsConfig{
			AngleJitter:       true,
			JitterRange:       1.0,
			CollisionCooldown: 0,
		},
		Sensor: SensorConfig{
			Port:   5700,
			Motion: "accelerometer",
			Axis:   "y",
			Button: "button_1",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
