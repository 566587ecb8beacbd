// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// GameConfig contains all configuration for a round of the game.
// Geometry is expressed in field units; the default field is 1280x720.
type GameConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Bricks  BrickConfig   `yaml:"bricks"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Physics PhysicsConfig `yaml:"physics"`
	Sensor  SensorConfig  `yaml:"sensor"`
}

// FieldConfig defines the playing field bounds.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BrickConfig defines the brick grid generated for each round.
type BrickConfig struct {
	Rows      int     `yaml:"rows"`
	Columns   int     `yaml:"columns"`
	TopBuffer float64 `yaml:"top_buffer"` // Empty space above the first row
}

// PaddleConfig defines paddle size and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Field units per unit of control signal
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between paddle and field bottom
}

// BallConfig defines ball size and launch speed.
type BallConfig struct {
	Diameter float64 `yaml:"diameter"`
	Speed    float64 `yaml:"speed"`     // Per-axis speed at spawn
	SpawnGap float64 `yaml:"spawn_gap"` // Gap between ball and paddle at spawn
}

// PhysicsConfig defines collision behavior.
type PhysicsConfig struct {
	AngleJitter       bool    `yaml:"angle_jitter"`       // Randomize rebound angle on paddle hits
	JitterRange       float64 `yaml:"jitter_range"`       // Max absolute horizontal offset added by jitter
	CollisionCooldown int     `yaml:"collision_cooldown"` // Ticks to skip paddle/brick checks after a hit
}

// SensorConfig defines which sensor capabilities drive the game.
type SensorConfig struct {
	Port   int    `yaml:"port"`   // UDP port the sensor adapter listens on
	Motion string `yaml:"motion"` // Capability used for the paddle axis
	Axis   string `yaml:"axis"`   // Component of the motion capability ("x", "y", "z")
	Button string `yaml:"button"` // Capability used as the primary button
}

// Validate checks the configuration for values the engine cannot run with.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size %vx%v must be positive", c.Field.Width, c.Field.Height)
	check(c.Bricks.Rows >= 1, "bricks.rows %d must be at least 1", c.Bricks.Rows)
	check(c.Bricks.Columns >= 1, "bricks.columns %d must be at least 1", c.Bricks.Columns)
	check(c.Bricks.TopBuffer >= 0, "bricks.top_buffer %v must not be negative", c.Bricks.TopBuffer)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size %vx%v must be positive", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Width <= c.Field.Width, "paddle.width %v exceeds field width %v", c.Paddle.Width, c.Field.Width)
	check(c.Ball.Diameter > 0, "ball.diameter %v must be positive", c.Ball.Diameter)
	check(c.Ball.Speed > 0, "ball.speed %v must be positive", c.Ball.Speed)
	check(c.Physics.JitterRange >= 0, "physics.jitter_range %v must not be negative", c.Physics.JitterRange)
	check(c.Physics.CollisionCooldown >= 0, "physics.collision_cooldown %d must not be negative", c.Physics.CollisionCooldown)
	check(c.Sensor.Port > 0 && c.Sensor.Port <= 65535, "sensor.port %d out of range", c.Sensor.Port)
	check(core.Capability(c.Sensor.Motion).IsVector(), "sensor.motion %q is not a motion sensor", c.Sensor.Motion)
	check(c.Sensor.Axis == "x" || c.Sensor.Axis == "y" || c.Sensor.Axis == "z", "sensor.axis %q must be x, y or z", c.Sensor.Axis)
	check(core.Capability(c.Sensor.Button).IsButton(), "sensor.button %q is not a button", c.Sensor.Button)

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed = 2.0
		cfg.Paddle.Width = 170
		cfg.Bricks.Rows = 4
	case DifficultyHard:
		cfg.Ball.Speed = 3.5
		cfg.Paddle.Width = 100
		cfg.Bricks.Rows = 6
	}
}
