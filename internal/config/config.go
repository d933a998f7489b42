// Package config provides YAML-based configuration loading for the runner.
package config

import "time"

// RunnerConfig contains all tunables of the runner simulation.
type RunnerConfig struct {
	Track     TrackConfig    `yaml:"track"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Scroll    ScrollConfig   `yaml:"scroll"`
	Controls  ControlsConfig `yaml:"controls"`
}

// TrackConfig defines the world geometry in pixels.
type TrackConfig struct {
	Width       float64 `yaml:"width"`        // Obstacles spawn at this x
	FloorHeight float64 `yaml:"floor_height"` // Ground baseline above the bottom edge
}

// PhysicsConfig defines motion constants. Units are px, px/s and px/s².
type PhysicsConfig struct {
	Gravity       float64       `yaml:"gravity"`
	JumpStrength  float64       `yaml:"jump_strength"`
	RunSpeed      float64       `yaml:"run_speed"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Upper bound for a single tick's dt
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player hitbox and health.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Standing    Size    `yaml:"standing"`
	Crouching   Size    `yaml:"crouching"`
	MaxHP       int     `yaml:"max_hp"`
	TiltDivisor float64 `yaml:"tilt_divisor"`
	TiltMin     float64 `yaml:"tilt_min"`
	TiltMax     float64 `yaml:"tilt_max"`
}

// ObstacleConfig defines the half-open ranges obstacle geometry and spawn
// delays are drawn from.
type ObstacleConfig struct {
	MinWidth     int           `yaml:"min_width"`
	MaxWidth     int           `yaml:"max_width"`
	MinHeight    int           `yaml:"min_height"`
	MaxHeight    int           `yaml:"max_height"`
	MinClearance int           `yaml:"min_clearance"`
	MaxClearance int           `yaml:"max_clearance"`
	MinDelay     time.Duration `yaml:"min_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
}

// ScoringConfig defines discrete score accrual.
type ScoringConfig struct {
	Interval time.Duration `yaml:"interval"` // Running time per score increment
	Rate     float64       `yaml:"rate"`     // Increment is floor(run_speed * rate)
}

// ScrollConfig defines cosmetic background scroll periods.
type ScrollConfig struct {
	FloorPeriod float64 `yaml:"floor_period"`
	SkyPeriod   float64 `yaml:"sky_period"`
	SkyFactor   float64 `yaml:"sky_factor"`
}

// ControlsConfig holds host input settings.
type ControlsConfig struct {
	// CrouchRelease is how long after the last crouch key event the host
	// treats the key as released. Terminals do not report key-up.
	CrouchRelease time.Duration `yaml:"crouch_release"`
}

// ScoreStep returns the score added per scoring interval.
func (c RunnerConfig) ScoreStep() int {
	return int(c.Physics.RunSpeed * c.Scoring.Rate)
}
