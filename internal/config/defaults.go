package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Width:       960,
			FloorHeight: 80,
		},
		Physics: PhysicsConfig{
			Gravity:       2000,
			JumpStrength:  800,
			RunSpeed:      280,
			MaxFrameDelta: 100 * time.Millisecond,
		},
		Player: PlayerConfig{
			X:           24,
			Standing:    Size{Width: 42, Height: 58},
			Crouching:   Size{Width: 54, Height: 38},
			MaxHP:       5,
			TiltDivisor: 1200,
			TiltMin:     -15,
			TiltMax:     20,
		},
		Obstacles: ObstacleConfig{
			MinWidth:     90,
			MaxWidth:     180,
			MinHeight:    18,
			MaxHeight:    28,
			MinClearance: 40,
			MaxClearance: 50,
			MinDelay:     800 * time.Millisecond,
			MaxDelay:     1500 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			Interval: 100 * time.Millisecond,
			Rate:     0.1,
		},
		Scroll: ScrollConfig{
			FloorPeriod: 64,
			SkyPeriod:   512,
			SkyFactor:   0.35,
		},
		Controls: ControlsConfig{
			CrouchRelease: 400 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
