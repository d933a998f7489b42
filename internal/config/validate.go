package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every constant is usable by the simulation.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v))
		}
	}
	intRange := func(name string, lo, hi int) {
		if lo < 0 || hi <= lo {
			errs = append(errs, fmt.Errorf("%w: %s range [%d, %d) is empty", ErrInvalid, name, lo, hi))
		}
	}
	durRange := func(name string, lo, hi time.Duration) {
		if lo <= 0 || hi <= lo {
			errs = append(errs, fmt.Errorf("%w: %s range [%v, %v) is empty", ErrInvalid, name, lo, hi))
		}
	}

	positive("track.width", c.Track.Width)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_strength", c.Physics.JumpStrength)
	positive("physics.run_speed", c.Physics.RunSpeed)
	positive("player.standing.width", c.Player.Standing.Width)
	positive("player.standing.height", c.Player.Standing.Height)
	positive("player.crouching.width", c.Player.Crouching.Width)
	positive("player.crouching.height", c.Player.Crouching.Height)
	positive("player.tilt_divisor", c.Player.TiltDivisor)
	positive("scroll.floor_period", c.Scroll.FloorPeriod)
	positive("scroll.sky_period", c.Scroll.SkyPeriod)

	if c.Track.FloorHeight < 0 {
		errs = append(errs, fmt.Errorf("%w: track.floor_height must not be negative", ErrInvalid))
	}
	if c.Physics.MaxFrameDelta < 0 {
		errs = append(errs, fmt.Errorf("%w: physics.max_frame_delta must not be negative", ErrInvalid))
	}
	if c.Player.MaxHP < 1 {
		errs = append(errs, fmt.Errorf("%w: player.max_hp must be at least 1, got %d", ErrInvalid, c.Player.MaxHP))
	}
	if c.Player.TiltMin > c.Player.TiltMax {
		errs = append(errs, fmt.Errorf("%w: player.tilt_min exceeds tilt_max", ErrInvalid))
	}
	if c.Scoring.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%w: scoring.interval must be positive", ErrInvalid))
	}
	if c.ScoreStep() < 0 {
		errs = append(errs, fmt.Errorf("%w: scoring.rate yields a negative score step", ErrInvalid))
	}

	intRange("obstacles.width", c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	intRange("obstacles.height", c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	intRange("obstacles.clearance", c.Obstacles.MinClearance, c.Obstacles.MaxClearance)
	durRange("obstacles.delay", c.Obstacles.MinDelay, c.Obstacles.MaxDelay)

	return errors.Join(errs...)
}
