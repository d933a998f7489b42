package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a ceiling bar the player must crouch under or jump over.
type Obstacle struct {
	ID       uint64  // Unique within a session, stable across restarts
	X        float64 // Left edge, decreasing over time
	Width    float64
	Height   float64
	Bottom   float64 // Bottom edge in world space (floor height + clearance)
	Resolved bool    // Damage already applied for this obstacle
}

// Box returns the obstacle's collision box in world space.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Bottom, o.Width, o.Height)
}

// Visible reports whether any part of the obstacle is still on the track.
func (o Obstacle) Visible() bool {
	return o.X+o.Width > 0
}

// scrollObstacles moves every obstacle left by dx and drops the ones whose
// right edge has passed the left boundary. It filters in place.
func scrollObstacles(obstacles []Obstacle, dx float64) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= dx
		if o.Visible() {
			kept = append(kept, o)
		}
	}
	// Release dropped tail entries
	clear(obstacles[len(kept):])
	return kept
}

// ObstacleSpawner decides when obstacles appear and with what geometry.
//
// The spawn timer counts running time only: it is armed with a random delay
// and drained by Advance, which the session calls only while running. A pause
// therefore suspends the timer and a resume continues with the delay that
// was left.
type ObstacleSpawner struct {
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	spawnX    float64
	floor     float64
	remaining time.Duration // Time until next spawn
	armed     bool
	nextID    uint64
}

// NewObstacleSpawner creates a disarmed spawner drawing from rng.
func NewObstacleSpawner(rng *rand.Rand, cfg config.RunnerConfig) *ObstacleSpawner {
	return &ObstacleSpawner{
		rng:    rng,
		cfg:    cfg.Obstacles,
		spawnX: cfg.Track.Width,
		floor:  cfg.Track.FloorHeight,
	}
}

// Arm schedules the next spawn after a fresh random delay.
func (s *ObstacleSpawner) Arm() {
	s.remaining = s.nextDelay()
	s.armed = true
}

// Disarm cancels the pending spawn.
func (s *ObstacleSpawner) Disarm() {
	s.remaining = 0
	s.armed = false
}

// Armed reports whether a spawn is pending.
func (s *ObstacleSpawner) Armed() bool {
	return s.armed
}

// Remaining returns the running time left until the next spawn.
func (s *ObstacleSpawner) Remaining() time.Duration {
	return s.remaining
}

// Advance drains dt of running time from the timer and returns the obstacles
// whose spawn time fell inside it, one per elapsed delay. Every spawn re-arms
// the timer with a fresh delay.
func (s *ObstacleSpawner) Advance(dt time.Duration) []Obstacle {
	if !s.armed || dt <= 0 {
		return nil
	}

	var spawned []Obstacle
	s.remaining -= dt
	for s.remaining <= 0 {
		spawned = append(spawned, s.spawn())
		s.remaining += s.nextDelay()
	}
	return spawned
}

// spawn creates one obstacle at the right edge of the track.
func (s *ObstacleSpawner) spawn() Obstacle {
	s.nextID++
	clearance := uniformInt(s.rng, s.cfg.MinClearance, s.cfg.MaxClearance)
	return Obstacle{
		ID:     s.nextID,
		X:      s.spawnX,
		Width:  float64(uniformInt(s.rng, s.cfg.MinWidth, s.cfg.MaxWidth)),
		Height: float64(uniformInt(s.rng, s.cfg.MinHeight, s.cfg.MaxHeight)),
		Bottom: s.floor + float64(clearance),
	}
}

// nextDelay draws a spawn delay from [MinDelay, MaxDelay).
func (s *ObstacleSpawner) nextDelay() time.Duration {
	span := int64(s.cfg.MaxDelay - s.cfg.MinDelay)
	if span <= 0 {
		return s.cfg.MinDelay
	}
	return s.cfg.MinDelay + time.Duration(s.rng.Int63n(span))
}

// uniformInt draws from [lo, hi).
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
