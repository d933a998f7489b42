package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// PlayerView is the renderable state of the player.
type PlayerView struct {
	Y         float64 // Offset from ground, <= 0
	VelocityY float64
	Posture   Posture // Effective posture
	Jumping   bool
	Tilt      float64  // Rotation hint in degrees
	Hitbox    core.Box // World-space collision box
	Sprite    core.Box // World-space draw box, lifted by the jump
}

// ObstacleView is the renderable state of one obstacle.
type ObstacleView struct {
	ID     uint64
	X      float64
	Width  float64
	Height float64
	Bottom float64
	Hit    bool
}

// Snapshot is an immutable copy of the session for the renderer.
type Snapshot struct {
	Score     int
	HP        int
	MaxHP     int
	Hits      int
	State     State
	RunTime   time.Duration
	Player    PlayerView
	Obstacles []ObstacleView

	// Scroll phases for looping background layers. Cosmetic only.
	FloorPhase float64
	SkyPhase   float64

	TrackWidth  float64
	FloorHeight float64
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = ObstacleView{
			ID:     o.ID,
			X:      o.X,
			Width:  o.Width,
			Height: o.Height,
			Bottom: o.Bottom,
			Hit:    o.Resolved,
		}
	}

	return Snapshot{
		Score:   s.score,
		HP:      s.hp,
		MaxHP:   s.cfg.Player.MaxHP,
		Hits:    s.hits,
		State:   s.state,
		RunTime: s.runTime,
		Player: PlayerView{
			Y:         s.player.Y(),
			VelocityY: s.player.VelocityY(),
			Posture:   s.player.Posture(),
			Jumping:   s.player.Jumping(),
			Tilt:      s.player.Tilt(),
			Hitbox:    s.player.Hitbox(s.cfg.Track.FloorHeight),
			Sprite:    s.player.Sprite(s.cfg.Track.FloorHeight),
		},
		Obstacles:   obstacles,
		FloorPhase:  s.floorX,
		SkyPhase:    s.skyX,
		TrackWidth:  s.cfg.Track.Width,
		FloorHeight: s.cfg.Track.FloorHeight,
	}
}

// GameOver reports whether the snapshot was taken after the session ended.
func (s Snapshot) GameOver() bool { return s.State == StateGameOver }

// Paused reports whether the snapshot was taken while paused.
func (s Snapshot) Paused() bool { return s.State == StatePaused }
