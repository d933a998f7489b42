package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Posture is the player's stance, which selects the hitbox size.
type Posture int

const (
	PostureStanding Posture = iota
	PostureCrouching
)

// String returns a human-readable name for the posture.
func (p Posture) String() string {
	if p == PostureCrouching {
		return "Crouching"
	}
	return "Standing"
}

// PlayerBody owns the vertical motion and posture of the player.
//
// y is the vertical offset from the ground with up being negative, so a
// grounded player has y == 0 and an airborne one y < 0.
type PlayerBody struct {
	y         float64 // Vertical offset from ground (<= 0)
	vy        float64 // Vertical velocity, negative = up
	jumping   bool
	crouching bool // Crouch intent; only shapes the hitbox while grounded

	physics config.PhysicsConfig
	cfg     config.PlayerConfig
}

// NewPlayerBody creates a grounded, standing player.
func NewPlayerBody(physics config.PhysicsConfig, cfg config.PlayerConfig) *PlayerBody {
	return &PlayerBody{physics: physics, cfg: cfg}
}

// Reset puts the player back on the ground, standing and at rest.
func (p *PlayerBody) Reset() {
	p.y = 0
	p.vy = 0
	p.jumping = false
	p.crouching = false
}

// Grounded reports whether the player stands on the ground plane.
func (p *PlayerBody) Grounded() bool {
	return p.y == 0
}

// Jump applies the jump impulse if the player is grounded and not already
// jumping. It reports whether the impulse was applied.
func (p *PlayerBody) Jump() bool {
	if p.jumping || !p.Grounded() {
		return false
	}
	p.vy = -p.physics.JumpStrength
	p.jumping = true
	return true
}

// Integrate advances the jump by dt seconds. Crossing the ground plane is the
// only landing condition: the player is clamped to the ground and stops.
func (p *PlayerBody) Integrate(dt float64) {
	if !p.jumping {
		return
	}

	p.vy += p.physics.Gravity * dt
	p.y += p.vy * dt

	if p.y > 0 {
		p.y = 0
		p.vy = 0
		p.jumping = false
	}
}

// SetCrouch records the crouch intent.
func (p *PlayerBody) SetCrouch(active bool) {
	p.crouching = active
}

// Posture returns the effective posture. Crouching in the air has no effect.
func (p *PlayerBody) Posture() Posture {
	if p.crouching && p.Grounded() {
		return PostureCrouching
	}
	return PostureStanding
}

// Size returns the hitbox dimensions for the effective posture.
func (p *PlayerBody) Size() config.Size {
	if p.Posture() == PostureCrouching {
		return p.cfg.Crouching
	}
	return p.cfg.Standing
}

// Hitbox returns the player's collision box in world space. The bottom stays
// on the floor baseline and the top drops by the jump offset, so an airborne
// player clears bars whose bottom is above floorHeight+height+y.
func (p *PlayerBody) Hitbox(floorHeight float64) core.Box {
	size := p.Size()
	return core.NewBox(p.cfg.X, floorHeight, size.Width, math.Max(0, size.Height+p.y))
}

// Sprite returns the box the player is drawn in: full size, lifted by the
// jump offset. It never takes part in collisions.
func (p *PlayerBody) Sprite(floorHeight float64) core.Box {
	size := p.Size()
	return core.NewBox(p.cfg.X, floorHeight-p.y, size.Width, size.Height)
}

// Tilt returns the render rotation hint in degrees, 0 when not jumping.
func (p *PlayerBody) Tilt() float64 {
	if !p.jumping {
		return 0
	}
	return core.ClampF(-p.vy/p.cfg.TiltDivisor, p.cfg.TiltMin, p.cfg.TiltMax)
}

// Y returns the vertical offset from the ground.
func (p *PlayerBody) Y() float64 { return p.y }

// VelocityY returns the vertical velocity.
func (p *PlayerBody) VelocityY() float64 { return p.vy }

// Jumping reports whether a jump is in progress.
func (p *PlayerBody) Jumping() bool { return p.jumping }

// Crouching reports the crouch intent, regardless of whether it applies.
func (p *PlayerBody) Crouching() bool { return p.crouching }
