package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Damager receives damage from the collision resolver.
type Damager interface {
	Damage(amount int)
}

// CollisionResolver turns player/obstacle overlap into damage.
//
// Being hit is a one-time event per obstacle: the first overlap marks the
// obstacle resolved and deals one point of damage. The obstacle keeps moving
// and is only removed by scrolling off the track.
type CollisionResolver struct {
	DamagePerHit int
}

// NewCollisionResolver creates a resolver dealing one damage per hit.
func NewCollisionResolver() CollisionResolver {
	return CollisionResolver{DamagePerHit: 1}
}

// Resolve tests the hitbox against every unresolved obstacle and applies
// damage for each new overlap. It returns the IDs of obstacles hit this call.
func (r CollisionResolver) Resolve(hitbox core.Box, obstacles []Obstacle, d Damager) []uint64 {
	var hits []uint64
	for i := range obstacles {
		o := &obstacles[i]
		if o.Resolved {
			continue
		}
		if hitbox.Overlaps(o.Box()) {
			o.Resolved = true
			d.Damage(r.DamagePerHit)
			hits = append(hits, o.ID)
		}
	}
	return hits
}
