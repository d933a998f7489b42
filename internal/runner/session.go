// Package runner implements the endless-runner simulation: an auto-running
// player who jumps or crouches to avoid ceiling bars, scoring over time and
// losing health on collision.
//
// A Session is an explicit object owned by its host. The host feeds it
// intents and per-frame durations and reads back immutable snapshots. All
// mutation happens synchronously inside intent calls and Tick, so no locking
// is needed as long as a single goroutine drives the session.
package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event // Events since the previous Tick, in order
}

// Session orchestrates the player, spawner and collision resolver, and owns
// score, health and lifecycle state.
type Session struct {
	cfg       config.RunnerConfig
	player    *PlayerBody
	spawner   *ObstacleSpawner
	resolver  CollisionResolver
	obstacles []Obstacle

	state     State
	score     int
	hp        int
	hits      int
	scoreAcc  time.Duration // Running time not yet converted to score
	runTime   time.Duration // Total running time since start/restart
	floorX    float64       // Cosmetic floor scroll phase
	skyX      float64       // Cosmetic sky scroll phase
	scoreStep int

	events []Event
	closed bool
}

// NewSession creates a running session. The seed drives obstacle geometry
// and spawn delays.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:       cfg,
		player:    NewPlayerBody(cfg.Physics, cfg.Player),
		spawner:   NewObstacleSpawner(rng, cfg),
		resolver:  NewCollisionResolver(),
		obstacles: make([]Obstacle, 0, 8),
		scoreStep: cfg.ScoreStep(),
	}
	s.reset()
	return s
}

// reset puts every piece of session state back to its initial value and
// arms the spawner for the fresh Running state.
func (s *Session) reset() {
	s.player.Reset()
	s.obstacles = s.obstacles[:0]
	s.state = StateRunning
	s.score = 0
	s.hp = s.cfg.Player.MaxHP
	s.hits = 0
	s.scoreAcc = 0
	s.runTime = 0
	s.floorX = 0
	s.skyX = 0
	s.spawner.Arm()
}

// Jump makes the player jump if grounded, not already jumping and the
// session is not over. Ineligible jumps are ignored.
func (s *Session) Jump() {
	if s.closed || s.state == StateGameOver {
		return
	}
	s.player.Jump()
}

// SetCrouch sets the crouch posture intent.
func (s *Session) SetCrouch(active bool) {
	if s.closed {
		return
	}
	s.player.SetCrouch(active)
}

// TogglePause flips between Running and Paused. Ignored once GameOver.
func (s *Session) TogglePause() {
	if s.closed {
		return
	}
	switch s.state {
	case StateRunning:
		s.state = StatePaused
		s.emit(Event{Kind: EventPause})
	case StatePaused:
		s.state = StateRunning
		s.emit(Event{Kind: EventResume})
	}
}

// Restart resets score, health, player and obstacles and returns to Running,
// whatever the current state.
func (s *Session) Restart() {
	if s.closed {
		return
	}
	s.reset()
	s.emit(Event{Kind: EventRestart, HP: s.hp})
}

// Damage removes amount HP, never going below zero. Reaching zero ends the
// session; further damage at zero HP has no effect.
func (s *Session) Damage(amount int) {
	if s.closed || s.hp <= 0 || amount <= 0 {
		return
	}
	s.hp = max(0, s.hp-amount)
	if s.hp == 0 {
		s.state = StateGameOver
		s.spawner.Disarm()
		s.emit(Event{Kind: EventGameOver, Score: s.score, HP: 0})
	}
}

// Apply dispatches a frame's worth of intents in arrival order.
func (s *Session) Apply(in core.InputFrame) {
	for _, intent := range in.Intents() {
		switch intent {
		case core.IntentJump:
			s.Jump()
		case core.IntentCrouchStart:
			s.SetCrouch(true)
		case core.IntentCrouchEnd:
			s.SetCrouch(false)
		case core.IntentTogglePause:
			s.TogglePause()
		case core.IntentRestart:
			s.Restart()
		}
	}
}

// Tick advances the simulation by dt. Nothing moves unless the session is
// Running; the result always carries a fresh snapshot.
func (s *Session) Tick(dt time.Duration) StepResult {
	if !s.closed && s.state == StateRunning && dt > 0 {
		s.step(dt)
	}

	result := StepResult{Snapshot: s.Snapshot()}
	if len(s.events) > 0 {
		result.Events = s.events
		s.events = nil
	}
	return result
}

// step runs one Running tick.
func (s *Session) step(dt time.Duration) {
	sec := dt.Seconds()
	speed := s.cfg.Physics.RunSpeed
	s.runTime += dt

	// Background scroll
	s.floorX = math.Mod(s.floorX+speed*sec, s.cfg.Scroll.FloorPeriod)
	s.skyX = math.Mod(s.skyX+speed*s.cfg.Scroll.SkyFactor*sec, s.cfg.Scroll.SkyPeriod)

	// Score in discrete increments
	s.scoreAcc += dt
	for s.scoreAcc >= s.cfg.Scoring.Interval {
		s.scoreAcc -= s.cfg.Scoring.Interval
		s.score += s.scoreStep
	}

	s.player.Integrate(sec)

	s.obstacles = scrollObstacles(s.obstacles, speed*sec)

	// Damage may end the session here; the rest of the tick still applies.
	hitbox := s.player.Hitbox(s.cfg.Track.FloorHeight)
	for _, id := range s.resolver.Resolve(hitbox, s.obstacles, s) {
		s.hits++
		s.emit(Event{Kind: EventHit, ObstacleID: id, HP: s.hp})
	}

	// Spawn timers fire between frames, so new obstacles first move next tick.
	if s.state == StateRunning {
		for _, o := range s.spawner.Advance(dt) {
			s.obstacles = append(s.obstacles, o)
			s.emit(Event{Kind: EventSpawn, ObstacleID: o.ID})
		}
	}
}

// Close tears the session down. Every later intent and tick is a no-op, so
// callbacks that arrive after teardown cannot mutate state.
func (s *Session) Close() {
	s.closed = true
	s.spawner.Disarm()
	s.events = nil
}

// Alive reports whether the session has not been closed.
func (s *Session) Alive() bool {
	return !s.closed
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HP returns the current health.
func (s *Session) HP() int { return s.hp }

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
