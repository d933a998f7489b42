package runner

// EventKind identifies something that happened inside the simulation.
type EventKind int

const (
	EventSpawn    EventKind = iota // An obstacle entered the track
	EventHit                       // An obstacle dealt damage
	EventGameOver                  // HP reached zero
	EventPause
	EventResume
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventHit:
		return "hit"
	case EventGameOver:
		return "game_over"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by the session and collected into the next StepResult.
type Event struct {
	Kind       EventKind
	ObstacleID uint64 // Spawn and Hit
	HP         int    // HP after the event
	Score      int    // GameOver
}
