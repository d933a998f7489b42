package core

// Intent is a semantic player intent, abstracted from physical key presses.
// The simulation consumes intents only; raw device events never reach it.
type Intent int

const (
	IntentNone        Intent = iota
	IntentJump               // Space, W, Up
	IntentCrouchStart        // S, Down (pressed)
	IntentCrouchEnd          // crouch key released
	IntentTogglePause        // P, Enter while playing
	IntentRestart            // R, Enter after game over
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentJump:
		return "Jump"
	case IntentCrouchStart:
		return "CrouchStart"
	case IntentCrouchEnd:
		return "CrouchEnd"
	case IntentTogglePause:
		return "TogglePause"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame collects the intents received between two frame callbacks.
// Order is preserved: a crouch start followed by a crouch end within the
// same frame must be applied in that order.
type InputFrame struct {
	intents []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{intents: make([]Intent, 0, 4)}
}

// Push appends an intent. IntentNone is dropped.
func (f *InputFrame) Push(i Intent) {
	if i == IntentNone {
		return
	}
	f.intents = append(f.intents, i)
}

// Has returns true if the given intent was received this frame.
func (f InputFrame) Has(i Intent) bool {
	for _, got := range f.intents {
		if got == i {
			return true
		}
	}
	return false
}

// Intents returns the intents in arrival order.
func (f InputFrame) Intents() []Intent {
	return f.intents
}

// Len returns the number of buffered intents.
func (f InputFrame) Len() int {
	return len(f.intents)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.intents = f.intents[:0]
}
