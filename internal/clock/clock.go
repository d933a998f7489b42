// Package clock supplies time to the frame loop. The simulation itself never
// reads a clock; it only receives the elapsed duration of each tick.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to. Used by tests.
type Manual struct {
	now time.Time
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time { return m.now }

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.now = m.now.Add(d)
	return m.now
}

// FrameTimer derives per-frame dt from successive frame timestamps.
// Deltas are clamped to [0, max] so that a long stall (suspended terminal,
// stopped process) cannot move obstacles through the player in one step.
type FrameTimer struct {
	clock Clock
	last  time.Time
	max   time.Duration
}

// NewFrameTimer creates a timer anchored at the clock's current time.
// A max of zero disables clamping.
func NewFrameTimer(c Clock, max time.Duration) *FrameTimer {
	return &FrameTimer{clock: c, last: c.Now(), max: max}
}

// Reset re-anchors the timer at the clock's current time, discarding
// whatever elapsed since the previous frame.
func (f *FrameTimer) Reset() {
	f.last = f.clock.Now()
}

// Frame returns the clamped time elapsed between the previous frame and now,
// and records now as the previous frame.
func (f *FrameTimer) Frame(now time.Time) time.Duration {
	dt := now.Sub(f.last)
	if dt < 0 {
		// Out-of-order timestamps never move the anchor backwards.
		return 0
	}
	f.last = now
	if f.max > 0 && dt > f.max {
		dt = f.max
	}
	return dt
}

// Next is Frame at the clock's current time.
func (f *FrameTimer) Next() time.Duration {
	return f.Frame(f.clock.Now())
}
