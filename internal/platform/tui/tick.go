// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and drawing of session snapshots.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg struct {
	Loop uint64    // Frame loop the tick belongs to
	Time time.Time // Frame timestamp
}

var loopCounter atomic.Uint64

// newLoopID returns an ID for a new frame loop. Ticks of a finished loop
// still in flight are ignored by the model owning the next one.
func newLoopID() uint64 {
	return loopCounter.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
