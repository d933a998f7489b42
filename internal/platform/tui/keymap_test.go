package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{"arrow up", keyUp, MenuActionUp},
		{"vim down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, MenuActionDown},
		{"enter", keyEnter, MenuActionSelect},
		{"space", keyJump, MenuActionSelect},
		{"escape", keyEsc, MenuActionBack},
		{"tab", keyTab, MenuActionScoreboard},
		{"quit", keyQuit, MenuActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapKeyToMenuAction(tc.msg); got != tc.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestCrouchHold(t *testing.T) {
	h := newCrouchHold(400 * time.Millisecond)

	if h.Expired(testStart) {
		t.Error("inactive hold should never expire")
	}
	if !h.Press(testStart) {
		t.Error("first press should start the hold")
	}
	if h.Press(testStart.Add(100 * time.Millisecond)) {
		t.Error("repeated press should not start a new hold")
	}
	if h.Expired(testStart.Add(450 * time.Millisecond)) {
		t.Error("hold expired although the key repeated 350ms ago")
	}
	if !h.Expired(testStart.Add(500 * time.Millisecond)) {
		t.Error("hold should expire 400ms after the last repeat")
	}
	if !h.Release() || h.Active() {
		t.Error("Release should end an active hold")
	}
	if h.Release() {
		t.Error("Release of an inactive hold should report false")
	}
}

func TestConfirmIntent(t *testing.T) {
	tests := []struct {
		state    runner.State
		expected core.Intent
	}{
		{runner.StateRunning, core.IntentTogglePause},
		{runner.StatePaused, core.IntentTogglePause},
		{runner.StateGameOver, core.IntentRestart},
	}

	for _, tc := range tests {
		if got := confirmIntent(runner.Snapshot{State: tc.state}); got != tc.expected {
			t.Errorf("confirmIntent(%v) = %v, expected %v", tc.state, got, tc.expected)
		}
	}
}
