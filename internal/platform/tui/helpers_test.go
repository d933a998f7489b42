package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	keyJump   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyUp     = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc    = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab    = tea.KeyMsg{Type: tea.KeyTab}
	keyQuit   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyPause  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	keyReplay = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
)

var testStart = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// quietConfig never spawns obstacles within a test's lifetime.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.MinDelay = time.Hour
	cfg.Obstacles.MaxDelay = 2 * time.Hour
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 96, ScreenH: 34, TickRate: 60, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir() + "/runs.db")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestGame(t *testing.T, store *storage.Store) (GameModel, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(testStart)
	m := NewGameModel(GameOptions{
		Config:  quietConfig(),
		Runtime: testRuntime(),
		Store:   store,
		Clock:   clk,
		Player:  "alice",
	})
	m.Init()
	return m, clk
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

// frame advances the clock by d and delivers the matching tick.
func frame(t *testing.T, m GameModel, clk *clock.Manual, d time.Duration) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{Loop: m.loop, Time: clk.Advance(d)})
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm
}
