package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

func TestGameModelFrameAdvancesSession(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m = frame(t, m, clk, 100*time.Millisecond)
	m = frame(t, m, clk, 100*time.Millisecond)

	snap := m.Snapshot()
	if snap.Score != 56 {
		t.Errorf("Score = %d after 200ms, expected 56", snap.Score)
	}
	if snap.RunTime != 200*time.Millisecond {
		t.Errorf("RunTime = %v, expected 200ms", snap.RunTime)
	}
}

func TestGameModelClampsLongFrames(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m = frame(t, m, clk, 5*time.Second)

	if got := m.Snapshot().RunTime; got != 100*time.Millisecond {
		t.Errorf("RunTime = %v after a 5s stall, expected the 100ms clamp", got)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m, clk := newTestGame(t, nil)

	next, cmd := m.Update(TickMsg{Loop: m.loop + 1, Time: clk.Advance(100 * time.Millisecond)})
	m = next.(GameModel)

	if cmd != nil {
		t.Error("a stale tick should not schedule another frame")
	}
	if m.Snapshot().RunTime != 0 {
		t.Error("a stale tick should not advance the session")
	}
}

func TestGameModelJump(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m, _ = press(t, m, keyJump)
	m = frame(t, m, clk, 16*time.Millisecond)

	p := m.Snapshot().Player
	if !p.Jumping || p.Y >= 0 {
		t.Errorf("player should be airborne after jump, got %+v", p)
	}
}

func TestGameModelCrouchHold(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m, _ = press(t, m, keyDown)
	m = frame(t, m, clk, 16*time.Millisecond)
	if m.Snapshot().Player.Posture != runner.PostureCrouching {
		t.Fatal("player should crouch after the crouch key")
	}

	// Frames at 116, 216 and 316ms: still within the release window.
	for range 3 {
		m = frame(t, m, clk, 100*time.Millisecond)
	}
	if m.Snapshot().Player.Posture != runner.PostureCrouching {
		t.Fatal("crouch released before the release window")
	}

	// A key repeat extends the hold.
	m, _ = press(t, m, keyDown)
	m = frame(t, m, clk, 100*time.Millisecond)
	if m.Snapshot().Player.Posture != runner.PostureCrouching {
		t.Fatal("crouch released despite a key repeat")
	}

	for range 4 {
		m = frame(t, m, clk, 100*time.Millisecond)
	}
	if m.Snapshot().Player.Posture != runner.PostureStanding {
		t.Error("crouch should end once the key stops repeating")
	}
}

func TestGameModelJumpReleasesCrouch(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m, _ = press(t, m, keyDown)
	m = frame(t, m, clk, 16*time.Millisecond)
	m, _ = press(t, m, keyJump)
	m = frame(t, m, clk, 16*time.Millisecond)

	if m.crouch.Active() {
		t.Error("jump should end the crouch hold")
	}
	if !m.Snapshot().Player.Jumping {
		t.Error("player should jump out of a crouch")
	}
}

func TestGameModelRestartEndsCrouchHold(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m, _ = press(t, m, keyDown)
	m = frame(t, m, clk, 16*time.Millisecond)
	m.session.Damage(5)
	m = frame(t, m, clk, 100*time.Millisecond)
	if !m.Snapshot().GameOver() {
		t.Fatal("session should be over after losing all HP")
	}

	m, _ = press(t, m, keyReplay)
	m = frame(t, m, clk, 100*time.Millisecond)
	if m.crouch.Active() {
		t.Fatal("restart should end the crouch hold")
	}
	if m.Snapshot().Player.Posture != runner.PostureStanding {
		t.Fatal("restarted player should stand")
	}

	// Still inside the release window of the earlier press.
	m, _ = press(t, m, keyDown)
	m = frame(t, m, clk, 16*time.Millisecond)
	if m.Snapshot().Player.Posture != runner.PostureCrouching {
		t.Error("crouch key right after a restart should crouch")
	}
}

func TestGameModelConfirmTogglesPause(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m = frame(t, m, clk, 100*time.Millisecond)
	m, _ = press(t, m, keyEnter)
	m = frame(t, m, clk, 100*time.Millisecond)
	if !m.Snapshot().Paused() {
		t.Fatal("Enter should pause a running session")
	}

	score := m.Snapshot().Score
	m = frame(t, m, clk, 100*time.Millisecond)
	if m.Snapshot().Score != score {
		t.Error("score changed while paused")
	}

	m, _ = press(t, m, keyPause)
	m = frame(t, m, clk, 100*time.Millisecond)
	if m.Snapshot().State != runner.StateRunning {
		t.Error("P should resume a paused session")
	}
}

func TestGameModelSavesRunOnGameOver(t *testing.T) {
	store := openTestStore(t)
	m, clk := newTestGame(t, store)

	for range 3 {
		m = frame(t, m, clk, 100*time.Millisecond)
	}
	m.session.Damage(5)
	m = frame(t, m, clk, 100*time.Millisecond)

	if !m.Snapshot().GameOver() {
		t.Fatal("session should be over after losing all HP")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Score != 84 || runs[0].Duration != 300*time.Millisecond {
		t.Errorf("saved run = %+v, expected alice/84/300ms", runs[0])
	}
	if m.best != 84 {
		t.Errorf("best = %d, expected 84", m.best)
	}

	// Further frames must not save the same run again.
	m = frame(t, m, clk, 100*time.Millisecond)
	if runs, _ := store.TopRuns(10); len(runs) != 1 {
		t.Errorf("expected the run to be saved once, got %d runs", len(runs))
	}

	m, _ = press(t, m, keyReplay)
	m = frame(t, m, clk, 100*time.Millisecond)
	snap := m.Snapshot()
	if snap.State != runner.StateRunning || snap.Score != 28 {
		t.Errorf("after restart: state %v score %d, expected running with 28", snap.State, snap.Score)
	}
}

func TestGameModelQuitClosesSession(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m, cmd := press(t, m, keyQuit)
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit the program")
	}
	if m.session.Alive() {
		t.Error("quitting should close the session")
	}

	next, cmd := m.Update(TickMsg{Loop: m.loop, Time: clk.Advance(100 * time.Millisecond)})
	if cmd != nil {
		t.Error("a closed session should stop the frame loop")
	}
	if next.(GameModel).Snapshot().RunTime != 0 {
		t.Error("a closed session should not advance")
	}
}

func TestGameModelBack(t *testing.T) {
	m, clk := newTestGame(t, nil)

	m, _ = press(t, m, keyEsc)
	m = frame(t, m, clk, 16*time.Millisecond)
	if !m.Snapshot().Paused() || m.BackToMenu() {
		t.Fatal("Esc while running should pause, not leave")
	}

	m, cmd := press(t, m, keyEsc)
	if !m.BackToMenu() {
		t.Fatal("Esc while paused should return to the menu")
	}
	if cmd != nil {
		t.Error("an embedded game should not quit the program on back")
	}
	if m.session.Alive() {
		t.Error("leaving the game should close the session")
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	m, clk := newTestGame(t, nil)
	m.standalone = true

	m, _ = press(t, m, keyPause)
	m = frame(t, m, clk, 16*time.Millisecond)
	m, cmd := press(t, m, keyEsc)

	if cmd == nil || !m.IsQuitting() {
		t.Error("standalone back should quit the program")
	}
}

func TestGameModelView(t *testing.T) {
	m, clk := newTestGame(t, nil)
	m = frame(t, m, clk, 100*time.Millisecond)

	view := m.View()
	if !strings.Contains(view, "Score: 28") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "alice") {
		t.Error("view should show the player name")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should show the key help")
	}
}
