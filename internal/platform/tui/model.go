package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/clock"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional run history
	Logger  *log.Logger    // Optional; discards when nil
	Clock   clock.Clock    // Optional; system clock when nil
	Player  string         // Name recorded with finished runs

	// Standalone makes the back key quit the program instead of
	// returning to a surrounding menu.
	Standalone bool
}

// GameModel is the Bubble Tea model hosting one runner session.
// Every frame it applies the queued intents, then advances the session
// by the clamped time since the previous frame.
type GameModel struct {
	session *runner.Session
	frames  *clock.FrameTimer
	clock   clock.Clock
	scene   Scene
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	keys    GameKeyMap
	help    help.Model
	runtime core.RuntimeConfig
	player  string
	loop    uint64

	input  core.InputFrame
	crouch crouchHold
	last   runner.Snapshot
	best   int

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model with a fresh session.
func NewGameModel(opts GameOptions) GameModel {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	best := 0
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			best = high
		} else {
			logger.Warn("could not read best score", "error", err)
		}
	}

	session := runner.NewSession(opts.Config, rt.Seed)
	h := help.New()
	h.Width = rt.ScreenW

	return GameModel{
		session:    session,
		frames:     clock.NewFrameTimer(clk, opts.Config.Physics.MaxFrameDelta),
		clock:      clk,
		scene:      NewScene(opts.Config),
		screen:     core.NewScreen(rt.ScreenW, core.Max(1, rt.ScreenH-1)),
		store:      opts.Store,
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		help:       h,
		runtime:    rt,
		player:     opts.Player,
		loop:       newLoopID(),
		input:      core.NewInputFrame(),
		crouch:     newCrouchHold(opts.Config.Controls.CrouchRelease),
		last:       session.Snapshot(),
		best:       best,
		standalone: opts.Standalone,
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.frames.Reset()
	m.logger.Debug("run started", "seed", m.runtime.Seed, "player", m.player)
	return tickCmd(m.loop, m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey translates keys into intents queued for the next frame.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.last.GameOver() || m.last.Paused() {
			m.session.Close()
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		m.input.Push(core.IntentTogglePause)

	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Jump):
		if m.crouch.Release() {
			m.input.Push(core.IntentCrouchEnd)
		}
		m.input.Push(core.IntentJump)

	case key.Matches(msg, m.keys.Crouch):
		if m.crouch.Press(m.clock.Now()) {
			m.input.Push(core.IntentCrouchStart)
		}

	case key.Matches(msg, m.keys.Confirm):
		m.input.Push(confirmIntent(m.last))

	case key.Matches(msg, m.keys.Pause):
		m.input.Push(core.IntentTogglePause)

	case key.Matches(msg, m.keys.Restart):
		if m.last.GameOver() {
			m.input.Push(core.IntentRestart)
		}
	}

	return m, nil
}

// confirmIntent restarts a finished run and toggles pause otherwise.
func confirmIntent(snap runner.Snapshot) core.Intent {
	if snap.GameOver() {
		return core.IntentRestart
	}
	return core.IntentTogglePause
}

// handleTick runs one frame of the session.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// A closed session stops the frame loop.
	if !m.session.Alive() {
		return m, nil
	}

	if m.crouch.Expired(now) {
		m.crouch.Release()
		m.input.Push(core.IntentCrouchEnd)
	}

	m.session.Apply(m.input)
	m.input.Clear()

	result := m.session.Tick(m.frames.Frame(now))
	m.last = result.Snapshot

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	return m, tickCmd(m.loop, m.runtime.TickRate)
}

// handleEvent logs session events and records finished runs.
func (m *GameModel) handleEvent(ev runner.Event) {
	switch ev.Kind {
	case runner.EventGameOver:
		m.logger.Info("run over", "score", ev.Score, "hits", m.last.Hits, "time", m.last.RunTime)
		m.saveRun(ev.Score)
	case runner.EventRestart:
		// The fresh run starts standing, so a held key must start a new crouch.
		m.crouch.Release()
		m.logger.Debug(ev.Kind.String())
	case runner.EventHit:
		m.logger.Debug("hit", "obstacle", ev.ObstacleID, "hp", ev.HP)
	case runner.EventSpawn:
		m.logger.Debug("spawn", "obstacle", ev.ObstacleID)
	default:
		m.logger.Debug(ev.Kind.String())
	}
}

// saveRun persists the finished run once per game over.
func (m *GameModel) saveRun(score int) {
	m.best = core.Max(m.best, score)
	if m.store == nil {
		return
	}

	run, err := m.store.SaveRun(storage.RunRecord{
		Player:   m.player,
		Score:    score,
		Hits:     m.last.Hits,
		Duration: m.last.RunTime,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run_id", run.RunID)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.scene.Draw(m.screen, m.last, m.hud())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not written", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m GameModel) hud() HUD {
	return HUD{Best: m.best, Player: m.player}
}

// View renders the latest snapshot with a help line below it.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Draw(m.screen, m.last, m.hud())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot returns the snapshot of the latest frame.
func (m GameModel) Snapshot() runner.Snapshot {
	return m.last
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game in the local terminal.
func Run(opts GameOptions) error {
	opts.Standalone = true
	model := NewGameModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.session.Close()
	return err
}
