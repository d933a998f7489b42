package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GameKeyMap defines the key bindings used while a run is on screen.
type GameKeyMap struct {
	Jump    key.Binding
	Crouch  key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Shot    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Crouch, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Crouch},
		{k.Confirm, k.Pause, k.Restart},
		{k.Back, k.Shot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Crouch: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down", "crouch"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pause/restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// crouchHold turns repeated crouch key presses into a held posture.
// Terminals report no key release, so the hold ends once the key has not
// repeated for the release window.
type crouchHold struct {
	release  time.Duration
	active   bool
	lastSeen time.Time
}

func newCrouchHold(release time.Duration) crouchHold {
	return crouchHold{release: release}
}

// Press records a crouch key press. Returns true when it starts a new hold.
func (c *crouchHold) Press(now time.Time) bool {
	c.lastSeen = now
	if c.active {
		return false
	}
	c.active = true
	return true
}

// Expired reports whether an active hold has outlived the release window.
func (c *crouchHold) Expired(now time.Time) bool {
	return c.active && now.Sub(c.lastSeen) >= c.release
}

// Release ends the hold. Returns true if a hold was active.
func (c *crouchHold) Release() bool {
	if !c.active {
		return false
	}
	c.active = false
	return true
}

// Active reports whether the crouch key is considered held.
func (c *crouchHold) Active() bool {
	return c.active
}
