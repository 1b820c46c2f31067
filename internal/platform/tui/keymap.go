package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetromino/internal/core"
)

// KeyMap defines the game key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	RotateRight key.Binding
	RotateLeft  key.Binding
	SoftDrop    key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Quit        key.Binding
	Help        key.Binding
	Screenshot  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("up", " ", "x"),
			key.WithHelp("↑/space", "rotate"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("z", "alt+up", "alt+ "),
			key.WithHelp("z", "rotate left"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateRight, k.SoftDrop, k.Pause, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop},
		{k.RotateRight, k.RotateLeft},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Quit, k.Help},
	}
}

// Action translates a key message to a game action.
// Rotation is checked before the others so alt-modified keys win.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
