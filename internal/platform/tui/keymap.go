package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a host-level command derived from a key press.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Tilt left
	ActionRight        // Tilt right
	ActionFire         // Primary button
	ActionQuit
)

// KeyMap holds the key bindings of the game screen.
// It centralizes bindings so they are testable and drive the help footer.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "tilt left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "tilt right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter", "1"),
			key.WithHelp("space", "button 1"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Left):
		return ActionLeft
	case key.Matches(msg, k.Right):
		return ActionRight
	case key.Matches(msg, k.Fire):
		return ActionFire
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
