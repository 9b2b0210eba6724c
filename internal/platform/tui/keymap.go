package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridstep/internal/input"
)

// KeyMap defines the key bindings of the gridstep view.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextEntity key.Binding
	TurnLeft   key.Binding
	TurnRight  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextEntity, k.TurnLeft, k.TurnRight},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		NextEntity: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select entity"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "set facing anticlockwise"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "set facing clockwise"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// movementKeys maps terminal key names to physical movement keys.
var movementKeys = map[string]input.Key{
	"up":    input.KeyArrowUp,
	"down":  input.KeyArrowDown,
	"left":  input.KeyArrowLeft,
	"right": input.KeyArrowRight,
	"w":     input.KeyW,
	"a":     input.KeyA,
	"s":     input.KeyS,
	"d":     input.KeyD,
}

// MapMovementKey translates a key message to a movement key.
// Returns input.KeyNone for keys that do not move.
func MapMovementKey(msg tea.KeyMsg) input.Key {
	if k, ok := movementKeys[msg.String()]; ok {
		return k
	}
	return input.KeyNone
}
