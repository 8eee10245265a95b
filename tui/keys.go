package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/dasdy/datanav/navigator"
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	DiagNW key.Binding
	DiagNE key.Binding
	DiagSW key.Binding
	DiagSE key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		DiagNW: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "up-left")),
		DiagNE: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "up-right")),
		DiagSW: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "down-left")),
		DiagSE: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "down-right")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type commandBinding struct {
	command navigator.Command
	binding key.Binding
}

// commandBindings pairs each navigation command with its binding.
func (k KeyMap) commandBindings() []commandBinding {
	return []commandBinding{
		{navigator.Up, k.Up},
		{navigator.Down, k.Down},
		{navigator.Left, k.Left},
		{navigator.Right, k.Right},
		{navigator.DiagNW, k.DiagNW},
		{navigator.DiagNE, k.DiagNE},
		{navigator.DiagSW, k.DiagSW},
		{navigator.DiagSE, k.DiagSE},
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.DiagNW, k.DiagNE, k.DiagSW, k.DiagSE, k.Reload, k.Quit}
}
