package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the sequence explorer.
type KeyMap struct {
	Grow    key.Binding
	Shrink  key.Binding
	GrowBig key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Grow: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+/k", "more terms"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-/j", "fewer terms"),
		),
		GrowBig: key.NewBinding(
			key.WithKeys("pgup", "K"),
			key.WithHelp("pgup", "+10 terms"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grow, k.Shrink, k.Reset, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grow, k.Shrink, k.GrowBig},
		{k.Reset, k.Help, k.Quit},
	}
}
