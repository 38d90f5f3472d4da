package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the timer key bindings. It implements help.KeyMap.
type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Switch key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space/s", "start/stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "b", "w"),
			key.WithHelp("tab/b/w", "switch phase"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Switch, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Switch},
		{k.Help, k.Quit},
	}
}
