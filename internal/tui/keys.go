package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the viewer key bindings
type keyMap struct {
	Quit     key.Binding
	Mode     key.Binding
	Reload   key.Binding
	Reheat   key.Binding
	Snapshot key.Binding
	Help     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle cartouches"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Reheat: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reheat"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save svg"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Mode, k.Help}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.Reload, k.Reheat},
		{k.Snapshot, k.Help, k.Quit},
	}
}
