package dash

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard key bindings. It implements help.KeyMap.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	CloseHelp key.Binding
}

// ShortHelp returns the bindings shown in compact help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help, k.CloseHelp},
	}
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q / ctrl+c", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	CloseHelp: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
}
