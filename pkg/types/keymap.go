package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the terminal UI.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding

	// Actions
	Convert     key.Binding // decimal tab
	ConvertText key.Binding // text tab; enter inserts a newline there
	EnterPath   key.Binding // image tab: type or paste a path
	CancelPath  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c", "quit")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Convert:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "convert")),
		ConvertText: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "convert text")),
		EnterPath:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "type a path")),
		CancelPath:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to picker")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Convert, k.ConvertText, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.Convert, k.ConvertText},
		{k.EnterPath, k.CancelPath},
		{k.Help, k.Quit},
	}
}
