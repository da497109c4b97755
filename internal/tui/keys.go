package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next         key.Binding
	Prev         key.Binding
	Left         key.Binding
	Right        key.Binding
	Select       key.Binding
	Remove       key.Binding
	Submit       key.Binding
	Registration key.Binding
	Search       key.Binding
	Dismiss      key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:         key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Left:         key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "choose")),
		Right:        key.NewBinding(key.WithKeys("right")),
		Select:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Remove:       key.NewBinding(key.WithKeys("x", "delete", "backspace"), key.WithHelp("x", "remove skill")),
		Submit:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Registration: key.NewBinding(key.WithKeys("ctrl+r", "f1"), key.WithHelp("ctrl+r", "register")),
		Search:       key.NewBinding(key.WithKeys("ctrl+f", "f2"), key.WithHelp("ctrl+f", "search")),
		Dismiss:      key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Select, k.Submit, k.Registration, k.Search, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Select, k.Remove},
		{k.Submit, k.Registration, k.Search, k.Dismiss, k.Quit},
	}
}
