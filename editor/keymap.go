package editor

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding

	Accept  key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("left", "move left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("right", "move right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start of line")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end of line")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("delete", "delete right")),

		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept candidate")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss candidates")),
		Next:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("down", "next candidate")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("up", "prev candidate")),
	}
}
