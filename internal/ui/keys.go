package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Day    key.Binding
	Word   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next"),
		),
		Day: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "select day"),
		),
		Word: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "select word"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// browseHelp lists the bindings shown while reading an entry.
func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Day, k.Word, k.Quit}
}

// pickerHelp lists the bindings shown while the day selector is open.
func (k keyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

// inputHelp lists the bindings shown while typing a word number.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel}
}
