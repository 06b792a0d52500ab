package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	work       key.Binding
	shortBreak key.Binding
	longBreak  key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	work: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "focus"),
	),
	shortBreak: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "short break"),
	),
	longBreak: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "long break"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) shortHelp() []key.Binding {
	return []key.Binding{
		k.togglePlay,
		k.reset,
		k.work,
		k.shortBreak,
		k.longBreak,
		k.quit,
	}
}
