package charttui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Submit    key.Binding
	AddRow    key.Binding
	RemoveRow key.Binding
	Clear     key.Binding
	Back      key.Binding
	ExportPNG key.Binding
	ExportJPG key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "choose"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "generate chart"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add row"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "remove row"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear values"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		ExportPNG: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export PNG"),
		),
		ExportJPG: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "export JPG"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements [help.KeyMap]. Disabled bindings are hidden.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Next, k.Left, k.Submit, k.AddRow, k.RemoveRow, k.Clear,
		k.ExportPNG, k.ExportJPG, k.Back, k.Quit,
	}
}

// FullHelp implements [help.KeyMap].
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left},
		{k.Submit, k.AddRow, k.RemoveRow, k.Clear},
		{k.ExportPNG, k.ExportJPG, k.Back, k.Quit},
	}
}
