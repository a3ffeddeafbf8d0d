package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the presentation key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Prev       key.Binding
	Next       key.Binding
	PauseAll   key.Binding
	Toggle     key.Binding
	Reset      key.Binding
	Restart    key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Edit       key.Binding
	FieldUp    key.Binding
	FieldDown  key.Binding
	Export     key.Binding
	Copy       key.Binding
	Preview    key.Binding
	StartAgain key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		PauseAll:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause all")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Restart:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "restart")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit field")),
		FieldUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field")),
		FieldDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Export:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export report")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy report")),
		Preview:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view report")),
		StartAgain: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "start again")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp is shown in the help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.PauseAll, k.Edit, k.Help, k.Quit}
}

// FullHelp groups every binding by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.NextTab, k.PrevTab},
		{k.Toggle, k.PauseAll, k.Reset, k.Restart},
		{k.FieldUp, k.FieldDown, k.Edit},
		{k.Export, k.Copy, k.Preview, k.StartAgain},
		{k.Help, k.Quit},
	}
}
