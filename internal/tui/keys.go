package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the list-mode bindings shown in the help line.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	ClearDone key.Binding
	FilterAll key.Binding
	FilterAct key.Binding
	FilterDn  key.Binding
	Cycle     key.Binding
	Search    key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "delete")),
		ClearDone: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear done")),
		FilterAll: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterAct: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterDn:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "done")),
		Cycle:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.ClearDone, k.Cycle, k.Search, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Toggle},
		{k.Delete, k.ClearDone, k.Search, k.Quit},
		{k.FilterAll, k.FilterAct, k.FilterDn, k.Cycle},
	}
}

// inputKeys are active while the add or search line has focus.
type inputKeys struct {
	Submit   key.Binding
	Cancel   key.Binding
	Priority key.Binding
}

func defaultInputKeys() inputKeys {
	return inputKeys{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Priority: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "priority")),
	}
}

// ShortHelp implements help.KeyMap.
func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Priority, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
