package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	MerchantTab key.Binding
	PatternTab  key.Binding
	Upload      key.Binding
	Analyze     key.Binding
	Delete      key.Binding
	DeleteAll   key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap is the binding set used unless WithKeyMap overrides it.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch tab"),
	),
	MerchantTab: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "merchants"),
	),
	PatternTab: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "patterns"),
	),
	Upload: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "upload csv"),
	),
	Analyze: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "run analysis"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete row"),
	),
	DeleteAll: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete all"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "n"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Upload, k.Analyze, k.Delete, k.DeleteAll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.MerchantTab, k.PatternTab},
		{k.Upload, k.Analyze, k.Delete, k.DeleteAll},
		{k.Help, k.Quit},
	}
}
