package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview's keyboard shortcuts.
type KeyMap struct {
	Theme  key.Binding
	Mode   key.Binding
	Copy   key.Binding
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Next palette"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Cycle light/dark/system"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy guarded CSS"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Close help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// helpRows lists bindings in display order as [keys, description].
func helpRows(keys KeyMap) [][]string {
	bindings := []key.Binding{keys.Theme, keys.Mode, keys.Copy, keys.Help, keys.Escape, keys.Quit}
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, []string{b.Help().Key, b.Help().Desc})
	}
	return rows
}
