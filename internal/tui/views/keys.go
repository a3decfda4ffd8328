package views

import "github.com/charmbracelet/bubbles/key"

// dashboardKeyMap holds the dashboard key bindings. Bindings that only make
// sense for one focus target are enabled and disabled as focus moves.
type dashboardKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Leave     key.Binding
	Quit      key.Binding

	FilterPrev key.Binding
	FilterNext key.Binding

	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Close  key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Next")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("Shift+Tab", "Prev")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "Add task")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Tasks")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),

		FilterPrev: key.NewBinding(key.WithKeys("left", "h")),
		FilterNext: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "Change filter")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("Space", "Toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "Delete")),
		Close:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	}
}

// confirmKeyMap holds the delete confirmation bindings.
type confirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
	Switch  key.Binding
	Choose  key.Binding
	Quit    key.Binding
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "Delete")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/Esc", "Cancel")),
		Switch:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"), key.WithHelp("←→", "Choose")),
		Choose:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("Enter", "Select")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	}
}
