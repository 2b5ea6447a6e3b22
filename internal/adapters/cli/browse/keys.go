package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Category key.Binding
	Clear    key.Binding
	Status   key.Binding
	Add      key.Binding
	Open     key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Category: key.NewBinding(key.WithKeys("c", "/"), key.WithHelp("c", "category")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear category")),
		Status:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Category, k.Clear, k.Status, k.Add, k.Open, k.Reload}
}
