package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	save      key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n", "+")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
