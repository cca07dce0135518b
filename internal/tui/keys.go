package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	top     key.Binding
	bottom  key.Binding
	refresh key.Binding
	reset   key.Binding
	retry   key.Binding
	copy    key.Binding
	version key.Binding
	esc     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	top:     key.NewBinding(key.WithKeys("home", "g")),
	bottom:  key.NewBinding(key.WithKeys("end", "G")),
	refresh: key.NewBinding(key.WithKeys("r")),
	reset:   key.NewBinding(key.WithKeys("x")),
	retry:   key.NewBinding(key.WithKeys("t")),
	copy:    key.NewBinding(key.WithKeys("y")),
	version: key.NewBinding(key.WithKeys("v")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
