package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newPost   key.Binding
	reply     key.Binding
	like      key.Binding
	delete    key.Binding
	copy      key.Binding
	search    key.Binding
	mine      key.Binding
	reload    key.Binding
	submit    key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newPost:   key.NewBinding(key.WithKeys("n")),
	reply:     key.NewBinding(key.WithKeys("r")),
	like:      key.NewBinding(key.WithKeys("f")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	search:    key.NewBinding(key.WithKeys("/")),
	mine:      key.NewBinding(key.WithKeys("m")),
	reload:    key.NewBinding(key.WithKeys("g")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
