// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	filter   key.Binding
	refresh  key.Binding
	copy     key.Binding
	nextPage key.Binding
	prevPage key.Binding
	yes      key.Binding
	no       key.Binding

	income          key.Binding
	outcome         key.Binding
	recommendations key.Binding
	chat            key.Binding
	profile         key.Binding
	about           key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	filter:   key.NewBinding(key.WithKeys("f")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	nextPage: key.NewBinding(key.WithKeys("]", "pgdown")),
	prevPage: key.NewBinding(key.WithKeys("[", "pgup")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),

	income:          key.NewBinding(key.WithKeys("i")),
	outcome:         key.NewBinding(key.WithKeys("o")),
	recommendations: key.NewBinding(key.WithKeys("t")),
	chat:            key.NewBinding(key.WithKeys("a")),
	profile:         key.NewBinding(key.WithKeys("p")),
	about:           key.NewBinding(key.WithKeys("v")),
}
