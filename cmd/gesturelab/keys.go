package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	UpDown key.Binding
	Enter  key.Binding
	Step   key.Binding
	RunAll key.Binding
	Settle key.Binding
	Reset  key.Binding
	Goto   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("up/down", "navigate")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load recording")),
		Step:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "step sample")),
		RunAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "run stream")),
		Settle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "fire timers")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset replay")),
		Goto:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find gesture")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Step, k.RunAll, k.Settle, k.Reset, k.Goto, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Enter, k.Step, k.RunAll, k.Settle, k.Reset, k.Goto, k.Quit}}
}
