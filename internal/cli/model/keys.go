package model

import "github.com/charmbracelet/bubbles/key"

// workspaceKeyMap defines keybindings for the tiling playground.
type workspaceKeyMap struct {
	FocusLeft  key.Binding
	FocusDown  key.Binding
	FocusUp    key.Binding
	FocusRight key.Binding
	SwapLeft   key.Binding
	SwapDown   key.Binding
	SwapUp     key.Binding
	SwapRight  key.Binding
	GrowLeft   key.Binding
	GrowDown   key.Binding
	GrowUp     key.Binding
	GrowRight  key.Binding
	SplitRight key.Binding
	SplitDown  key.Binding
	Close      key.Binding
	Cycle      key.Binding
	Mute       key.Binding
	Audio      key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k workspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusLeft, k.SplitRight, k.SplitDown, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k workspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusLeft, k.FocusDown, k.FocusUp, k.FocusRight, k.Cycle},
		{k.SwapLeft, k.SwapDown, k.SwapUp, k.SwapRight},
		{k.GrowLeft, k.GrowDown, k.GrowUp, k.GrowRight},
		{k.SplitRight, k.SplitDown, k.Close},
		{k.Mute, k.Audio, k.Save, k.Help, k.Quit},
	}
}

func defaultWorkspaceKeyMap() workspaceKeyMap {
	return workspaceKeyMap{
		FocusLeft:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/j/k/l", "focus")),
		FocusDown:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "focus down")),
		FocusUp:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "focus up")),
		FocusRight: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "focus right")),
		SwapLeft:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "swap left")),
		SwapDown:   key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "swap down")),
		SwapUp:     key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "swap up")),
		SwapRight:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "swap right")),
		GrowLeft:   key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "resize left")),
		GrowDown:   key.NewBinding(key.WithKeys("alt+j"), key.WithHelp("alt+j", "resize down")),
		GrowUp:     key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "resize up")),
		GrowRight:  key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "resize right")),
		SplitRight: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "split right")),
		SplitDown:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split down")),
		Close:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		Cycle:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tile")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Audio:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle audio")),
		Save:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save layout")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
