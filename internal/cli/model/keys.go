package model

import "github.com/charmbracelet/bubbles/key"

// darkScreenKeyMap defines keybindings for the dark screen.
type darkScreenKeyMap struct {
	Grant       key.Binding
	Dismiss     key.Binding
	Allow       key.Binding
	Deny        key.Binding
	Back        key.Binding
	Pause       key.Binding
	Diagnostics key.Binding
	Touch       key.Binding
	Media       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k darkScreenKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Diagnostics, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k darkScreenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grant, k.Dismiss},
		{k.Allow, k.Deny, k.Back},
		{k.Pause, k.Diagnostics},
		{k.Touch, k.Media},
		{k.Help, k.Quit},
	}
}

func defaultDarkScreenKeyMap() darkScreenKeyMap {
	return darkScreenKeyMap{
		Grant: key.NewBinding(
			key.WithKeys("enter", "g"),
			key.WithHelp("enter", "grant access"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "dismiss prompt"),
		),
		Allow: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "allow (settings)"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "deny (settings)"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "diagnostics"),
		),
		Touch: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle preventTouch"),
		),
		Media: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mediaEnabled"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
