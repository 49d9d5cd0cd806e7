package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding

	// Counters
	Increment key.Binding
	Decrement key.Binding

	// Reducer
	Dispatch key.Binding
	Submit   key.Binding
	Cancel   key.Binding

	// Timer
	Toggle key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev page"),
		),

		Increment: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+/↑", "increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-/↓", "decrease"),
		),

		Dispatch: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "dispatch by name"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dispatch"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "cancel"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "s"),
			key.WithHelp("space", "start/stop"),
		),
	}
}

// globalBindings are shown after every page's own bindings.
func (k KeyMap) globalBindings() []key.Binding {
	return []key.Binding{k.NextPage, k.Help, k.Quit}
}

// helpKeys adapts a page's bindings plus the global ones to help.KeyMap.
type helpKeys struct {
	page   []key.Binding
	global []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.page)+len(h.global))
	out = append(out, h.page...)
	return append(out, h.global...)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.page, h.global}
}
