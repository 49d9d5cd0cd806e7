package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Page represents a top-level screen in the TUI (counter, reducer, timer).
type Page interface {
	ID() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	// Bindings lists the page's own keys for the help footer.
	Bindings() []key.Binding
	// Dispose releases schedules and subscriptions. It is called once when
	// the app quits; pages must not mutate state afterwards.
	Dispose()
}

// inputCapturer is implemented by pages that sometimes need every key,
// including the ones App would otherwise treat as global.
type inputCapturer interface {
	CapturingInput() bool
}
