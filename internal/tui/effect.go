package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// titleEffect keeps the terminal window title in sync with a count. It is
// fed by a state subscription and drained by the owning page's Update, so
// the state engine never talks to the terminal itself.
type titleEffect struct {
	format  string
	pending string
	dirty   bool
}

func newTitleEffect(format string) *titleEffect {
	return &titleEffect{format: format}
}

// Observe records the title for count n.
func (e *titleEffect) Observe(n int) {
	e.pending = fmt.Sprintf(e.format, n)
	e.dirty = true
}

// Title returns the most recently observed title.
func (e *titleEffect) Title() string { return e.pending }

// Cmd returns the command that applies the pending title, or nil if nothing
// changed since the last call.
func (e *titleEffect) Cmd() tea.Cmd {
	if !e.dirty {
		return nil
	}
	e.dirty = false
	return tea.SetWindowTitle(e.pending)
}
