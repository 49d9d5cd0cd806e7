package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/tinytelemetry/statekit/internal/counter"
)

// CounterPage is a plain local-state counter whose value is mirrored into
// the terminal window title.
type CounterPage struct {
	keys        KeyMap
	count       *counter.Value[int]
	title       *titleEffect
	unsubscribe func()
}

// NewCounterPage creates the page. titleFormat receives the count as its
// only verb, e.g. "You clicked %d times".
func NewCounterPage(initial int, titleFormat string) *CounterPage {
	p := &CounterPage{
		keys:  DefaultKeyMap(),
		count: counter.NewValue(initial),
		title: newTitleEffect(titleFormat),
	}
	p.unsubscribe = p.count.Subscribe(func(n int) {
		log.Debug().Int("count", n).Msg("counter changed")
		p.title.Observe(n)
	})
	return p
}

func (p *CounterPage) ID() string    { return "counter" }
func (p *CounterPage) Title() string { return "Counter" }

// Count returns the current value.
func (p *CounterPage) Count() int { return p.count.Get() }

// Init applies the title for the initial count.
func (p *CounterPage) Init() tea.Cmd {
	p.title.Observe(p.count.Get())
	return p.title.Cmd()
}

func (p *CounterPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, p.keys.Increment):
		p.count.Update(func(n int) int { return n + 1 })
	case key.Matches(km, p.keys.Decrement):
		p.count.Update(func(n int) int { return n - 1 })
	}
	return p.title.Cmd()
}

func (p *CounterPage) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		headlineStyle().Render(fmt.Sprintf("%d", p.count.Get())),
		"",
		mutedStyle().Render("title: "+p.title.Title()),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *CounterPage) Bindings() []key.Binding {
	return []key.Binding{p.keys.Increment, p.keys.Decrement}
}

func (p *CounterPage) Dispose() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}
