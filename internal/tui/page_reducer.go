package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/tinytelemetry/statekit/internal/counter"
	"github.com/tinytelemetry/statekit/internal/model"
)

// ReducerPage drives a counter.Store. Keys dispatch typed actions; the
// prompt dispatches by name, which is where unknown actions can appear.
type ReducerPage struct {
	keys  KeyMap
	store *counter.Store

	prompt       textinput.Model
	promptActive bool

	lastAction  string
	lastErr     error
	dispatched  int
	unsubscribe func()
}

// NewReducerPage creates the page with the store at initial.
func NewReducerPage(initial int) *ReducerPage {
	prompt := textinput.New()
	prompt.Placeholder = "increment | decrement"
	prompt.Prompt = "dispatch> "
	prompt.CharLimit = 64

	p := &ReducerPage{
		keys:   DefaultKeyMap(),
		store:  counter.NewStore(initial),
		prompt: prompt,
	}
	p.unsubscribe = p.store.Subscribe(func(s model.CounterState) {
		p.dispatched++
		log.Debug().Int("count", s.Count).Str("action", p.lastAction).Msg("reducer dispatched")
	})
	return p
}

func (p *ReducerPage) ID() string    { return "reducer" }
func (p *ReducerPage) Title() string { return "Reducer" }

func (p *ReducerPage) Init() tea.Cmd { return nil }

// State returns the store's current state.
func (p *ReducerPage) State() model.CounterState { return p.store.State() }

// LastError returns the error from the most recent dispatch, if any.
func (p *ReducerPage) LastError() error { return p.lastErr }

// CapturingInput reports whether the dispatch prompt is open.
func (p *ReducerPage) CapturingInput() bool { return p.promptActive }

func (p *ReducerPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if p.promptActive {
		return p.handlePromptKey(km)
	}

	switch {
	case key.Matches(km, p.keys.Increment):
		p.dispatch(counter.Increment{})
	case key.Matches(km, p.keys.Decrement):
		p.dispatch(counter.Decrement{})
	case key.Matches(km, p.keys.Dispatch):
		p.promptActive = true
		p.prompt.SetValue("")
		return p.prompt.Focus()
	}
	return nil
}

func (p *ReducerPage) handlePromptKey(km tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(km, p.keys.Cancel):
		p.closePrompt()
		return nil
	case key.Matches(km, p.keys.Submit):
		name := p.prompt.Value()
		p.closePrompt()
		p.lastAction = name
		p.lastErr = p.store.DispatchNamed(name)
		if p.lastErr != nil {
			log.Warn().Err(p.lastErr).Str("action", name).Msg("rejected reducer action")
		}
		return nil
	}

	var cmd tea.Cmd
	p.prompt, cmd = p.prompt.Update(km)
	return cmd
}

func (p *ReducerPage) closePrompt() {
	p.promptActive = false
	p.prompt.Blur()
	p.prompt.SetValue("")
}

func (p *ReducerPage) dispatch(a counter.Action) {
	p.lastAction = a.Name()
	p.lastErr = p.store.Dispatch(a)
}

func (p *ReducerPage) View(width, height int) string {
	lines := []string{
		headlineStyle().Render(fmt.Sprintf("%d", p.store.State().Count)),
		"",
	}

	switch {
	case p.lastErr != nil:
		lines = append(lines, errorStyle().Render("error: "+p.lastErr.Error()))
	case p.lastAction != "":
		lines = append(lines, successStyle().Render(fmt.Sprintf("%s (%d dispatched)", p.lastAction, p.dispatched)))
	default:
		lines = append(lines, mutedStyle().Render("no actions dispatched"))
	}

	if p.promptActive {
		lines = append(lines, "", p.prompt.View())
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *ReducerPage) Bindings() []key.Binding {
	if p.promptActive {
		return []key.Binding{p.keys.Submit, p.keys.Cancel}
	}
	return []key.Binding{p.keys.Increment, p.keys.Decrement, p.keys.Dispatch}
}

func (p *ReducerPage) Dispose() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}
