package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      []Page
	activePage int
	keys       KeyMap
	help       help.Model
	width      int
	height     int
	disposed   bool
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	return &App{
		pages: pages,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Show makes the page with the given ID active. It reports false if no such
// page exists.
func (a *App) Show(id string) bool {
	for i, p := range a.pages {
		if p.ID() == id {
			a.activePage = i
			return true
		}
	}
	return false
}

// ActivePage returns the page receiving key input, or nil if there are none.
func (a *App) ActivePage() Page {
	if len(a.pages) == 0 {
		return nil
	}
	return a.pages[a.activePage]
}

func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.pages))
	for _, p := range a.pages {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Everything that is not input goes to every page: schedule ticks must
	// reach their owner even while another page is showing.
	cmds := make([]tea.Cmd, 0, len(a.pages))
	for _, p := range a.pages {
		cmds = append(cmds, p.Update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.ActivePage()
	if p == nil {
		return a, nil
	}

	if key.Matches(msg, a.keys.ForceQuit) {
		return a, a.quit()
	}
	if c, ok := p.(inputCapturer); ok && c.CapturingInput() {
		return a, p.Update(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.quit()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(msg, a.keys.NextPage):
		a.activePage = (a.activePage + 1) % len(a.pages)
		return a, nil
	case key.Matches(msg, a.keys.PrevPage):
		a.activePage = (a.activePage - 1 + len(a.pages)) % len(a.pages)
		return a, nil
	}

	return a, p.Update(msg)
}

func (a *App) quit() tea.Cmd {
	a.Dispose()
	return tea.Quit
}

// Dispose tears down every page. It is safe to call more than once.
func (a *App) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	for _, p := range a.pages {
		p.Dispose()
	}
	log.Debug().Int("pages", len(a.pages)).Msg("pages disposed")
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing..."
	}
	if len(a.pages) == 0 {
		return "No active page"
	}
	return a.render()
}
