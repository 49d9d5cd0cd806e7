package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// render lays out the tab bar, the active page and the help footer.
func (a *App) render() string {
	if a.height < 8 || a.width < 30 {
		return "Terminal too small. Resize to at least 30x8."
	}

	tabs := a.renderTabs()
	p := a.ActivePage()
	footer := a.help.View(helpKeys{page: p.Bindings(), global: a.keys.globalBindings()})

	bodyHeight := a.height - lipgloss.Height(tabs) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := p.View(a.width, bodyHeight)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, footer)
}

func (a *App) renderTabs() string {
	parts := make([]string, 0, len(a.pages))
	for i, p := range a.pages {
		parts = append(parts, tabStyle(i == a.activePage).Render(p.Title()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if pad := a.width - lipgloss.Width(row); pad > 0 {
		row += lipgloss.NewStyle().Background(ColorSurface).Render(strings.Repeat(" ", pad))
	}
	return row
}
