package tui

import "github.com/charmbracelet/lipgloss"

// Palette slots. InitializeSkin overwrites these before the program starts.
var (
	ColorAccent  lipgloss.Color
	ColorMuted   lipgloss.Color
	ColorSurface lipgloss.Color
	ColorText    lipgloss.Color
	ColorError   lipgloss.Color
	ColorSuccess lipgloss.Color
)

func init() {
	applyPalette(defaultPalette)
}

func tabStyle(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2)
	if active {
		return s.Foreground(ColorText).Background(ColorAccent).Bold(true)
	}
	return s.Foreground(ColorMuted).Background(ColorSurface)
}

func headlineStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 6)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
}

func successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}
