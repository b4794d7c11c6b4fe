package tui

import "github.com/charmbracelet/lipgloss"

// Theme helpers.
//
// The TUI must stay readable on both light and dark terminal
// backgrounds, so everything styled uses lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMutedFg    lipgloss.TerminalColor = ac("240", "245")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorControlBg  lipgloss.TerminalColor = ac("254", "237")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
	colorAccent     lipgloss.TerminalColor = ac("#5f9fb0", "#5f9fb0")
)

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMutedFg)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}
