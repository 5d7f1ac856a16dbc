package tui

import "charm.land/lipgloss/v2"

var (
	paneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	selectedFileStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220")).
				Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	barCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	binLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	filterActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	staleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Italic(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	helpTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)
