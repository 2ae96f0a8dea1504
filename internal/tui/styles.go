package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).MarginTop(1)
	previewStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
