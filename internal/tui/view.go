package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render("klog • template preview"))
	sections = append(sections, selectionStyle.Render(
		fmt.Sprintf("template: %s    level: %s", m.Template(), m.Level())))

	sections = append(sections, previewStyle.Render(m.rendered()))

	sections = append(sections, m.message.View(), m.reason.View())

	sections = append(sections, helpStyle.Render(
		"tab focus • ↑/↓ level • ctrl+t template • esc quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
