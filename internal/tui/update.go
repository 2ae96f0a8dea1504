package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab:
			return m.toggleFocus(), nil
		case tea.KeyUp:
			m.levelIdx = (m.levelIdx + len(m.levels) - 1) % len(m.levels)
			return m, nil
		case tea.KeyDown:
			m.levelIdx = (m.levelIdx + 1) % len(m.levels)
			return m, nil
		case tea.KeyCtrlT:
			if len(m.templates) > 0 {
				m.tmplIdx = (m.tmplIdx + 1) % len(m.templates)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusMessage {
		m.message, cmd = m.message.Update(msg)
	} else {
		m.reason, cmd = m.reason.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleFocus() Model {
	if m.focus == focusMessage {
		m.focus = focusReason
		m.message.Blur()
		m.reason.Focus()
	} else {
		m.focus = focusMessage
		m.reason.Blur()
		m.message.Focus()
	}
	return m
}
