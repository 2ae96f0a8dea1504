// Package tui is an interactive playground for layout templates: it renders
// a sample event live while the user edits the text, cycles levels, and
// switches templates.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/klogd/klog/internal/layout"
	"github.com/klogd/klog/internal/template"
)

const (
	focusMessage = iota
	focusReason
)

// Model contains the Bubbletea state for the template preview.
type Model struct {
	registry  *template.Registry
	defaults  layout.LayoutConfig
	templates []string
	tmplIdx   int
	levels    []layout.Level
	levelIdx  int

	message textinput.Model
	reason  textinput.Model
	focus   int

	quitting bool
}

// NewModel constructs the preview model over the given template registry.
func NewModel(registry *template.Registry) Model {
	if registry == nil {
		registry = template.Builtin()
	}

	message := textinput.New()
	message.Prompt = "message: "
	message.SetValue("System check completed successfully")
	message.Focus()

	reason := textinput.New()
	reason.Prompt = "reason:  "
	reason.SetValue("Plenty of space left")

	m := Model{
		registry:  registry,
		defaults:  layout.DefaultConfig(),
		templates: registry.Names(),
		levels:    layout.Levels(),
		levelIdx:  1, // INFO
		message:   message,
		reason:    reason,
		focus:     focusMessage,
	}

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Template returns the currently selected template name.
func (m Model) Template() string {
	if len(m.templates) == 0 {
		return "default"
	}
	return m.templates[m.tmplIdx]
}

// Level returns the currently selected level.
func (m Model) Level() layout.Level {
	return m.levels[m.levelIdx]
}

// rendered produces the preview block for the current selections.
func (m Model) rendered() string {
	tmpl := m.registry.Get(m.Template())

	var override *layout.Override
	status := ""
	if tmpl != nil {
		override = &tmpl.Override
		status = tmpl.DefaultStatus(m.Level())
	}

	block, _ := layout.Render(m.defaults, override, m.Level(), nil, m.message.Value(), m.reason.Value(), status)
	return block
}
