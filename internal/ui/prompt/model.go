// Package prompt is a small modal for one-line input and yes/no
// confirmation, used for areas, headings and destructive actions.
package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/ui"
)

// Purpose tells the parent what a prompt was opened for.
type Purpose struct {
	Action string
	ID     string
}

// SubmittedMsg is dispatched when an input prompt is submitted or a
// confirmation is accepted.
type SubmittedMsg struct {
	Purpose Purpose
	Value   string
}

// CancelMsg is dispatched when the prompt is dismissed or declined.
type CancelMsg struct{}

type formBindings struct {
	value   string
	confirm bool
}

// Model is the prompt overlay.
type Model struct {
	form    *huh.Form
	fb      *formBindings
	purpose Purpose
	confirm bool
	width   int
	height  int
}

// New creates an idle prompt.
func New(width, height int) Model {
	return Model{fb: &formBindings{}, width: width, height: height}
}

// StartInput asks for a single line of text, prefilled with value.
func (m *Model) StartInput(p Purpose, title, placeholder, value string) tea.Cmd {
	m.purpose = p
	m.confirm = false
	*m.fb = formBindings{value: value}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&m.fb.value).
				Validate(ui.ValidateRequired("A name")),
		),
	).WithWidth(ui.FormWidth(m.width)).WithShowHelp(false)
	return m.form.Init()
}

// StartConfirm asks a yes/no question.
func (m *Model) StartConfirm(p Purpose, title, description string) tea.Cmd {
	m.purpose = p
	m.confirm = true
	*m.fb = formBindings{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(ui.FormWidth(m.width)).WithShowHelp(false)
	return m.form.Init()
}

// Purpose returns what the prompt is open for.
func (m Model) Purpose() Purpose {
	return m.purpose
}

// Update handles messages for the prompt.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m, m.result()
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

func (m Model) result() tea.Cmd {
	if m.confirm && !m.fb.confirm {
		return func() tea.Msg { return CancelMsg{} }
	}
	out := SubmittedMsg{Purpose: m.purpose, Value: strings.TrimSpace(m.fb.value)}
	return func() tea.Msg { return out }
}

// View renders the prompt.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return lipgloss.NewStyle().
		Width(ui.FormWidth(m.width)).
		Foreground(theme.ColorWhite).
		Render(m.form.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
