package projectform

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/ui"
	"github.com/nhle/gtd/internal/view"
)

// ProjectSubmittedMsg is dispatched when the form is submitted. ID is empty
// for a new project. Status is nil when unchanged.
type ProjectSubmittedMsg struct {
	ID     string
	Input  state.ProjectInput
	Status *model.ProjectStatus
}

// ProjectFormCancelMsg is dispatched when the user cancels the form.
type ProjectFormCancelMsg struct{}

type formBindings struct {
	name     string
	emoji    string
	notes    string
	areaID   string
	deadline string
	status   model.ProjectStatus
}

// Model is the Bubble Tea model for the project create/edit form.
type Model struct {
	form      *huh.Form
	fb        *formBindings
	editingID string
	original  model.ProjectStatus
	areas     []model.Area
	width     int
	height    int
}

// New creates a new project form model.
func New(width, height int) Model {
	return Model{
		fb:    &formBindings{},
		width: width, height: height,
	}
}

// SetAreas sets the areas offered by the area selector.
func (m *Model) SetAreas(areas []model.Area) {
	m.areas = areas
}

// StartCreate opens an empty form. areaID preselects an area.
func (m *Model) StartCreate(areaID string) tea.Cmd {
	m.editingID = ""
	*m.fb = formBindings{areaID: areaID, status: model.ProjectStatusActive}
	m.form = m.buildForm(false)
	return m.form.Init()
}

// StartEdit opens the form for an existing project.
func (m *Model) StartEdit(p model.Project) tea.Cmd {
	m.editingID = p.ID
	m.original = p.Status
	*m.fb = formBindings{
		name:     p.Name,
		emoji:    p.Emoji,
		notes:    p.Notes,
		deadline: ui.FormatDate(p.Deadline),
		status:   p.Status,
	}
	if a := view.AreaOf(p, m.areas); a != nil {
		m.fb.areaID = a.ID
	}
	m.form = m.buildForm(true)
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		out := m.submitted()
		return m, func() tea.Msg { return out }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return ProjectFormCancelMsg{} }
	}
	return m, cmd
}

func (m Model) submitted() ProjectSubmittedMsg {
	deadline, _ := ui.ParseDate(m.fb.deadline)
	out := ProjectSubmittedMsg{
		ID: m.editingID,
		Input: state.ProjectInput{
			Name:     m.fb.name,
			Emoji:    m.fb.emoji,
			Notes:    m.fb.notes,
			AreaID:   m.fb.areaID,
			Deadline: deadline,
		},
	}
	if m.editingID != "" && m.fb.status != m.original {
		s := m.fb.status
		out.Status = &s
	}
	return out
}

func (m Model) buildForm(edit bool) *huh.Form {
	areaOpts := []huh.Option[string]{huh.NewOption("No area", "")}
	for _, a := range m.areas {
		areaOpts = append(areaOpts, huh.NewOption(a.Name, a.ID))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("Project name").
			Value(&m.fb.name).
			Validate(ui.ValidateRequired("Name")),
		huh.NewInput().
			Title("Emoji").
			Placeholder("📁").
			CharLimit(8).
			Value(&m.fb.emoji),
		huh.NewText().
			Title("Notes").
			Placeholder("Optional notes").
			Value(&m.fb.notes),
		huh.NewSelect[string]().
			Title("Area").
			Options(areaOpts...).
			Value(&m.fb.areaID),
		huh.NewInput().
			Title("Deadline").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.deadline).
			Validate(ui.ValidateDate),
	}
	if edit {
		fields = append(fields,
			huh.NewSelect[model.ProjectStatus]().
				Title("Status").
				Options(
					huh.NewOption("Active", model.ProjectStatusActive),
					huh.NewOption("Someday", model.ProjectStatusSomeday),
					huh.NewOption("Completed", model.ProjectStatusCompleted),
				).
				Value(&m.fb.status),
		)
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	title := "New Project"
	if m.editingID != "" {
		title = fmt.Sprintf("Edit Project %q", m.fb.name)
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	return lipgloss.NewStyle().Padding(1, 2).Render(titleStyle.Render(title) + "\n" + m.form.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
