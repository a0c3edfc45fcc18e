package taskform

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/ui"
)

// TaskCreatedMsg is dispatched when a new task is submitted via the form.
// Where is the view the form was opened from.
type TaskCreatedMsg struct {
	Task  state.NewTask
	Where model.ViewSelector
}

// TaskUpdatedMsg is dispatched when an existing task is edited via the
// form. Schedule, ProjectID and TagIDs are nil when left unchanged.
type TaskUpdatedMsg struct {
	ID        string
	Edit      state.TaskEdit
	Schedule  *model.Schedule
	ProjectID *string
	TagIDs    []string
}

// TaskFormCancelMsg is dispatched when the user cancels the form.
type TaskFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title     string
	notes     string
	schedule  model.Schedule
	scheduled string
	deadline  string
	projectID string
	tagIDs    []string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	original model.Task
	origTags []string
	where    model.ViewSelector
	heading  string
	projects []model.Project
	tags     []model.Tag
	width    int
	height   int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetOptions sets the available projects and tags for the form selectors.
func (m *Model) SetOptions(projects []model.Project, tags []model.Tag) {
	m.projects = projects
	m.tags = tags
}

// StartCreate initializes the form for a new task created from view
// where. headingID files the task under a heading of the project view.
func (m *Model) StartCreate(where model.ViewSelector, headingID string) tea.Cmd {
	m.editMode = false
	m.original = model.Task{}
	m.origTags = nil
	m.where = where
	m.heading = headingID
	*m.fb = formBindings{}
	if where.Kind == model.ViewKindProject {
		m.fb.projectID = where.ProjectID
	}
	m.form = m.buildCreateForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing task.
func (m *Model) StartEdit(t model.Task, tagIDs []string) tea.Cmd {
	m.editMode = true
	m.original = t
	m.origTags = slices.Clone(tagIDs)
	m.heading = ""
	*m.fb = formBindings{
		title:     t.Title,
		notes:     t.Notes,
		schedule:  t.Schedule,
		scheduled: ui.FormatDate(t.ScheduledDate),
		deadline:  ui.FormatDate(t.Deadline),
		tagIDs:    slices.Clone(tagIDs),
	}
	if t.ProjectID != nil {
		m.fb.projectID = *t.ProjectID
	}
	m.form = m.buildEditForm()
	return m.form.Init()
}

// Editing reports whether the form edits an existing task.
func (m Model) Editing() bool {
	return m.editMode
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return TaskFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New To-Do"
	if m.editMode {
		titleText = "Edit To-Do"
	} else if m.where.Kind != model.ViewKindLogbook {
		titleText += " in " + m.where.Title()
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildCreateForm() *huh.Form {
	fields := m.coreFields()
	fields = append(fields, m.dateFields()...)
	fields = append(fields, m.projectField())
	if tagField := m.tagField(); tagField != nil {
		fields = append(fields, tagField)
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
}

func (m *Model) buildEditForm() *huh.Form {
	fields := m.coreFields()
	fields = append(fields,
		huh.NewSelect[model.Schedule]().
			Title("When").
			Options(scheduleOptions()...).
			Value(&m.fb.schedule),
	)
	fields = append(fields, m.dateFields()...)
	fields = append(fields, m.projectField())
	if tagField := m.tagField(); tagField != nil {
		fields = append(fields, tagField)
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
}

func scheduleOptions() []huh.Option[model.Schedule] {
	schedules := []model.Schedule{
		model.ScheduleNone,
		model.ScheduleToday,
		model.ScheduleEvening,
		model.ScheduleThisWeek,
		model.ScheduleNextWeek,
		model.ScheduleAnytime,
		model.ScheduleSomeday,
	}
	opts := make([]huh.Option[model.Schedule], len(schedules))
	for i, s := range schedules {
		opts[i] = huh.NewOption(s.Label(), s)
	}
	return opts
}

func (m *Model) coreFields() []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("What needs to be done?").
			Value(&m.fb.title).
			Validate(ui.ValidateRequired("Title")),
		huh.NewText().
			Title("Notes").
			Placeholder("Optional notes...").
			Value(&m.fb.notes),
	}
}

func (m *Model) dateFields() []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Scheduled Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.scheduled).
			Validate(ui.ValidateDate),
		huh.NewInput().
			Title("Deadline").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.deadline).
			Validate(ui.ValidateDate),
	}
}

func (m *Model) projectField() huh.Field {
	opts := []huh.Option[string]{
		huh.NewOption("None", ""),
	}
	for _, p := range m.projects {
		if p.Status != model.ProjectStatusCompleted || p.ID == m.fb.projectID {
			opts = append(opts, huh.NewOption(p.DisplayEmoji()+" "+p.Name, p.ID))
		}
	}
	return huh.NewSelect[string]().
		Title("Project").
		Options(opts...).
		Value(&m.fb.projectID)
}

func (m *Model) tagField() huh.Field {
	if len(m.tags) == 0 {
		return nil
	}
	opts := make([]huh.Option[string], len(m.tags))
	for i, t := range m.tags {
		opts[i] = huh.NewOption(t.Name, t.ID)
	}
	return huh.NewMultiSelect[string]().
		Title("Tags").
		Options(opts...).
		Value(&m.fb.tagIDs)
}

func (m Model) handleSubmit() tea.Cmd {
	if m.editMode {
		msg := m.updatedMsg()
		return func() tea.Msg { return msg }
	}
	msg := m.createdMsg()
	return func() tea.Msg { return msg }
}

func (m Model) createdMsg() TaskCreatedMsg {
	scheduled, _ := ui.ParseDate(m.fb.scheduled)
	deadline, _ := ui.ParseDate(m.fb.deadline)
	in := state.NewTask{
		Title:         m.fb.title,
		Notes:         m.fb.notes,
		ProjectID:     m.fb.projectID,
		ScheduledDate: scheduled,
		Deadline:      deadline,
		TagIDs:        slices.Clone(m.fb.tagIDs),
	}
	if m.where.IsProject(m.fb.projectID) {
		in.HeadingID = m.heading
	}
	return TaskCreatedMsg{Task: in, Where: m.where}
}

func (m Model) updatedMsg() TaskUpdatedMsg {
	scheduled, _ := ui.ParseDate(m.fb.scheduled)
	deadline, _ := ui.ParseDate(m.fb.deadline)
	msg := TaskUpdatedMsg{
		ID: m.original.ID,
		Edit: state.TaskEdit{
			Title:         m.fb.title,
			Emoji:         m.original.Emoji,
			Notes:         m.fb.notes,
			ScheduledDate: scheduled,
			Deadline:      deadline,
		},
	}

	// A new date picks its own bucket; only an explicit bucket change with
	// an untouched date is applied on top.
	dateChanged := m.fb.scheduled != ui.FormatDate(m.original.ScheduledDate)
	if m.fb.schedule != m.original.Schedule && !dateChanged {
		s := m.fb.schedule
		msg.Schedule = &s
	}

	orig := ""
	if m.original.ProjectID != nil {
		orig = *m.original.ProjectID
	}
	if m.fb.projectID != orig {
		p := m.fb.projectID
		msg.ProjectID = &p
	}

	if !sameSet(m.fb.tagIDs, m.origTags) {
		msg.TagIDs = slices.Clone(m.fb.tagIDs)
		if msg.TagIDs == nil {
			msg.TagIDs = []string{}
		}
	}
	return msg
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
