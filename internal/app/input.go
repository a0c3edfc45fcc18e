package app

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/keys"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/ui/detail"
	"github.com/nhle/gtd/internal/ui/prompt"
	"github.com/nhle/gtd/internal/ui/sidebar"
	"github.com/nhle/gtd/internal/view"
)

// handleListKey handles keys while the sidebar and list are showing.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.open(ViewHelp)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.open(ViewSearch)
		return m, m.spotlight.Open(m.snap)

	case key.Matches(msg, m.keys.Tags):
		m.open(ViewTags)
		return m, m.tagView.Open()

	case key.Matches(msg, m.keys.Focus):
		m.sidebar.SetFocused(!m.sidebar.Focused())
		return m, nil

	case key.Matches(msg, m.keys.NewTask):
		headingID := ""
		if h, ok := m.taskList.SelectedHeading(); ok {
			headingID = h.ID
		} else if t, ok := m.taskList.SelectedTask(); ok && t.HeadingID != nil {
			headingID = *t.HeadingID
		}
		m.open(ViewTaskForm)
		return m, m.taskForm.StartCreate(m.taskList.Current(), headingID)

	case key.Matches(msg, m.keys.NewProject):
		m.open(ViewProjectForm)
		return m, m.projectForm.StartCreate(m.contextArea())

	case key.Matches(msg, m.keys.NewArea):
		m.open(ViewPrompt)
		return m, m.prompt.StartInput(prompt.Purpose{Action: actionNewArea}, "New Area", "Area name", "")

	case key.Matches(msg, m.keys.NewHeading):
		v := m.taskList.Current()
		if v.Kind != model.ViewKindProject {
			return m, nil
		}
		m.open(ViewPrompt)
		return m, m.prompt.StartInput(prompt.Purpose{Action: actionNewHeading, ID: v.ProjectID}, "New Heading", "Heading name", "")

	case key.Matches(msg, m.keys.ToggleClosed):
		m.taskList.SetShowClosed(!m.taskList.ShowClosed())
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		if v := m.taskList.Current(); v.Kind == model.ViewKindProject {
			return m, m.cycleSort(v.ProjectID)
		}
		return m, nil
	}

	for i, b := range m.keys.Views() {
		if key.Matches(msg, b) {
			return m, m.navigateByNumber(i)
		}
	}

	if m.sidebar.Focused() {
		return m.handleSidebarKey(msg)
	}
	return m.handleTaskKey(msg)
}

// navigateByNumber opens the i-th fixed view, or the first project for
// the last number key.
func (m Model) navigateByNumber(i int) tea.Cmd {
	if v, ok := viewForNumber(i); ok {
		return m.navigate(v)
	}
	if v, ok := m.sidebar.FirstProject(); ok {
		return m.navigate(v)
	}
	return nil
}

func viewForNumber(i int) (model.ViewSelector, bool) {
	fixed := []model.ViewSelector{
		model.InboxView,
		model.TodayView,
		model.BucketView(model.ScheduleThisWeek),
		model.BucketView(model.ScheduleNextWeek),
		model.BucketView(model.ScheduleAnytime),
		model.BucketView(model.ScheduleSomeday),
		model.LogbookView,
	}
	if i < 0 || i >= len(fixed) {
		return model.ViewSelector{}, false
	}
	return fixed[i], true
}

// contextArea is the area a new project should join: the area under the
// sidebar cursor or the area of the open project.
func (m Model) contextArea() string {
	if m.sidebar.Focused() {
		if e, ok := m.sidebar.Selected(); ok && e.Kind == sidebar.EntryArea {
			return e.Area.ID
		}
	}
	if v := m.taskList.Current(); v.Kind == model.ViewKindProject {
		if p, ok := m.findProject(v.ProjectID); ok {
			if a := view.AreaOf(p, m.snap.Areas); a != nil {
				return a.ID
			}
		}
	}
	return ""
}

// handleTaskKey handles keys aimed at the row under the list cursor.
func (m Model) handleTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if h, ok := m.taskList.SelectedHeading(); ok {
		switch {
		case key.Matches(msg, m.keys.Edit):
			m.open(ViewPrompt)
			return m, m.prompt.StartInput(prompt.Purpose{Action: actionRenameHeading, ID: h.ID}, "Rename Heading", "Heading name", h.Name)
		case key.Matches(msg, m.keys.GrabDown):
			return m, m.moveHeading(h, 1)
		case key.Matches(msg, m.keys.GrabUp):
			return m, m.moveHeading(h, -1)
		}
	}

	if key.Matches(msg, m.keys.EditProject) || key.Matches(msg, m.keys.DeleteProject) {
		v := m.taskList.Current()
		if v.Kind != model.ViewKindProject {
			return m, nil
		}
		return m.projectKey(msg, v.ProjectID)
	}

	t, ok := m.taskList.SelectedTask()
	if !ok {
		return m.updateActiveView(msg)
	}

	if a, ok := m.actionFor(msg); ok {
		return m.taskAction(a, t.ID)
	}

	switch {
	case key.Matches(msg, m.keys.Grab):
		return m.beginGrab(t.ID)
	case key.Matches(msg, m.keys.GrabDown):
		return m, m.nudgeTask(t.ID, 1)
	case key.Matches(msg, m.keys.GrabUp):
		return m, m.nudgeTask(t.ID, -1)
	}
	if b, ok := m.bucketFor(msg); ok {
		return m, m.setBucket(t.ID, b)
	}

	return m.updateActiveView(msg)
}

// actionFor maps list keys onto inspector actions.
func (m Model) actionFor(msg tea.KeyMsg) (detail.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		return detail.ActionEdit, true
	case key.Matches(msg, m.keys.Complete):
		return detail.ActionComplete, true
	case key.Matches(msg, m.keys.Cancel):
		return detail.ActionCancel, true
	case key.Matches(msg, m.keys.Delete):
		return detail.ActionDelete, true
	case key.Matches(msg, m.keys.Emoji):
		return detail.ActionEmoji, true
	case key.Matches(msg, m.keys.MoveTo):
		return detail.ActionMove, true
	case key.Matches(msg, m.keys.Promote):
		return detail.ActionPromote, true
	}
	return "", false
}

// bucketFor maps the schedule keys onto buckets.
func (m Model) bucketFor(msg tea.KeyMsg) (model.Schedule, bool) {
	switch {
	case key.Matches(msg, m.keys.ScheduleToday):
		return model.ScheduleToday, true
	case key.Matches(msg, m.keys.ScheduleThisWeek):
		return model.ScheduleThisWeek, true
	case key.Matches(msg, m.keys.ScheduleNextWeek):
		return model.ScheduleNextWeek, true
	case key.Matches(msg, m.keys.ScheduleAnytime):
		return model.ScheduleAnytime, true
	case key.Matches(msg, m.keys.ScheduleSomeday):
		return model.ScheduleSomeday, true
	}
	return "", false
}

// nudgeTask moves a task one row within the displayed list.
func (m Model) nudgeTask(id string, delta int) tea.Cmd {
	order := m.taskList.Order()
	from := slices.Index(order, id)
	to := from + delta
	if from < 0 || to < 0 || to >= len(order) {
		return nil
	}
	list := m.taskList.Current()
	return m.run("reorder tasks", func(ctx context.Context, s *state.Manager) error {
		return s.ReorderTasks(ctx, list, order, id, to)
	})
}

func (m Model) moveHeading(h model.Heading, delta int) tea.Cmd {
	var ids []string
	for _, sib := range view.ProjectHeadings(m.snap.Headings, h.ProjectID) {
		ids = append(ids, sib.ID)
	}
	to := slices.Index(ids, h.ID) + delta
	if to < 0 || to >= len(ids) {
		return nil
	}
	return m.run("reorder headings", func(ctx context.Context, s *state.Manager) error {
		return s.ReorderHeadings(ctx, h.ID, to)
	})
}

// handleSidebarKey handles keys while the sidebar has focus.
func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.sidebar.MoveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.sidebar.MoveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.sidebar.SetFocused(false)
		return m, nil
	}

	e, ok := m.sidebar.Selected()
	if !ok {
		return m, nil
	}

	if e.Kind == sidebar.EntryArea {
		return m.areaKey(msg, *e.Area)
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		m.sidebar.SetFocused(false)
		return m, m.navigate(e.View)
	}
	if e.View.Kind == model.ViewKindProject {
		return m.projectKey(msg, e.View.ProjectID)
	}
	return m, nil
}

// areaKey handles keys on an area row of the sidebar.
func (m Model) areaKey(msg tea.KeyMsg, a model.Area) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.EditProject), key.Matches(msg, m.keys.Open):
		m.open(ViewPrompt)
		return m, m.prompt.StartInput(prompt.Purpose{Action: actionRenameArea, ID: a.ID}, "Rename Area", "Area name", a.Name)
	case key.Matches(msg, m.keys.DeleteProject), key.Matches(msg, m.keys.Delete):
		m.open(ViewPrompt)
		return m, m.prompt.StartConfirm(prompt.Purpose{Action: actionDeleteArea, ID: a.ID},
			"Delete area "+a.Name+"?", "Its projects stay and move to no area.")
	case key.Matches(msg, m.keys.GrabDown), key.Matches(msg, m.keys.GrabUp):
		ids := sortedAreas(m.snap)
		to := slices.Index(ids, a.ID) + direction(msg, m.keys)
		if to < 0 || to >= len(ids) {
			return m, nil
		}
		return m, m.run("reorder areas", func(ctx context.Context, s *state.Manager) error {
			return s.ReorderAreas(ctx, a.ID, to)
		})
	}
	return m, nil
}

// projectKey handles project commands from the sidebar or a project view.
func (m Model) projectKey(msg tea.KeyMsg, id string) (tea.Model, tea.Cmd) {
	p, ok := m.findProject(id)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.EditProject):
		m.open(ViewProjectForm)
		return m, m.projectForm.StartEdit(p)
	case key.Matches(msg, m.keys.DeleteProject), key.Matches(msg, m.keys.Delete):
		m.open(ViewPrompt)
		return m, m.prompt.StartConfirm(prompt.Purpose{Action: actionDeleteProject, ID: id},
			"Delete project "+p.Name+"?", "Its tasks and headings are deleted too.")
	case key.Matches(msg, m.keys.Emoji):
		return m.pickEmoji(emojiTarget{project: true, id: id})
	case key.Matches(msg, m.keys.CycleSort):
		return m, m.cycleSort(id)
	case key.Matches(msg, m.keys.GrabDown), key.Matches(msg, m.keys.GrabUp):
		ids := siblingProjects(m.snap, id)
		to := slices.Index(ids, id) + direction(msg, m.keys)
		if to < 0 || to >= len(ids) {
			return m, nil
		}
		return m, m.run("reorder projects", func(ctx context.Context, s *state.Manager) error {
			return s.ReorderProjects(ctx, id, to)
		})
	}
	return m, nil
}

func direction(msg tea.KeyMsg, k *keys.KeyMap) int {
	if key.Matches(msg, k.GrabUp) {
		return -1
	}
	return 1
}

// beginGrab starts a keyboard gesture on a task.
func (m Model) beginGrab(id string) (tea.Model, tea.Cmd) {
	if !m.gesture.Begin(dnd.SourceKeyboard, m.taskList.Current(), m.taskList.Order(), id) {
		return m, nil
	}
	m.taskList.ShowGrab(id, m.gesture.Preview())
	return m, nil
}
