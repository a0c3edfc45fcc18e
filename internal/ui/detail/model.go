package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/gtd/internal/keys"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/view"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// Action names a task command triggered from the inspector.
type Action string

const (
	ActionEdit     Action = "edit"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionDelete   Action = "delete"
	ActionEmoji    Action = "emoji"
	ActionMove     Action = "move"
	ActionPromote  Action = "promote"
)

// ActionMsg signals the parent to execute an action on the current task.
type ActionMsg struct {
	Action Action
	TaskID string
}

// Model is the task inspector.
type Model struct {
	task     *model.Task
	snap     model.Snapshot
	now      time.Time
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new inspector.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the inspector.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
		if m.task != nil {
			if a, ok := m.actionFor(msg); ok {
				out := ActionMsg{Action: a, TaskID: m.task.ID}
				return m, func() tea.Msg { return out }
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) actionFor(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Open):
		return ActionEdit, true
	case key.Matches(msg, m.keys.Complete):
		return ActionComplete, true
	case key.Matches(msg, m.keys.Cancel):
		return ActionCancel, true
	case key.Matches(msg, m.keys.Delete):
		return ActionDelete, true
	case key.Matches(msg, m.keys.Emoji):
		return ActionEmoji, true
	case key.Matches(msg, m.keys.MoveTo):
		return ActionMove, true
	case key.Matches(msg, m.keys.Promote):
		return ActionPromote, true
	}
	return "", false
}

// View renders the inspector.
func (m Model) View() string {
	if m.task == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No task selected")
	}
	return m.viewport.View()
}

// TaskID returns the inspected task, or "" when none is shown.
func (m Model) TaskID() string {
	if m.task == nil {
		return ""
	}
	return m.task.ID
}

// SetTask shows task id from snap. It reports false when the task no
// longer exists.
func (m *Model) SetTask(id string, snap model.Snapshot, now time.Time) bool {
	m.snap = snap
	m.now = now
	m.task = nil
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == id {
			t := snap.Tasks[i]
			m.task = &t
			break
		}
	}
	m.viewport.SetContent(m.renderContent())
	return m.task != nil
}

// Refresh re-renders the current task from snap, keeping the scroll
// position.
func (m *Model) Refresh(snap model.Snapshot, now time.Time) bool {
	if m.task == nil {
		return false
	}
	offset := m.viewport.YOffset
	ok := m.SetTask(m.task.ID, snap, now)
	m.viewport.SetYOffset(offset)
	return ok
}

func (m Model) renderContent() string {
	if m.task == nil {
		return ""
	}
	t := m.task

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	title := t.Title
	if t.Emoji != "" {
		title = t.Emoji + " " + title
	}
	sections = append(sections, titleStyle.Render(title))

	badges := []string{statusBadge(*t)}
	if t.Schedule != model.ScheduleNone {
		badges = append(badges, theme.ScheduleStyle(t.Schedule).Render(t.Schedule.Label()))
	}
	if t.IsOverdue(m.now) {
		badges = append(badges, theme.OverdueStyle.Render("overdue"))
	}
	sections = append(sections, strings.Join(badges, "  "), "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray).Width(11)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)
	row := func(label, value string) {
		sections = append(sections, metaStyle.Render(label)+" "+valStyle.Render(value))
	}

	row("Where:", m.where(*t))
	if t.ScheduledDate != nil {
		row("Scheduled:", fmt.Sprintf("%s (%s)", t.ScheduledDate.Format("Mon Jan 2"), view.RelativeDay(*t.ScheduledDate, m.now)))
	}
	if t.Deadline != nil {
		deadline := fmt.Sprintf("%s (%s)", t.Deadline.Format("Mon Jan 2"), view.RelativeDay(*t.Deadline, m.now))
		if t.IsOverdue(m.now) {
			deadline = theme.OverdueStyle.Render(deadline)
		}
		row("Deadline:", deadline)
	}
	if tags := state.TagsOf(m.snap, t.ID); len(tags) > 0 {
		chips := make([]string, len(tags))
		for i, tag := range tags {
			chips[i] = theme.TagStyle(tag.Color).Render(tag.Name)
		}
		sections = append(sections, metaStyle.Render("Tags:")+" "+strings.Join(chips, " "))
	}
	if t.CompletedAt != nil {
		row("Closed:", humanize.Time(*t.CompletedAt))
	}
	row("Created:", humanize.Time(t.CreatedAt))
	row("Updated:", humanize.Time(t.UpdatedAt))

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(min(m.width-4, 80), 0)))
	sections = append(sections, "", separator, "")

	notesHeader := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	sections = append(sections, notesHeader.Render("Notes"))

	notes := t.Notes
	if strings.TrimSpace(notes) == "" {
		notes = lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true).Render("No notes")
	} else {
		notes = lipgloss.NewStyle().Width(max(min(m.width-4, 80), 10)).Render(notes)
	}
	sections = append(sections, notes, "",
		theme.HelpStyle.Render("e edit · x complete · X cancel · E emoji · m move · p promote · d delete · esc back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func statusBadge(t model.Task) string {
	switch t.Status {
	case model.TaskStatusCompleted:
		return lipgloss.NewStyle().Foreground(theme.ColorGreen).Render("✓ Completed")
	case model.TaskStatusCancelled:
		return theme.DimmedStyle.Render("✗ Cancelled")
	case model.TaskStatusInbox:
		return lipgloss.NewStyle().Foreground(theme.ColorBlue).Render("Inbox")
	}
	return lipgloss.NewStyle().Foreground(theme.ColorWhite).Render("Open")
}

// where describes the task's home: its project and heading, or the view
// it is filed under.
func (m Model) where(t model.Task) string {
	if t.ProjectID == nil {
		return view.Home(t).Title()
	}
	where := "(missing project)"
	for _, p := range m.snap.Projects {
		if p.ID == *t.ProjectID {
			where = p.DisplayEmoji() + " " + p.Name
			break
		}
	}
	if t.HeadingID != nil {
		for _, h := range m.snap.Headings {
			if h.ID == *t.HeadingID {
				where += " › " + h.Name
				break
			}
		}
	}
	return where
}

// SetSize updates the inspector dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	m.viewport.SetContent(m.renderContent())
}
