package tasklist

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/keys"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/view"
)

// titleLines is the height of the view title drawn above the list.
const titleLines = 2

// SelectedTaskMsg is sent when a user opens a task to view details.
type SelectedTaskMsg struct {
	TaskID string
}

// Model is the main task list of the active view.
type Model struct {
	list       list.Model
	keys       *keys.KeyMap
	state      *rowState
	current    model.ViewSelector
	title      string
	status     string
	base       []list.Item
	order      []string
	rowOf      map[string]list.Item
	showClosed bool
	width      int
	height     int
}

// New creates a new task list model.
func New(k *keys.KeyMap, width, height int) Model {
	st := &rowState{now: time.Now()}
	l := list.New([]list.Item{}, ItemDelegate{state: st}, width, max(height-titleLines, 0))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	return Model{
		list:       l,
		keys:       k,
		state:      st,
		showClosed: true,
		width:      width,
		height:     height,
	}
}

// SetShowClosed sets whether a project's completed tasks are listed. It
// takes effect on the next SetView.
func (m *Model) SetShowClosed(show bool) {
	m.showClosed = show
}

// ShowClosed reports whether completed project tasks are listed.
func (m Model) ShowClosed() bool {
	return m.showClosed
}

// SetView rebuilds the rows for sel from snap. The cursor stays on the
// same task when it is still listed.
func (m *Model) SetView(sel model.ViewSelector, snap model.Snapshot, now time.Time) {
	selected := m.SelectedID()
	if sel != m.current {
		selected = ""
	}
	m.current = sel
	m.state.now = now
	m.state.project = sel.Kind == model.ViewKindProject

	projects := make(map[string]model.Project, len(snap.Projects))
	for _, p := range snap.Projects {
		projects[p.ID] = p
	}
	item := func(t model.Task) TaskItem {
		it := TaskItem{Task: t, Tags: state.TagsOf(snap, t.ID)}
		if t.ProjectID != nil {
			if p, ok := projects[*t.ProjectID]; ok {
				it.Project = p.Name
			}
		}
		return it
	}

	res := view.Filter(snap.Tasks, sel, snap.Preferences)
	var rows []list.Item
	var order []string

	switch sel.Kind {
	case model.ViewKindProject:
		p := projects[sel.ProjectID]
		m.title = p.DisplayEmoji() + " " + p.Name
		m.status = snap.Preferences.SortFor(sel.ProjectID).Label()
		for _, g := range view.GroupByHeading(res.Tasks, snap.Headings, sel.ProjectID) {
			if g.Heading != nil {
				rows = append(rows, HeadingItem{Heading: *g.Heading})
				order = append(order, view.HeadingDivider(g.Heading.ID))
			}
			for _, t := range g.Tasks {
				rows = append(rows, item(t))
				order = append(order, t.ID)
			}
		}
		if n := len(res.Completed); n > 0 {
			rows = append(rows, SectionItem{Label: fmt.Sprintf("Completed (%d)", n)})
			if m.showClosed {
				for _, t := range res.Completed {
					rows = append(rows, item(t))
				}
			}
		}

	default:
		m.title = sel.Title()
		m.status = ""
		evening := false
		for _, t := range res.Tasks {
			if t.Schedule == model.ScheduleEvening && !evening && sel == model.TodayView {
				evening = true
				rows = append(rows, SectionItem{Label: model.ScheduleEvening.Label()})
				order = append(order, view.EveningDivider)
			}
			rows = append(rows, item(t))
			if sel.Kind != model.ViewKindLogbook {
				order = append(order, t.ID)
			}
		}
	}

	// The arranged rows lead the list, one per entry of order.
	m.base = rows
	m.order = order
	m.rowOf = make(map[string]list.Item, len(order))
	for i, id := range order {
		m.rowOf[id] = rows[i]
	}
	m.list.SetItems(rows)
	if selected != "" {
		m.Select(selected)
	} else {
		m.list.Select(m.firstTask())
	}
}

// Current returns the view being listed.
func (m Model) Current() model.ViewSelector {
	return m.current
}

// Title returns the heading shown above the list.
func (m Model) Title() string {
	return m.title
}

// Order returns the arrangement of the reorderable rows as displayed: task
// IDs plus the section dividers of view.Sections.
func (m Model) Order() []string {
	return slices.Clone(m.order)
}

// SelectedID returns the ID of the row under the cursor.
func (m Model) SelectedID() string {
	switch it := m.list.SelectedItem().(type) {
	case TaskItem:
		return it.Task.ID
	case HeadingItem:
		return it.Heading.ID
	}
	return ""
}

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(TaskItem)
	return it.Task, ok
}

// SelectedHeading returns the heading under the cursor.
func (m Model) SelectedHeading() (model.Heading, bool) {
	it, ok := m.list.SelectedItem().(HeadingItem)
	return it.Heading, ok
}

// Select moves the cursor to the row with the given task or heading ID.
// It reports false when no such row is listed.
func (m *Model) Select(id string) bool {
	for i, it := range m.list.Items() {
		switch it := it.(type) {
		case TaskItem:
			if it.Task.ID == id {
				m.list.Select(i)
				return true
			}
		case HeadingItem:
			if it.Heading.ID == id {
				m.list.Select(i)
				return true
			}
		}
	}
	return false
}

// SetHighlight flashes the row of the given task. Empty clears it.
func (m *Model) SetHighlight(id string) {
	m.state.highlight = id
}

// Highlight returns the flashing task ID.
func (m Model) Highlight() string {
	return m.state.highlight
}

// ShowGrab marks id as grabbed and lays the reorderable rows out in the
// preview order.
func (m *Model) ShowGrab(id string, preview []string) {
	m.state.grabbed = id
	m.list.SetItems(m.arrange(preview))
	m.Select(id)
}

// ClearGrab restores the rows to their stored order.
func (m *Model) ClearGrab() {
	id := m.state.grabbed
	m.state.grabbed = ""
	m.list.SetItems(m.base)
	if id != "" {
		m.Select(id)
	}
}

// arrange lays the reorderable rows out in the given arrangement. Section
// rows travel with their dividers, so a task moved past one is shown in
// the section it would join.
func (m Model) arrange(order []string) []list.Item {
	rows := make([]list.Item, 0, len(m.base))
	for _, id := range order {
		if it, ok := m.rowOf[id]; ok {
			rows = append(rows, it)
		}
	}
	return append(rows, m.base[len(m.order):]...)
}

// ItemAt returns the row drawn at line y of this component, counting from
// its top edge, and the row's index.
func (m Model) ItemAt(y int) (list.Item, int, bool) {
	row := y - titleLines
	if row < 0 || row >= m.list.Paginator.PerPage {
		return nil, 0, false
	}
	i := m.list.Paginator.Page*m.list.Paginator.PerPage + row
	items := m.list.Items()
	if i >= len(items) {
		return nil, 0, false
	}
	return items[i], i, true
}

// SlotIndex returns the arrangement index of row i, or -1 for a row
// outside the arrangement.
func (m Model) SlotIndex(i int) int {
	if i < 0 || i >= len(m.order) {
		return -1
	}
	return i
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Open):
			t, ok := m.SelectedTask()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return SelectedTaskMsg{TaskID: t.ID}
			}
		}
	}

	// Delegate to list model for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the title and the task list.
func (m Model) View() string {
	title := m.title
	if m.status != "" {
		title += theme.DimmedStyle.Render("  · " + m.status)
	}
	header := theme.TitleStyle.Render(title)

	if len(m.list.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.renderEmptyState())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
}

// renderEmptyState shows guidance text when the view has no tasks.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(max(m.height-titleLines, 1)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	switch m.current.Kind {
	case model.ViewKindInbox:
		return style.Render("Inbox zero.\n\nPress n to capture a task.")
	case model.ViewKindLogbook:
		return style.Render("Nothing completed yet.")
	}
	return style.Render("No tasks here.\n\nPress n to add one.")
}

// firstTask returns the index of the first task row, or 0.
func (m Model) firstTask() int {
	for i, it := range m.list.Items() {
		if _, ok := it.(TaskItem); ok {
			return i
		}
	}
	return 0
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-titleLines, 0))
}
