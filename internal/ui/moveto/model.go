// Package moveto is the keyboard destination picker for a task: the inbox,
// a schedule bucket, a project or one of its headings.
package moveto

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/view"
)

// ChosenMsg carries the drop built from the picked destination.
type ChosenMsg struct {
	Drop dnd.Drop
}

// CancelMsg is emitted when the picker is dismissed.
type CancelMsg struct{}

// Destination is one row of the picker.
type Destination struct {
	Label  string
	Indent int
	Target dnd.Target
}

var (
	upKey    = key.NewBinding(key.WithKeys("up", "k"))
	downKey  = key.NewBinding(key.WithKeys("down", "j"))
	pickKey  = key.NewBinding(key.WithKeys("enter"))
	closeKey = key.NewBinding(key.WithKeys("esc", "q"))
)

// Model lists destinations for one task.
type Model struct {
	taskID string
	dests  []Destination
	cursor int
	offset int
	width  int
	height int
}

// New creates a new picker.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// Open lists the destinations for task t from snap.
func (m *Model) Open(t model.Task, snap model.Snapshot) {
	m.taskID = t.ID
	m.dests = Destinations(snap)
	m.cursor, m.offset = 0, 0
	for i, d := range m.dests {
		if current(t, d.Target) {
			m.cursor = i
			break
		}
	}
	m.scroll()
}

// Destinations returns the inbox, the buckets plus This Evening, then every
// open project with its headings, grouped by area.
func Destinations(snap model.Snapshot) []Destination {
	out := []Destination{{Label: "📥 Inbox", Target: dnd.InboxTarget()}}
	for _, b := range []model.Schedule{
		model.ScheduleToday, model.ScheduleEvening, model.ScheduleThisWeek,
		model.ScheduleNextWeek, model.ScheduleAnytime, model.ScheduleSomeday,
	} {
		out = append(out, Destination{Label: "◷ " + b.Label(), Target: dnd.BucketTarget(b)})
	}

	for _, g := range view.Sidebar(snap.Areas, snap.Projects) {
		indent := 0
		if g.Area != nil {
			out = append(out, Destination{Label: g.Area.Name, Target: dnd.Target{}})
			indent = 1
		}
		for _, p := range g.Projects {
			out = append(out, Destination{
				Label:  fmt.Sprintf("%s %s", p.DisplayEmoji(), p.Name),
				Indent: indent,
				Target: dnd.ProjectTarget(p.ID),
			})
			for _, h := range view.ProjectHeadings(snap.Headings, p.ID) {
				out = append(out, Destination{
					Label:  "≡ " + h.Name,
					Indent: indent + 1,
					Target: dnd.HeadingTarget(p.ID, h.ID),
				})
			}
		}
	}
	return out
}

func current(t model.Task, target dnd.Target) bool {
	switch target.Kind {
	case dnd.TargetHeading:
		return t.HeadingID != nil && *t.HeadingID == target.HeadingID
	case dnd.TargetProject:
		return t.HeadingID == nil && t.InProject(target.ProjectID)
	}
	return false
}

// selectable reports whether a row is a real destination; area rows are
// labels only.
func (d Destination) selectable() bool {
	return d.Target.Kind != ""
}

// Destinations returns the rows currently listed.
func (m Model) Destinations() []Destination {
	return m.dests
}

// Selected returns the row under the cursor.
func (m Model) Selected() (Destination, bool) {
	if m.cursor < 0 || m.cursor >= len(m.dests) {
		return Destination{}, false
	}
	return m.dests[m.cursor], true
}

// Update handles messages for the picker.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, closeKey):
		return m, func() tea.Msg { return CancelMsg{} }
	case key.Matches(km, upKey):
		m.move(-1)
	case key.Matches(km, downKey):
		m.move(1)
	case key.Matches(km, pickKey):
		d, ok := m.Selected()
		if !ok || !d.selectable() {
			return m, nil
		}
		out := ChosenMsg{Drop: dnd.Drop{TaskID: m.taskID, Target: d.Target}}
		return m, func() tea.Msg { return out }
	}
	return m, nil
}

func (m *Model) move(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.dests); i += delta {
		if m.dests[i].selectable() {
			m.cursor = i
			break
		}
	}
	m.scroll()
}

func (m Model) visible() int {
	return max(m.height-10, 5)
}

func (m *Model) scroll() {
	n := m.visible()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
}

// View renders the picker.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	lines := []string{titleStyle.Render("Move To")}

	end := min(m.offset+m.visible(), len(m.dests))
	for i := m.offset; i < end; i++ {
		d := m.dests[i]
		label := strings.Repeat("  ", d.Indent) + d.Label
		switch {
		case !d.selectable():
			lines = append(lines, theme.SidebarGroupStyle.Render(label))
		case i == m.cursor:
			lines = append(lines, theme.SelectedItemStyle.Render(label))
		default:
			lines = append(lines, theme.ListItemStyle.Render(label))
		}
	}
	lines = append(lines, "", theme.HelpStyle.Render("↑/↓ choose · enter move · esc cancel"))

	return lipgloss.NewStyle().
		Width(min(max(m.width-8, 30), 60)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the picker dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}
