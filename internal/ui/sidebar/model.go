// Package sidebar renders the navigation column: the fixed views, then the
// project tree grouped by area.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/view"
)

// EntryKind distinguishes the kinds of sidebar rows.
type EntryKind int

const (
	// EntryView is a fixed view or a project; selecting it navigates.
	EntryView EntryKind = iota
	// EntryArea is an area label.
	EntryArea
	// EntrySpacer is a blank separator row.
	EntrySpacer
)

// Entry is one line of the sidebar.
type Entry struct {
	Kind  EntryKind
	View  model.ViewSelector
	Area  *model.Area
	Label string
	Icon  string
	Count int
}

// Selectable reports whether the cursor may rest on the entry.
func (e Entry) Selectable() bool {
	return e.Kind != EntrySpacer
}

var fixedViews = []struct {
	view model.ViewSelector
	icon string
}{
	{model.InboxView, "📥"},
	{model.TodayView, "⭐"},
	{model.BucketView(model.ScheduleThisWeek), "📅"},
	{model.BucketView(model.ScheduleNextWeek), "🗓"},
	{model.BucketView(model.ScheduleAnytime), "🗂"},
	{model.BucketView(model.ScheduleSomeday), "📦"},
	{model.LogbookView, "📓"},
}

// Model is the sidebar component.
type Model struct {
	entries []Entry
	cursor  int
	offset  int
	active  model.ViewSelector
	drop    *model.ViewSelector
	focused bool
	width   int
	height  int
}

// New creates an empty sidebar.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetData rebuilds the entries from a snapshot, keeping the cursor on the
// same entry when possible.
func (m *Model) SetData(snap model.Snapshot) {
	prev, hadPrev := m.Selected()

	counts := view.Counts(snap.Tasks)
	entries := make([]Entry, 0, len(fixedViews)+len(snap.Projects)+len(snap.Areas)+2)
	for _, f := range fixedViews {
		entries = append(entries, Entry{
			Kind:  EntryView,
			View:  f.view,
			Label: f.view.Title(),
			Icon:  f.icon,
			Count: counts[f.view.Key()],
		})
	}

	for _, g := range view.Sidebar(snap.Areas, snap.Projects) {
		entries = append(entries, Entry{Kind: EntrySpacer})
		if g.Area != nil {
			entries = append(entries, Entry{Kind: EntryArea, Area: g.Area, Label: g.Area.Name})
		}
		for _, p := range g.Projects {
			v := model.ProjectView(p.ID)
			entries = append(entries, Entry{
				Kind:  EntryView,
				View:  v,
				Label: p.Name,
				Icon:  p.DisplayEmoji(),
				Count: counts[v.Key()],
			})
		}
	}

	m.entries = entries
	m.cursor = min(m.cursor, len(entries)-1)
	if hadPrev {
		for i, e := range entries {
			if sameEntry(e, prev) {
				m.cursor = i
				break
			}
		}
	}
	m.scroll()
}

func sameEntry(a, b Entry) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == EntryArea {
		return a.Area.ID == b.Area.ID
	}
	return a.View == b.View
}

// Entries returns all rows in display order.
func (m Model) Entries() []Entry {
	return m.entries
}

// SetActive marks the view being shown and moves the cursor onto it.
func (m *Model) SetActive(v model.ViewSelector) {
	m.active = v
	for i, e := range m.entries {
		if e.Kind == EntryView && e.View == v {
			m.cursor = i
			break
		}
	}
	m.scroll()
}

// SetFocused sets whether keyboard navigation targets the sidebar.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// Focused reports whether the sidebar has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetDropHover marks v as the entry under a drag. Nil clears it.
func (m *Model) SetDropHover(v *model.ViewSelector) {
	m.drop = v
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[m.cursor], true
}

// MoveCursor moves the cursor by delta selectable rows.
func (m *Model) MoveCursor(delta int) {
	step := 1
	if delta < 0 {
		step = -1
	}
	for n := delta * step; n > 0; n-- {
		next := m.cursor + step
		for next >= 0 && next < len(m.entries) && !m.entries[next].Selectable() {
			next += step
		}
		if next < 0 || next >= len(m.entries) {
			break
		}
		m.cursor = next
	}
	m.scroll()
}

// FirstProject returns the first project in the tree.
func (m Model) FirstProject() (model.ViewSelector, bool) {
	for _, e := range m.entries {
		if e.Kind == EntryView && e.View.Kind == model.ViewKindProject {
			return e.View, true
		}
	}
	return model.ViewSelector{}, false
}

// HitTest returns the entry drawn at line y, counting from the top of the
// sidebar.
func (m Model) HitTest(y int) (Entry, bool) {
	i := y + m.offset
	if y < 0 || y >= m.height || i >= len(m.entries) {
		return Entry{}, false
	}
	e := m.entries[i]
	return e, e.Selectable()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	if m.height <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.offset = max(0, min(m.offset, len(m.entries)-m.height))
}

// View renders the sidebar.
func (m Model) View() string {
	end := len(m.entries)
	if m.height > 0 {
		end = min(end, m.offset+m.height)
	}

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderEntry(i))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(i int) string {
	e := m.entries[i]
	switch e.Kind {
	case EntrySpacer:
		return ""
	case EntryArea:
		line := theme.SidebarGroupStyle.Render(e.Label)
		if m.focused && i == m.cursor {
			line = theme.SelectedItemStyle.Render(e.Label)
		}
		return line
	}

	label := e.Icon + " " + e.Label
	if e.View.Kind == model.ViewKindProject {
		label = "  " + label
	}
	if e.Count > 0 {
		count := fmt.Sprint(e.Count)
		gap := m.width - lipgloss.Width(label) - len(count) - 2
		if gap > 0 {
			label += strings.Repeat(" ", gap) + theme.DimmedStyle.Render(count)
		}
	}

	switch {
	case m.drop != nil && *m.drop == e.View:
		return theme.DropTargetStyle.Render(label)
	case m.focused && i == m.cursor:
		return theme.SelectedItemStyle.Render(label)
	case e.View == m.active:
		return theme.SidebarActiveStyle.Render(label)
	}
	return label
}

// SetSize updates the sidebar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}
