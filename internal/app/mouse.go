package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/ui/sidebar"
	"github.com/nhle/gtd/internal/ui/tasklist"
)

// handleMouse turns mouse events into clicks, wheel scrolling and drags.
// A press on a task row starts a gesture; motion hovers rows, headings
// and sidebar entries; release drops.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := msg.Y - m.layout.ContentTop()
	inSidebar := msg.X < m.layout.SidebarWidth

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.taskList, _ = m.taskList.Update(tea.KeyMsg{Type: tea.KeyUp})
		return m, nil
	case tea.MouseButtonWheelDown:
		m.taskList, _ = m.taskList.Update(tea.KeyMsg{Type: tea.KeyDown})
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if inSidebar {
			e, ok := m.sidebar.HitTest(y)
			if !ok || e.Kind != sidebar.EntryView {
				return m, nil
			}
			return m, m.navigate(e.View)
		}
		m.sidebar.SetFocused(false)
		return m.pressList(y)

	case tea.MouseActionMotion:
		if !m.gesture.Active() || m.gesture.Source() != dnd.SourceMouse {
			return m, nil
		}
		m.dragMoved = true
		if inSidebar {
			m.hoverSidebar(y)
		} else {
			m.hoverList(y)
		}
		m.taskList.ShowGrab(m.gesture.TaskID(), m.gesture.Preview())
		return m, nil

	case tea.MouseActionRelease:
		if !m.gesture.Active() || m.gesture.Source() != dnd.SourceMouse {
			return m, nil
		}
		if !m.dragMoved {
			m.gesture.Cancel()
			m.endGrab()
			return m, nil
		}
		d, ok := m.gesture.Drop()
		m.endGrab()
		if !ok {
			return m, nil
		}
		return m, m.applyDrop(d)
	}
	return m, nil
}

// pressList selects the row under the pointer and, for a reorderable
// task, arms a drag.
func (m Model) pressList(y int) (tea.Model, tea.Cmd) {
	item, _, ok := m.taskList.ItemAt(y)
	if !ok {
		return m, nil
	}
	switch it := item.(type) {
	case tasklist.TaskItem:
		m.taskList.Select(it.Task.ID)
		m.gesture.Begin(dnd.SourceMouse, m.taskList.Current(), m.taskList.Order(), it.Task.ID)
		m.dragMoved = false
	case tasklist.HeadingItem:
		m.taskList.Select(it.Heading.ID)
	}
	return m, nil
}

// hoverList points the gesture at the row under the pointer: a task slot
// of the source list or a heading.
func (m *Model) hoverList(y int) {
	m.sidebar.SetDropHover(nil)
	item, row, ok := m.taskList.ItemAt(y)
	if !ok {
		return
	}
	if h, ok := item.(tasklist.HeadingItem); ok {
		m.gesture.HoverTarget(dnd.HeadingTarget(h.Heading.ProjectID, h.Heading.ID))
		return
	}
	if slot := m.taskList.SlotIndex(row); slot >= 0 {
		m.gesture.HoverIndex(slot)
	}
}

// hoverSidebar points the gesture at the sidebar entry under the pointer.
func (m *Model) hoverSidebar(y int) {
	e, ok := m.sidebar.HitTest(y)
	if !ok || e.Kind != sidebar.EntryView {
		m.sidebar.SetDropHover(nil)
		return
	}
	t, ok := dnd.TargetForView(e.View)
	if !ok {
		m.sidebar.SetDropHover(nil)
		return
	}
	v := e.View
	m.sidebar.SetDropHover(&v)
	m.gesture.HoverTarget(t)
}
