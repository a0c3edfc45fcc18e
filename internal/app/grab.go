package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/gtd/internal/dnd"
)

// handleGrabKey drives a keyboard gesture. Row keys move the insertion
// point, schedule and number keys aim at a destination outside the list.
func (m Model) handleGrabKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.gesture.TaskID()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.gesture.Cancel()
		m.endGrab()
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		d, ok := m.gesture.Drop()
		m.endGrab()
		if !ok {
			return m, nil
		}
		return m, m.applyDrop(d)

	case key.Matches(msg, m.keys.GrabDown), key.Matches(msg, m.keys.Down):
		m.gesture.MoveBy(1)
	case key.Matches(msg, m.keys.GrabUp), key.Matches(msg, m.keys.Up):
		m.gesture.MoveBy(-1)

	default:
		if b, ok := m.bucketFor(msg); ok {
			m.gesture.HoverTarget(dnd.BucketTarget(b))
			break
		}
		for i, vb := range m.keys.Views() {
			if !key.Matches(msg, vb) {
				continue
			}
			v, ok := viewForNumber(i)
			if !ok {
				v, ok = m.sidebar.FirstProject()
			}
			if !ok {
				break
			}
			if t, ok := dnd.TargetForView(v); ok {
				m.gesture.HoverTarget(t)
			}
			break
		}
	}

	m.taskList.ShowGrab(id, m.gesture.Preview())
	return m, nil
}

// endGrab restores the list after a gesture.
func (m *Model) endGrab() {
	m.dragMoved = false
	m.sidebar.SetDropHover(nil)
	m.taskList.ClearGrab()
}
