package app

import (
	"fmt"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/view"
)

func (m Model) findTask(id string) (model.Task, bool) {
	for _, t := range m.snap.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m Model) findProject(id string) (model.Project, bool) {
	for _, p := range m.snap.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// projectInput copies the editable fields of p.
func projectInput(p model.Project) state.ProjectInput {
	in := state.ProjectInput{
		Name:     p.Name,
		Emoji:    p.Emoji,
		Notes:    p.Notes,
		Deadline: p.Deadline,
	}
	if p.AreaID != nil {
		in.AreaID = *p.AreaID
	}
	return in
}

func tagIDs(snap model.Snapshot, taskID string) []string {
	tags := state.TagsOf(snap, taskID)
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}

// siblingProjects returns the IDs of the projects sharing a sidebar group
// with id.
func siblingProjects(snap model.Snapshot, id string) []string {
	for _, g := range view.Sidebar(snap.Areas, snap.Projects) {
		ids := make([]string, len(g.Projects))
		found := false
		for i, p := range g.Projects {
			ids[i] = p.ID
			found = found || p.ID == id
		}
		if found {
			return ids
		}
	}
	return nil
}

// sortedAreas returns area IDs in sidebar order.
func sortedAreas(snap model.Snapshot) []string {
	var ids []string
	for _, g := range view.Sidebar(snap.Areas, nil) {
		if g.Area != nil {
			ids = append(ids, g.Area.ID)
		}
	}
	return ids
}

// targetLabel describes a drop target for the status bar.
func (m Model) targetLabel(t dnd.Target) string {
	switch t.Kind {
	case dnd.TargetInbox:
		return "Inbox"
	case dnd.TargetBucket:
		return t.Bucket.Label()
	case dnd.TargetProject:
		if p, ok := m.findProject(t.ProjectID); ok {
			return p.Name
		}
	case dnd.TargetHeading:
		for _, h := range m.snap.Headings {
			if h.ID == t.HeadingID {
				return h.Name
			}
		}
	}
	return string(t.Kind)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.gesture.Active() {
		if t, ok := m.gesture.Target(); ok {
			return fmt.Sprintf("drop on %s | space drop | J/K back to list | esc cancel", m.targetLabel(t))
		}
		return "J/K move | t/w/W/a/S or 1-8 target | space drop | esc cancel"
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewSearch:
		return "↑/↓ select | enter jump | esc close"
	case ViewDetail:
		return "esc back | e edit | x complete | m move | E emoji | j/k scroll"
	case ViewTaskForm, ViewProjectForm, ViewPrompt:
		return "enter submit | esc cancel"
	case ViewTags:
		return "n new | e edit | d delete | esc back"
	case ViewEmoji:
		return "enter pick | tab group | esc close"
	case ViewMoveTo:
		return "enter move | esc cancel"
	}

	if m.sidebar.Focused() {
		return "enter open | J/K reorder | e edit | D delete | N project | A area | tab list"
	}
	if m.taskList.Current().Kind == model.ViewKindProject {
		return "n new | H heading | s sort | c completed | space grab | R edit | ? help"
	}
	return "q quit | ? help | n new | x done | space grab | m move | / search"
}
