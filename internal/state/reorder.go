package state

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/store"
	"github.com/nhle/gtd/internal/view"
)

// ApplyDrop carries out a finished drag, whether it came from the mouse or
// the keyboard grab mode.
func (m *Manager) ApplyDrop(ctx context.Context, drop dnd.Drop) error {
	t := drop.Target
	switch t.Kind {
	case dnd.TargetReorder:
		return m.ReorderTasks(ctx, t.List, t.Order, drop.TaskID, t.Index)
	case dnd.TargetBucket:
		return m.MoveTaskToBucket(ctx, drop.TaskID, t.Bucket)
	case dnd.TargetProject:
		return m.MoveTaskToProject(ctx, drop.TaskID, t.ProjectID)
	case dnd.TargetHeading:
		return m.MoveTaskToHeading(ctx, drop.TaskID, t.HeadingID)
	case dnd.TargetInbox:
		return m.MoveTaskToInbox(ctx, drop.TaskID)
	}
	return fmt.Errorf("unknown drop target %q: %w", t.Kind, ErrInvalid)
}

// ReorderTasks moves taskID to index of a displayed list. order is the
// list's arrangement as shown: its task IDs plus the section dividers of
// view.Sections. A task that lands in another section joins it, taking the
// heading or the Today/evening schedule of that section. Only the tasks
// between the old and new index get new positions, and the resulting order
// is remembered for the list. Reordering a project view switches it to
// manual sorting.
func (m *Manager) ReorderTasks(ctx context.Context, list model.ViewSelector, order []string, taskID string, index int) error {
	return m.mutate(ctx, "reorder tasks", func(d *model.Snapshot) ([]string, error) {
		from := slices.Index(order, taskID)
		if from < 0 || view.IsDivider(taskID) {
			return nil, fmt.Errorf("task %s is not in the list: %w", taskID, ErrInvalid)
		}
		if index < 0 || index >= len(order) {
			return nil, fmt.Errorf("index %d out of range: %w", index, ErrInvalid)
		}
		ids, before := view.Sections(order)
		rows := make(map[string]int, len(ids))
		for _, id := range ids {
			i := findTask(d, id)
			if i < 0 {
				return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
			}
			rows[id] = i
		}
		if from == index {
			return nil, nil
		}

		next, after := view.Sections(dnd.Move(order, from, index))
		now := m.clock()
		if section := after[taskID]; section != before[taskID] {
			t := &d.Tasks[rows[taskID]]
			if err := enterSection(d, t, list, section); err != nil {
				return nil, err
			}
			t.UpdatedAt = now
		}

		if i, j := slices.Index(ids, taskID), slices.Index(next, taskID); i != j {
			spreadTaskPositions(d)
			_, positions := reorder(ids, i, j, func(id string) int {
				return d.Tasks[rows[id]].Position
			})
			for id, pos := range positions {
				t := &d.Tasks[rows[id]]
				t.Position = pos
				t.UpdatedAt = now
			}
		}

		if d.Preferences.ManualOrder == nil {
			d.Preferences.ManualOrder = make(map[string][]string)
		}
		d.Preferences.ManualOrder[list.Key()] = next
		if list.Kind == model.ViewKindProject {
			delete(d.Preferences.ProjectSort, list.ProjectID)
		}
		return []string{store.SlotTasks, store.SlotPreferences}, nil
	})
}

// enterSection files t under the section of list that divider opens.
func enterSection(d *model.Snapshot, t *model.Task, list model.ViewSelector, divider string) error {
	switch {
	case list.Kind == model.ViewKindProject && divider == "":
		t.HeadingID = nil
		return nil
	case list.Kind == model.ViewKindProject:
		if headingID, ok := view.DividerHeading(divider); ok {
			return placeUnderHeading(d, t, headingID)
		}
	case list == model.TodayView && divider == "":
		return applySchedule(t, model.ScheduleToday)
	case list == model.TodayView && divider == view.EveningDivider:
		return applySchedule(t, model.ScheduleEvening)
	}
	return fmt.Errorf("section %q is not part of %s: %w", divider, list.Key(), ErrInvalid)
}

// spreadTaskPositions renumbers every task when two share a position. The
// new numbers keep the position-then-ID order lists fall back to.
func spreadTaskPositions(d *model.Snapshot) {
	seen := make(map[int]bool, len(d.Tasks))
	tied := false
	for _, t := range d.Tasks {
		if seen[t.Position] {
			tied = true
			break
		}
		seen[t.Position] = true
	}
	if !tied {
		return
	}
	byRank := make([]int, len(d.Tasks))
	for i := range byRank {
		byRank[i] = i
	}
	sort.Slice(byRank, func(a, b int) bool {
		ta, tb := d.Tasks[byRank[a]], d.Tasks[byRank[b]]
		if ta.Position != tb.Position {
			return ta.Position < tb.Position
		}
		return ta.ID < tb.ID
	})
	for rank, i := range byRank {
		d.Tasks[i].Position = rank
	}
}

// ReorderProjects moves a project to index among the projects of its
// sidebar group.
func (m *Manager) ReorderProjects(ctx context.Context, id string, index int) error {
	return m.mutate(ctx, "reorder projects", func(d *model.Snapshot) ([]string, error) {
		var siblings []string
		for _, g := range view.Sidebar(d.Areas, d.Projects) {
			ids := make([]string, len(g.Projects))
			for i, p := range g.Projects {
				ids[i] = p.ID
			}
			if slices.Contains(ids, id) {
				siblings = ids
				break
			}
		}
		if siblings == nil {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		positions, err := reorderSiblings(siblings, id, index, func(sid string) int {
			return d.Projects[findProject(d, sid)].Position
		})
		if err != nil || len(positions) == 0 {
			return nil, err
		}
		now := m.clock()
		for sid, pos := range positions {
			p := &d.Projects[findProject(d, sid)]
			p.Position = pos
			p.UpdatedAt = now
		}
		return []string{store.SlotProjects}, nil
	})
}

// ReorderAreas moves an area to index in the sidebar.
func (m *Manager) ReorderAreas(ctx context.Context, id string, index int) error {
	return m.mutate(ctx, "reorder areas", func(d *model.Snapshot) ([]string, error) {
		sorted := slices.Clone(d.Areas)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Position != sorted[j].Position {
				return sorted[i].Position < sorted[j].Position
			}
			return sorted[i].ID < sorted[j].ID
		})
		siblings := make([]string, len(sorted))
		for i, a := range sorted {
			siblings[i] = a.ID
		}
		if !slices.Contains(siblings, id) {
			return nil, fmt.Errorf("area %s: %w", id, ErrNotFound)
		}
		positions, err := reorderSiblings(siblings, id, index, func(sid string) int {
			return d.Areas[findArea(d, sid)].Position
		})
		if err != nil || len(positions) == 0 {
			return nil, err
		}
		now := m.clock()
		for sid, pos := range positions {
			a := &d.Areas[findArea(d, sid)]
			a.Position = pos
			a.UpdatedAt = now
		}
		return []string{store.SlotAreas}, nil
	})
}

// ReorderHeadings moves a heading to index within its project.
func (m *Manager) ReorderHeadings(ctx context.Context, id string, index int) error {
	return m.mutate(ctx, "reorder headings", func(d *model.Snapshot) ([]string, error) {
		i := findHeading(d, id)
		if i < 0 {
			return nil, fmt.Errorf("heading %s: %w", id, ErrNotFound)
		}
		var siblings []string
		for _, h := range view.ProjectHeadings(d.Headings, d.Headings[i].ProjectID) {
			siblings = append(siblings, h.ID)
		}
		positions, err := reorderSiblings(siblings, id, index, func(sid string) int {
			return d.Headings[findHeading(d, sid)].Position
		})
		if err != nil || len(positions) == 0 {
			return nil, err
		}
		now := m.clock()
		for sid, pos := range positions {
			h := &d.Headings[findHeading(d, sid)]
			h.Position = pos
			h.UpdatedAt = now
		}
		return []string{store.SlotHeadings}, nil
	})
}

// reorderSiblings moves id to index of the ordered siblings and returns
// the positions that change. An empty result means nothing moved. Siblings
// sharing a position are renumbered in their displayed order.
func reorderSiblings(siblings []string, id string, index int, positionOf func(id string) int) (map[string]int, error) {
	from := slices.Index(siblings, id)
	if index < 0 || index >= len(siblings) {
		return nil, fmt.Errorf("index %d out of range: %w", index, ErrInvalid)
	}
	if from == index {
		return nil, nil
	}
	if !distinct(siblings, positionOf) {
		positions := make(map[string]int, len(siblings))
		for i, sid := range dnd.Move(siblings, from, index) {
			positions[sid] = i
		}
		return positions, nil
	}
	_, positions := reorder(siblings, from, index, positionOf)
	return positions, nil
}

// reorder moves ids[from] to index to. It returns the new order and the
// new position of every item in the affected range. The range reuses the
// positions its items already held, ascending, so items outside it keep
// theirs. Positions must be distinct.
func reorder(ids []string, from, to int, positionOf func(id string) int) ([]string, map[string]int) {
	next := dnd.Move(ids, from, to)
	lo, hi := min(from, to), max(from, to)

	held := make([]int, 0, hi-lo+1)
	for _, id := range ids[lo : hi+1] {
		held = append(held, positionOf(id))
	}
	sort.Ints(held)

	positions := make(map[string]int, len(held))
	for i, id := range next[lo : hi+1] {
		positions[id] = held[i]
	}
	return next, positions
}

func distinct(ids []string, positionOf func(id string) int) bool {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		p := positionOf(id)
		if seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
