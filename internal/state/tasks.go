package state

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/store"
	"github.com/nhle/gtd/internal/view"
)

// NewTask is the input for CreateTask. Zero fields take their defaults
// from the view the task is created in.
type NewTask struct {
	Title string
	Emoji string
	Notes string

	// ProjectID and HeadingID override the project implied by the view.
	ProjectID string
	HeadingID string

	ScheduledDate *time.Time
	Deadline      *time.Time
	TagIDs        []string
}

// TaskEdit carries every user-editable text and date field of a task.
// UpdateTask replaces all of them at once, as submitted by the edit form.
type TaskEdit struct {
	Title         string
	Emoji         string
	Notes         string
	ScheduledDate *time.Time
	Deadline      *time.Time
}

// CreateTask adds a task at the end of the collection. Created from a
// bucket view it is active and scheduled into that bucket; from a project
// view it is active, anytime and inside the project; anywhere else it
// lands in the inbox.
func (m *Manager) CreateTask(ctx context.Context, in NewTask, where model.ViewSelector) (model.Task, error) {
	var created model.Task
	err := m.mutate(ctx, "create task", func(d *model.Snapshot) ([]string, error) {
		title := strings.TrimSpace(in.Title)
		if title == "" {
			return nil, fmt.Errorf("task title is empty: %w", ErrInvalid)
		}

		now := m.clock()
		t := model.Task{
			ID:        m.newID(),
			Title:     title,
			Emoji:     strings.TrimSpace(in.Emoji),
			Notes:     in.Notes,
			Status:    model.TaskStatusInbox,
			Deadline:  day(in.Deadline),
			Position:  len(d.Tasks),
			CreatedAt: now,
			UpdatedAt: now,
		}

		switch where.Kind {
		case model.ViewKindBucket:
			t.Status = model.TaskStatusActive
			t.Schedule = where.Bucket
		case model.ViewKindProject:
			if findProject(d, where.ProjectID) < 0 {
				return nil, fmt.Errorf("project %s: %w", where.ProjectID, ErrNotFound)
			}
			t.Status = model.TaskStatusActive
			t.Schedule = model.ScheduleAnytime
			t.ProjectID = ptr(where.ProjectID)
		}

		if in.ProjectID != "" {
			if findProject(d, in.ProjectID) < 0 {
				return nil, fmt.Errorf("project %s: %w", in.ProjectID, ErrNotFound)
			}
			t.ProjectID = ptr(in.ProjectID)
			activate(&t)
		}
		if in.HeadingID != "" {
			if err := placeUnderHeading(d, &t, in.HeadingID); err != nil {
				return nil, err
			}
		}
		if in.ScheduledDate != nil {
			m.scheduleOn(&t, *in.ScheduledDate)
		}

		dirty := []string{store.SlotTasks}
		if len(in.TagIDs) > 0 {
			if err := setTags(d, t.ID, in.TagIDs, now); err != nil {
				return nil, err
			}
			dirty = append(dirty, store.SlotTaskTags)
		}

		d.Tasks = append(d.Tasks, t)
		created = t
		return dirty, nil
	})
	return created, err
}

// UpdateTask replaces the editable fields of a task. A changed scheduled
// date reschedules the task into the matching bucket.
func (m *Manager) UpdateTask(ctx context.Context, id string, edit TaskEdit) error {
	return m.updateTask(ctx, "update task", id, func(d *model.Snapshot, t *model.Task) error {
		title := strings.TrimSpace(edit.Title)
		if title == "" {
			return fmt.Errorf("task title is empty: %w", ErrInvalid)
		}
		t.Title = title
		t.Emoji = strings.TrimSpace(edit.Emoji)
		t.Notes = edit.Notes
		t.Deadline = day(edit.Deadline)
		switch {
		case edit.ScheduledDate == nil:
			t.ScheduledDate = nil
		case t.ScheduledDate == nil || !t.ScheduledDate.Equal(model.StartOfDay(*edit.ScheduledDate)):
			m.scheduleOn(t, *edit.ScheduledDate)
		}
		return nil
	})
}

// SetTaskTitle renames a task. Blank titles are rejected.
func (m *Manager) SetTaskTitle(ctx context.Context, id, title string) error {
	return m.updateTask(ctx, "set task title", id, func(d *model.Snapshot, t *model.Task) error {
		title = strings.TrimSpace(title)
		if title == "" {
			return fmt.Errorf("task title is empty: %w", ErrInvalid)
		}
		t.Title = title
		return nil
	})
}

// SetTaskNotes replaces a task's notes.
func (m *Manager) SetTaskNotes(ctx context.Context, id, notes string) error {
	return m.updateTask(ctx, "set task notes", id, func(d *model.Snapshot, t *model.Task) error {
		t.Notes = notes
		return nil
	})
}

// SetTaskEmoji sets or, with an empty string, clears a task's emoji.
func (m *Manager) SetTaskEmoji(ctx context.Context, id, emoji string) error {
	return m.updateTask(ctx, "set task emoji", id, func(d *model.Snapshot, t *model.Task) error {
		t.Emoji = strings.TrimSpace(emoji)
		return nil
	})
}

// SetSchedule puts a task into a bucket. The scheduled date is kept unless
// the task moves to someday or is unscheduled.
func (m *Manager) SetSchedule(ctx context.Context, id string, s model.Schedule) error {
	return m.updateTask(ctx, "set schedule", id, func(d *model.Snapshot, t *model.Task) error {
		return applySchedule(t, s)
	})
}

// SetScheduledDate pins a task to a calendar date and recomputes its
// bucket from it. A nil date only clears the date.
func (m *Manager) SetScheduledDate(ctx context.Context, id string, date *time.Time) error {
	return m.updateTask(ctx, "set scheduled date", id, func(d *model.Snapshot, t *model.Task) error {
		if date == nil {
			t.ScheduledDate = nil
			return nil
		}
		m.scheduleOn(t, *date)
		return nil
	})
}

// SetDeadline sets or, with nil, clears a task's deadline.
func (m *Manager) SetDeadline(ctx context.Context, id string, deadline *time.Time) error {
	return m.updateTask(ctx, "set deadline", id, func(d *model.Snapshot, t *model.Task) error {
		t.Deadline = day(deadline)
		return nil
	})
}

// ToggleComplete completes an open task or reopens a closed one.
func (m *Manager) ToggleComplete(ctx context.Context, id string) error {
	return m.updateTask(ctx, "toggle complete", id, func(d *model.Snapshot, t *model.Task) error {
		if t.IsClosed() {
			reopen(t)
			return nil
		}
		t.Status = model.TaskStatusCompleted
		t.CompletedAt = ptr(m.clock())
		return nil
	})
}

// Cancel marks a task cancelled, or reopens it if it already is.
func (m *Manager) Cancel(ctx context.Context, id string) error {
	return m.updateTask(ctx, "cancel task", id, func(d *model.Snapshot, t *model.Task) error {
		if t.Status == model.TaskStatusCancelled {
			reopen(t)
			return nil
		}
		t.Status = model.TaskStatusCancelled
		t.CompletedAt = ptr(m.clock())
		return nil
	})
}

// DeleteTask removes a task along with its tag links and any manual
// ordering that mentions it.
func (m *Manager) DeleteTask(ctx context.Context, id string) error {
	return m.mutate(ctx, "delete task", func(d *model.Snapshot) ([]string, error) {
		i := findTask(d, id)
		if i < 0 {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		d.Tasks = slices.Delete(d.Tasks, i, i+1)
		return append([]string{store.SlotTasks}, forgetTasks(d, id)...), nil
	})
}

// MoveTaskToProject moves a task into a project, dropping its heading and
// keeping its schedule. An empty projectID takes the task out of any
// project.
func (m *Manager) MoveTaskToProject(ctx context.Context, id, projectID string) error {
	return m.updateTask(ctx, "move task to project", id, func(d *model.Snapshot, t *model.Task) error {
		t.HeadingID = nil
		if projectID == "" {
			t.ProjectID = nil
			if !t.IsClosed() && t.Schedule == model.ScheduleNone {
				t.Status = model.TaskStatusInbox
			}
			return nil
		}
		if findProject(d, projectID) < 0 {
			return fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		t.ProjectID = ptr(projectID)
		activate(t)
		return nil
	})
}

// MoveTaskToBucket schedules a task into a bucket and drops its heading.
func (m *Manager) MoveTaskToBucket(ctx context.Context, id string, bucket model.Schedule) error {
	return m.updateTask(ctx, "move task to bucket", id, func(d *model.Snapshot, t *model.Task) error {
		if bucket == model.ScheduleNone {
			return fmt.Errorf("no bucket given: %w", ErrInvalid)
		}
		if err := applySchedule(t, bucket); err != nil {
			return err
		}
		t.HeadingID = nil
		return nil
	})
}

// MoveTaskToHeading files a task under a heading, moving it into the
// heading's project.
func (m *Manager) MoveTaskToHeading(ctx context.Context, id, headingID string) error {
	return m.updateTask(ctx, "move task to heading", id, func(d *model.Snapshot, t *model.Task) error {
		t.ProjectID = nil
		return placeUnderHeading(d, t, headingID)
	})
}

// MoveTaskToInbox takes a task out of its project and schedule.
func (m *Manager) MoveTaskToInbox(ctx context.Context, id string) error {
	return m.updateTask(ctx, "move task to inbox", id, func(d *model.Snapshot, t *model.Task) error {
		t.ProjectID = nil
		t.HeadingID = nil
		t.Schedule = model.ScheduleNone
		t.ScheduledDate = nil
		if !t.IsClosed() {
			t.Status = model.TaskStatusInbox
		}
		return nil
	})
}

// SetTaskTags replaces the set of tags on a task.
func (m *Manager) SetTaskTags(ctx context.Context, id string, tagIDs []string) error {
	return m.mutate(ctx, "set task tags", func(d *model.Snapshot) ([]string, error) {
		i := findTask(d, id)
		if i < 0 {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		now := m.clock()
		if err := setTags(d, id, tagIDs, now); err != nil {
			return nil, err
		}
		d.Tasks[i].UpdatedAt = now
		return []string{store.SlotTasks, store.SlotTaskTags}, nil
	})
}

// PromoteTaskToProject turns a task into a new project carrying its title,
// emoji, notes and deadline. The project joins the area of the task's
// current project, if any. The task itself is removed.
func (m *Manager) PromoteTaskToProject(ctx context.Context, id string) (model.Project, error) {
	var created model.Project
	err := m.mutate(ctx, "promote task", func(d *model.Snapshot) ([]string, error) {
		i := findTask(d, id)
		if i < 0 {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		t := d.Tasks[i]

		now := m.clock()
		p := model.Project{
			ID:        m.newID(),
			Name:      t.Title,
			Emoji:     t.Emoji,
			Notes:     t.Notes,
			Position:  len(d.Projects),
			Status:    model.ProjectStatusActive,
			Deadline:  t.Deadline,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if t.ProjectID != nil {
			if j := findProject(d, *t.ProjectID); j >= 0 && d.Projects[j].AreaID != nil {
				p.AreaID = ptr(*d.Projects[j].AreaID)
			}
		}

		d.Projects = append(d.Projects, p)
		d.Tasks = slices.Delete(d.Tasks, i, i+1)
		created = p
		return append([]string{store.SlotProjects, store.SlotTasks}, forgetTasks(d, id)...), nil
	})
	return created, err
}

// updateTask applies fn to a copy of one task and stamps updated_at.
func (m *Manager) updateTask(ctx context.Context, op, id string, fn func(d *model.Snapshot, t *model.Task) error) error {
	return m.mutate(ctx, op, func(d *model.Snapshot) ([]string, error) {
		i := findTask(d, id)
		if i < 0 {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		t := d.Tasks[i]
		if err := fn(d, &t); err != nil {
			return nil, err
		}
		t.UpdatedAt = m.clock()
		d.Tasks[i] = t
		return []string{store.SlotTasks}, nil
	})
}

// scheduleOn pins t to date and derives the bucket from it.
func (m *Manager) scheduleOn(t *model.Task, date time.Time) {
	t.ScheduledDate = day(&date)
	t.Schedule = view.ScheduleForDate(date, m.now())
	activate(t)
}

func applySchedule(t *model.Task, s model.Schedule) error {
	if !s.Valid() {
		return fmt.Errorf("unknown schedule %q: %w", s, ErrInvalid)
	}
	t.Schedule = s
	switch s {
	case model.ScheduleNone:
		t.ScheduledDate = nil
		if !t.IsClosed() && t.ProjectID == nil {
			t.Status = model.TaskStatusInbox
		}
	case model.ScheduleSomeday:
		t.ScheduledDate = nil
		activate(t)
	default:
		activate(t)
	}
	return nil
}

func placeUnderHeading(d *model.Snapshot, t *model.Task, headingID string) error {
	h := findHeading(d, headingID)
	if h < 0 {
		return fmt.Errorf("heading %s: %w", headingID, ErrNotFound)
	}
	heading := d.Headings[h]
	if t.ProjectID != nil && *t.ProjectID != heading.ProjectID {
		return fmt.Errorf("heading %s belongs to another project: %w", headingID, ErrInvalid)
	}
	t.ProjectID = ptr(heading.ProjectID)
	t.HeadingID = ptr(heading.ID)
	activate(t)
	return nil
}

// activate moves an inbox task to active once it has been filed.
func activate(t *model.Task) {
	if t.Status == model.TaskStatusInbox {
		t.Status = model.TaskStatusActive
	}
}

// reopen returns a closed task to the open state it would have had.
func reopen(t *model.Task) {
	t.CompletedAt = nil
	if t.ProjectID == nil && t.Schedule == model.ScheduleNone {
		t.Status = model.TaskStatusInbox
		return
	}
	t.Status = model.TaskStatusActive
}

// setTags replaces the tag links of taskID.
func setTags(d *model.Snapshot, taskID string, tagIDs []string, now time.Time) error {
	seen := make(map[string]bool, len(tagIDs))
	var links []model.TaskTag
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		if findTag(d, tagID) < 0 {
			return fmt.Errorf("tag %s: %w", tagID, ErrNotFound)
		}
		seen[tagID] = true
		links = append(links, model.TaskTag{TaskID: taskID, TagID: tagID, CreatedAt: now})
	}
	d.TaskTags = slices.DeleteFunc(d.TaskTags, func(tt model.TaskTag) bool { return tt.TaskID == taskID })
	d.TaskTags = append(d.TaskTags, links...)
	return nil
}

// forgetTasks drops tag links and manual-order entries of removed tasks and
// reports which extra slots changed.
func forgetTasks(d *model.Snapshot, ids ...string) []string {
	gone := make(map[string]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}

	var dirty []string
	before := len(d.TaskTags)
	d.TaskTags = slices.DeleteFunc(d.TaskTags, func(tt model.TaskTag) bool { return gone[tt.TaskID] })
	if len(d.TaskTags) != before {
		dirty = append(dirty, store.SlotTaskTags)
	}

	prefsChanged := false
	for key, order := range d.Preferences.ManualOrder {
		kept := slices.DeleteFunc(order, func(id string) bool { return gone[id] })
		if len(kept) != len(order) {
			d.Preferences.ManualOrder[key] = kept
			prefsChanged = true
		}
	}
	if prefsChanged {
		dirty = append(dirty, store.SlotPreferences)
	}
	return dirty
}
