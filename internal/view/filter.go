package view

import (
	"github.com/nhle/gtd/internal/model"
)

// Result is the ordered content of a navigation view.
type Result struct {
	// Tasks are the rows shown in the main list.
	Tasks []model.Task

	// Completed holds closed tasks of a project view, rendered in a
	// separate collapsible section. It is empty for other views.
	Completed []model.Task
}

// Filter selects and orders the tasks shown by a navigation view.
//
// Bucket views hold open tasks whose schedule equals the bucket; Today
// additionally lists evening tasks after the daytime ones. The inbox holds
// open tasks still in the inbox state. The logbook holds closed tasks,
// most recently finished first. A project view holds every task of the
// project, open ones ordered by the project's sort mode.
func Filter(tasks []model.Task, sel model.ViewSelector, prefs model.Preferences) Result {
	switch sel.Kind {
	case model.ViewKindInbox:
		open := selectTasks(tasks, func(t model.Task) bool {
			return !t.IsClosed() && t.Status == model.TaskStatusInbox
		})
		return Result{Tasks: Sort(open, model.SortManual, prefs.ManualOrder[sel.Key()])}

	case model.ViewKindBucket:
		order := prefs.ManualOrder[sel.Key()]
		day := Sort(selectTasks(tasks, func(t model.Task) bool {
			return !t.IsClosed() && t.Schedule == sel.Bucket
		}), model.SortManual, order)
		if sel.Bucket != model.ScheduleToday {
			return Result{Tasks: day}
		}
		evening := Sort(selectTasks(tasks, func(t model.Task) bool {
			return !t.IsClosed() && t.Schedule == model.ScheduleEvening
		}), model.SortManual, order)
		return Result{Tasks: append(day, evening...)}

	case model.ViewKindLogbook:
		return Result{Tasks: SortByCompletion(selectTasks(tasks, model.Task.IsClosed))}

	case model.ViewKindProject:
		open, closed := ProjectTasks(tasks, sel.ProjectID)
		mode := prefs.SortFor(sel.ProjectID)
		return Result{
			Tasks:     Sort(open, mode, prefs.ManualOrder[sel.Key()]),
			Completed: SortByCompletion(closed),
		}
	}
	return Result{}
}

// ProjectTasks splits a project's tasks into open and closed ones,
// preserving input order.
func ProjectTasks(tasks []model.Task, projectID string) (open, closed []model.Task) {
	for _, t := range tasks {
		if !t.InProject(projectID) {
			continue
		}
		if t.IsClosed() {
			closed = append(closed, t)
		} else {
			open = append(open, t)
		}
	}
	return open, closed
}

// Counts returns the number of open tasks per view key, for sidebar badges.
func Counts(tasks []model.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		if t.IsClosed() {
			continue
		}
		if t.Status == model.TaskStatusInbox {
			counts[model.InboxView.Key()]++
		}
		switch t.Schedule {
		case model.ScheduleEvening:
			counts[model.TodayView.Key()]++
		case model.ScheduleNone:
		default:
			counts[model.BucketView(t.Schedule).Key()]++
		}
		if t.ProjectID != nil {
			counts[model.ProjectView(*t.ProjectID).Key()]++
		}
	}
	return counts
}

// Home returns the view a task is listed in, used to jump to it from
// search. Project tasks go to their project, which also lists closed ones.
func Home(t model.Task) model.ViewSelector {
	switch {
	case t.ProjectID != nil:
		return model.ProjectView(*t.ProjectID)
	case t.IsClosed():
		return model.LogbookView
	case t.Schedule == model.ScheduleEvening:
		return model.TodayView
	case t.Schedule == model.ScheduleNone:
		return model.InboxView
	}
	return model.BucketView(t.Schedule)
}

func selectTasks(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
