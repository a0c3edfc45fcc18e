// Package seed holds the example dataset installed on first run.
package seed

import (
	"time"

	"github.com/nhle/gtd/internal/model"
)

// Dataset builds the first-run example data. IDs come from newID so the
// caller controls the generator; timestamps are all now.
func Dataset(now time.Time, newID func() string) model.Snapshot {
	now = now.UTC()
	today := model.StartOfDay(now)
	inDays := func(n int) *time.Time {
		d := today.AddDate(0, 0, n)
		return &d
	}

	personal := model.Area{ID: newID(), Name: "Personal", Position: 0, CreatedAt: now, UpdatedAt: now}
	work := model.Area{ID: newID(), Name: "Work", Position: 1, CreatedAt: now, UpdatedAt: now}

	vacation := model.Project{
		ID: newID(), AreaID: &personal.ID, Name: "Plan vacation", Emoji: "🏖️",
		Notes: "Somewhere warm, two weeks in spring.", Position: 0,
		Status: model.ProjectStatusActive, CreatedAt: now, UpdatedAt: now,
	}
	website := model.Project{
		ID: newID(), AreaID: &work.ID, Name: "Launch website", Emoji: "🚀",
		Position: 1, Status: model.ProjectStatusActive, Deadline: inDays(21),
		CreatedAt: now, UpdatedAt: now,
	}
	learn := model.Project{
		ID: newID(), Name: "Learn Italian", Emoji: "🇮🇹", Position: 2,
		Status: model.ProjectStatusSomeday, CreatedAt: now, UpdatedAt: now,
	}

	design := model.Heading{ID: newID(), ProjectID: website.ID, Name: "Design", Position: 0, CreatedAt: now, UpdatedAt: now}
	build := model.Heading{ID: newID(), ProjectID: website.ID, Name: "Build", Position: 1, CreatedAt: now, UpdatedAt: now}

	errand := model.Tag{ID: newID(), Name: "Errand", Color: "#FFA94D", CreatedAt: now}
	focus := model.Tag{ID: newID(), Name: "Focus", Color: "#5B9BD5", CreatedAt: now}

	type spec struct {
		title    string
		emoji    string
		status   model.TaskStatus
		schedule model.Schedule
		project  *string
		heading  *string
		deadline *time.Time
		notes    string
	}
	specs := []spec{
		{title: "Welcome! Press ? for keyboard shortcuts", emoji: "👋", status: model.TaskStatusInbox},
		{title: "Drag tasks onto a project or a list to move them", status: model.TaskStatusInbox},
		{title: "Pick up dry cleaning", status: model.TaskStatusActive, schedule: model.ScheduleToday},
		{title: "Reply to Sam's email", emoji: "✉️", status: model.TaskStatusActive, schedule: model.ScheduleToday},
		{title: "Read a chapter", emoji: "📚", status: model.TaskStatusActive, schedule: model.ScheduleEvening},
		{title: "Book dentist appointment", status: model.TaskStatusActive, schedule: model.ScheduleThisWeek, deadline: inDays(4)},
		{title: "Renew passport", status: model.TaskStatusActive, schedule: model.ScheduleNextWeek, project: &vacation.ID},
		{title: "Compare flight prices", status: model.TaskStatusActive, schedule: model.ScheduleAnytime, project: &vacation.ID},
		{title: "Ask Alex for hotel tips", status: model.TaskStatusActive, schedule: model.ScheduleAnytime, project: &vacation.ID},
		{title: "Sketch landing page", status: model.TaskStatusActive, schedule: model.ScheduleThisWeek, project: &website.ID, heading: &design.ID},
		{title: "Pick a colour palette", emoji: "🎨", status: model.TaskStatusActive, schedule: model.ScheduleAnytime, project: &website.ID, heading: &design.ID},
		{title: "Set up hosting", status: model.TaskStatusActive, schedule: model.ScheduleAnytime, project: &website.ID, heading: &build.ID, deadline: inDays(14)},
		{title: "Write copy for the about page", status: model.TaskStatusActive, schedule: model.ScheduleAnytime, project: &website.ID, heading: &build.ID, notes: "Keep it under 200 words."},
		{title: "Download a language app", status: model.TaskStatusActive, schedule: model.ScheduleSomeday, project: &learn.ID},
		{title: "Learn to juggle", emoji: "🤹", status: model.TaskStatusActive, schedule: model.ScheduleSomeday},
	}

	tasks := make([]model.Task, 0, len(specs)+1)
	for i, s := range specs {
		tasks = append(tasks, model.Task{
			ID: newID(), ProjectID: s.project, HeadingID: s.heading,
			Title: s.title, Emoji: s.emoji, Notes: s.notes,
			Status: s.status, Schedule: s.schedule, Deadline: s.deadline,
			Position: i, CreatedAt: now, UpdatedAt: now,
		})
	}
	tasks = append(tasks, model.Task{
		ID: newID(), Title: "Set up gtd", Status: model.TaskStatusCompleted,
		Position: len(specs), CompletedAt: &now, CreatedAt: now, UpdatedAt: now,
	})

	return model.Snapshot{
		Areas:    []model.Area{personal, work},
		Projects: []model.Project{vacation, website, learn},
		Headings: []model.Heading{design, build},
		Tasks:    tasks,
		Tags:     []model.Tag{errand, focus},
		TaskTags: []model.TaskTag{
			{TaskID: tasks[2].ID, TagID: errand.ID, CreatedAt: now},
			{TaskID: tasks[9].ID, TagID: focus.ID, CreatedAt: now},
		},
	}
}
