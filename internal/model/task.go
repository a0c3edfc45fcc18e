package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusInbox     TaskStatus = "inbox"
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Schedule is the bucket a task is planned into. The empty string means
// the task is unscheduled.
type Schedule string

const (
	ScheduleNone     Schedule = ""
	ScheduleToday    Schedule = "today"
	ScheduleEvening  Schedule = "evening"
	ScheduleThisWeek Schedule = "this_week"
	ScheduleNextWeek Schedule = "next_week"
	ScheduleAnytime  Schedule = "anytime"
	ScheduleSomeday  Schedule = "someday"
)

// Buckets lists the five schedule buckets shown as navigation views, in
// sidebar order.
var Buckets = []Schedule{
	ScheduleToday,
	ScheduleThisWeek,
	ScheduleNextWeek,
	ScheduleAnytime,
	ScheduleSomeday,
}

// Valid reports whether s is a known schedule value (including none).
func (s Schedule) Valid() bool {
	switch s {
	case ScheduleNone, ScheduleToday, ScheduleEvening, ScheduleThisWeek,
		ScheduleNextWeek, ScheduleAnytime, ScheduleSomeday:
		return true
	}
	return false
}

// Label returns the human name of the bucket.
func (s Schedule) Label() string {
	switch s {
	case ScheduleToday:
		return "Today"
	case ScheduleEvening:
		return "This Evening"
	case ScheduleThisWeek:
		return "This Week"
	case ScheduleNextWeek:
		return "Next Week"
	case ScheduleAnytime:
		return "Anytime"
	case ScheduleSomeday:
		return "Someday"
	default:
		return "Unscheduled"
	}
}

// Task is a single to-do item. It may belong to a project and, inside
// that project, to a heading.
type Task struct {
	ID            string     `json:"id" yaml:"id"`
	ProjectID     *string    `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	HeadingID     *string    `json:"heading_id,omitempty" yaml:"heading_id,omitempty"`
	Title         string     `json:"title" yaml:"title"`
	Emoji         string     `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Notes         string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Status        TaskStatus `json:"status" yaml:"status"`
	Schedule      Schedule   `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty" yaml:"scheduled_date,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Position      int        `json:"position" yaml:"position"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" yaml:"updated_at"`
}

// IsClosed reports whether the task has left the open lifecycle, either
// by completion or cancellation.
func (t Task) IsClosed() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusCancelled
}

// InProject reports whether the task belongs to the given project.
func (t Task) InProject(projectID string) bool {
	return t.ProjectID != nil && *t.ProjectID == projectID
}

// IsOverdue reports whether the task is open and its deadline lies before
// the calendar day of now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil || t.IsClosed() {
		return false
	}
	return t.Deadline.Before(StartOfDay(now))
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
