package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/model"
)

func fixtureTasks() []model.Task {
	return []model.Task{
		{ID: "inbox", Status: model.TaskStatusInbox, Position: 0},
		{ID: "today-1", Status: model.TaskStatusActive, Schedule: model.ScheduleToday, Position: 1},
		{ID: "evening", Status: model.TaskStatusActive, Schedule: model.ScheduleEvening, Position: 2},
		{ID: "today-2", Status: model.TaskStatusActive, Schedule: model.ScheduleToday, Position: 3},
		{ID: "today-done", Status: model.TaskStatusCompleted, Schedule: model.ScheduleToday, Position: 4, CompletedAt: ptr(base)},
		{ID: "someday", Status: model.TaskStatusActive, Schedule: model.ScheduleSomeday, Position: 5},
		{ID: "p-open", ProjectID: ptr("p1"), Status: model.TaskStatusActive, Schedule: model.ScheduleAnytime, Position: 6, Title: "b"},
		{ID: "p-open-2", ProjectID: ptr("p1"), Status: model.TaskStatusActive, Position: 7, Title: "a"},
		{ID: "p-done", ProjectID: ptr("p1"), Status: model.TaskStatusCompleted, Position: 8, CompletedAt: ptr(base.AddDate(0, 0, -1))},
		{ID: "p-cancelled", ProjectID: ptr("p1"), Status: model.TaskStatusCancelled, Position: 9, CompletedAt: ptr(base.AddDate(0, 0, -2))},
		{ID: "other", ProjectID: ptr("p2"), Status: model.TaskStatusActive, Schedule: model.ScheduleAnytime, Position: 10},
	}
}

func TestFilterBucketExcludesClosedTasks(t *testing.T) {
	got := Filter(fixtureTasks(), model.BucketView(model.ScheduleSomeday), model.Preferences{})

	assert.Equal(t, []string{"someday"}, ids(got.Tasks))
	assert.Empty(t, got.Completed)
}

func TestFilterTodayListsEveningLast(t *testing.T) {
	got := Filter(fixtureTasks(), model.TodayView, model.Preferences{})

	assert.Equal(t, []string{"today-1", "today-2", "evening"}, ids(got.Tasks))
}

func TestFilterBucketHonoursManualOrder(t *testing.T) {
	prefs := model.Preferences{ManualOrder: map[string][]string{
		"today": {"today-2", "today-1"},
	}}

	got := Filter(fixtureTasks(), model.TodayView, prefs)

	assert.Equal(t, []string{"today-2", "today-1", "evening"}, ids(got.Tasks))
}

func TestFilterInbox(t *testing.T) {
	got := Filter(fixtureTasks(), model.InboxView, model.Preferences{})

	assert.Equal(t, []string{"inbox"}, ids(got.Tasks))
}

func TestFilterLogbookMostRecentFirst(t *testing.T) {
	got := Filter(fixtureTasks(), model.LogbookView, model.Preferences{})

	assert.Equal(t, []string{"today-done", "p-done", "p-cancelled"}, ids(got.Tasks))
}

func TestFilterProjectSplitsCompleted(t *testing.T) {
	got := Filter(fixtureTasks(), model.ProjectView("p1"), model.Preferences{})

	assert.Equal(t, []string{"p-open", "p-open-2"}, ids(got.Tasks))
	assert.Equal(t, []string{"p-done", "p-cancelled"}, ids(got.Completed))
}

func TestFilterProjectUsesSavedSortMode(t *testing.T) {
	prefs := model.Preferences{ProjectSort: map[string]model.SortMode{"p1": model.SortTitle}}

	got := Filter(fixtureTasks(), model.ProjectView("p1"), prefs)

	assert.Equal(t, []string{"p-open-2", "p-open"}, ids(got.Tasks))
}

func TestCounts(t *testing.T) {
	counts := Counts(fixtureTasks())

	assert.Equal(t, 1, counts["inbox"])
	assert.Equal(t, 3, counts["today"])
	assert.Equal(t, 1, counts["someday"])
	assert.Equal(t, 2, counts["anytime"])
	assert.Equal(t, 2, counts["project:p1"])
	assert.Equal(t, 1, counts["project:p2"])
}

func TestProjectTasksPreservesOrder(t *testing.T) {
	open, closed := ProjectTasks(fixtureTasks(), "p1")

	require.Len(t, open, 2)
	require.Len(t, closed, 2)
	assert.Equal(t, "p-open", open[0].ID)
	assert.Equal(t, "p-done", closed[0].ID)
}

func TestHome(t *testing.T) {
	tests := []struct {
		name string
		task model.Task
		want model.ViewSelector
	}{
		{"project", model.Task{ProjectID: ptr("p"), Schedule: model.ScheduleToday}, model.ProjectView("p")},
		{"closed", model.Task{Status: model.TaskStatusCompleted, Schedule: model.ScheduleToday}, model.LogbookView},
		{"evening", model.Task{Status: model.TaskStatusActive, Schedule: model.ScheduleEvening}, model.TodayView},
		{"inbox", model.Task{Status: model.TaskStatusInbox}, model.InboxView},
		{"bucket", model.Task{Status: model.TaskStatusActive, Schedule: model.ScheduleSomeday}, model.BucketView(model.ScheduleSomeday)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Home(tt.task))
		})
	}
}
