package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/gtd/internal/model"
)

func TestSortDeadlinePutsMissingLast(t *testing.T) {
	tasks := []model.Task{
		{ID: "none-a", Position: 0},
		{ID: "late", Deadline: day(9), Position: 1},
		{ID: "none-b", Position: 2},
		{ID: "soon", Deadline: day(1), Position: 3},
		{ID: "mid", Deadline: day(4), Position: 4},
	}

	got := Sort(tasks, model.SortDeadline, nil)

	assert.Equal(t, []string{"soon", "mid", "late", "none-a", "none-b"}, ids(got))
	for i := 1; i < 3; i++ {
		assert.True(t, got[i-1].Deadline.Before(*got[i].Deadline))
	}
}

func TestSortSchedulePriority(t *testing.T) {
	tasks := []model.Task{
		{ID: "unscheduled"},
		{ID: "someday", Schedule: model.ScheduleSomeday},
		{ID: "anytime", Schedule: model.ScheduleAnytime},
		{ID: "next", Schedule: model.ScheduleNextWeek},
		{ID: "this", Schedule: model.ScheduleThisWeek},
		{ID: "today", Schedule: model.ScheduleToday},
	}

	got := Sort(tasks, model.SortSchedule, nil)

	assert.Equal(t, []string{"today", "this", "next", "anytime", "someday", "unscheduled"}, ids(got))
}

func TestSortTitleIgnoresCase(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
	}

	assert.Equal(t, []string{"2", "1", "3"}, ids(Sort(tasks, model.SortTitle, nil)))
}

func TestSortCreatedNewestFirst(t *testing.T) {
	tasks := []model.Task{
		{ID: "old", CreatedAt: base.Add(-48 * time.Hour)},
		{ID: "new", CreatedAt: base},
		{ID: "mid", CreatedAt: base.Add(-time.Hour)},
	}

	assert.Equal(t, []string{"new", "mid", "old"}, ids(Sort(tasks, model.SortCreated, nil)))
}

func TestSortManualUsesOrderThenPosition(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "c", Position: 2},
		{ID: "d", Position: 3},
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(Sort(tasks, model.SortManual, nil)))
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids(Sort(tasks, model.SortManual, []string{"c", "a", "gone"})))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{{ID: "b", Title: "b"}, {ID: "a", Title: "a"}}

	Sort(tasks, model.SortTitle, nil)

	assert.Equal(t, []string{"b", "a"}, ids(tasks))
}

func TestSortByCompletionFallsBackToUpdatedAt(t *testing.T) {
	tasks := []model.Task{
		{ID: "first", CompletedAt: ptr(base.Add(-3 * time.Hour))},
		{ID: "legacy", UpdatedAt: base.Add(-time.Hour)},
		{ID: "last", CompletedAt: ptr(base)},
	}

	assert.Equal(t, []string{"last", "legacy", "first"}, ids(SortByCompletion(tasks)))
}
