package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/model"
)

func snapshot() model.Snapshot {
	web := "p-web"
	return model.Snapshot{
		Areas: []model.Area{{ID: "a", Name: "Work"}},
		Projects: []model.Project{
			{ID: web, AreaID: ptr("a"), Name: "Launch website", Emoji: "🚀", Status: model.ProjectStatusActive},
			{ID: "p-old", Name: "Old site", Status: model.ProjectStatusCompleted},
		},
		Tasks: []model.Task{
			{ID: "t1", Title: "Write site copy", ProjectID: &web, Status: model.TaskStatusActive, Schedule: model.ScheduleAnytime},
			{ID: "t2", Title: "Buy milk", Status: model.TaskStatusActive, Schedule: model.ScheduleToday},
			{ID: "t3", Title: "Buy milk", Status: model.TaskStatusCompleted},
			{ID: "t4", Title: "Call mum", Status: model.TaskStatusInbox},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func TestSearchEmptyQuery(t *testing.T) {
	assert.Nil(t, Search(snapshot(), "  ", 10))
}

func TestSearchFindsTasksAndProjects(t *testing.T) {
	results := Search(snapshot(), "site", 0)

	var got []string
	for _, r := range results {
		got = append(got, r.ID)
	}
	assert.ElementsMatch(t, []string{"p-web", "p-old", "t1"}, got)

	for _, r := range results {
		if r.ID == "t1" {
			assert.Equal(t, "Launch website", r.Context)
			assert.Equal(t, model.ProjectView("p-web"), r.View)
			assert.NotEmpty(t, r.Matched)
		}
		if r.ID == "p-web" {
			assert.Equal(t, "Work", r.Context)
			assert.Equal(t, KindProject, r.Kind)
		}
	}
}

func TestSearchRanksOpenBeforeClosed(t *testing.T) {
	results := Search(snapshot(), "buy milk", 0)
	require.Len(t, results, 2)
	assert.Equal(t, "t2", results[0].ID)
	assert.Equal(t, model.TodayView, results[0].View)
	assert.Equal(t, "t3", results[1].ID)
	assert.Equal(t, model.LogbookView, results[1].View)
	assert.Equal(t, "Logbook", results[1].Context)
}

func TestSearchLimit(t *testing.T) {
	assert.Len(t, Search(snapshot(), "i", 2), 2)
}

func TestSearchInboxContext(t *testing.T) {
	results := Search(snapshot(), "mum", 0)
	require.Len(t, results, 1)
	assert.Equal(t, "Inbox", results[0].Context)
	assert.Equal(t, model.InboxView, results[0].View)
}
