package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/model"
)

func ptr[T any](v T) *T { return &v }

func snapshot() model.Snapshot {
	return model.Snapshot{
		Areas: []model.Area{{ID: "a-work", Name: "Work"}},
		Projects: []model.Project{
			{ID: "p-loose", Name: "Loose", Position: 0, Status: model.ProjectStatusActive},
			{ID: "p-web", Name: "Website", AreaID: ptr("a-work"), Position: 1, Status: model.ProjectStatusActive},
			{ID: "p-done", Name: "Shipped", Position: 2, Status: model.ProjectStatusCompleted},
		},
		Tasks: []model.Task{
			{ID: "t-1", Status: model.TaskStatusInbox},
			{ID: "t-2", Status: model.TaskStatusActive, Schedule: model.ScheduleToday, ProjectID: ptr("p-web")},
			{ID: "t-3", Status: model.TaskStatusActive, Schedule: model.ScheduleEvening},
		},
	}
}

func describe(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		switch e.Kind {
		case EntrySpacer:
			out[i] = ""
		case EntryArea:
			out[i] = "area:" + e.Label
		default:
			out[i] = e.View.Key()
		}
	}
	return out
}

func TestSetDataBuildsTree(t *testing.T) {
	m := New(30, 40)
	m.SetData(snapshot())

	assert.Equal(t, []string{
		"inbox", "today", "this_week", "next_week", "anytime", "someday", "logbook",
		"", "project:p-loose",
		"", "area:Work", "project:p-web",
	}, describe(m.Entries()))

	counts := map[string]int{}
	for _, e := range m.Entries() {
		counts[e.View.Key()] = e.Count
	}
	assert.Equal(t, 1, counts["inbox"])
	assert.Equal(t, 2, counts["today"])
	assert.Equal(t, 1, counts["project:p-web"])
}

func TestMoveCursorSkipsSpacers(t *testing.T) {
	m := New(30, 40)
	m.SetData(snapshot())
	m.SetActive(model.LogbookView)

	m.MoveCursor(1)
	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, model.ProjectView("p-loose"), e.View)

	m.MoveCursor(1)
	e, _ = m.Selected()
	assert.Equal(t, EntryArea, e.Kind)

	m.MoveCursor(-2)
	e, _ = m.Selected()
	assert.Equal(t, model.LogbookView, e.View)

	m.MoveCursor(-100)
	e, _ = m.Selected()
	assert.Equal(t, model.InboxView, e.View)
}

func TestSetDataKeepsCursorOnEntry(t *testing.T) {
	m := New(30, 40)
	m.SetData(snapshot())
	m.SetActive(model.ProjectView("p-web"))

	snap := snapshot()
	snap.Projects[0].Status = model.ProjectStatusCompleted
	m.SetData(snap)

	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, model.ProjectView("p-web"), e.View)
}

func TestHitTest(t *testing.T) {
	m := New(30, 40)
	m.SetData(snapshot())

	e, ok := m.HitTest(1)
	require.True(t, ok)
	assert.Equal(t, model.TodayView, e.View)

	_, ok = m.HitTest(7)
	assert.False(t, ok, "spacer rows are not targets")

	_, ok = m.HitTest(-1)
	assert.False(t, ok)
	_, ok = m.HitTest(100)
	assert.False(t, ok)
}

func TestScrollFollowsCursor(t *testing.T) {
	m := New(30, 4)
	m.SetData(snapshot())

	m.SetActive(model.ProjectView("p-web"))
	e, ok := m.HitTest(3)
	require.True(t, ok)
	assert.Equal(t, model.ProjectView("p-web"), e.View)
}

func TestFirstProject(t *testing.T) {
	m := New(30, 40)
	m.SetData(snapshot())

	v, ok := m.FirstProject()
	require.True(t, ok)
	assert.Equal(t, model.ProjectView("p-loose"), v)

	m.SetData(model.Snapshot{})
	_, ok = m.FirstProject()
	assert.False(t, ok)
}

func TestViewShowsLabels(t *testing.T) {
	m := New(30, 40)
	m.SetData(snapshot())
	m.SetActive(model.TodayView)

	out := m.View()
	assert.Contains(t, out, "Inbox")
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "Work")
	assert.NotContains(t, out, "Shipped")
}
