package state

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/store"
	"github.com/nhle/gtd/internal/testutil"
)

// base is a Wednesday.
var base = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

type fixture struct {
	m   *Manager
	s   store.Store
	now time.Time
}

func (f *fixture) options() []Option {
	n := 0
	return []Option{
		WithClock(func() time.Time { return f.now }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("new-%02d", n)
		}),
	}
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

// reload builds a second manager over the same store.
func (f *fixture) reload(t *testing.T) *Manager {
	t.Helper()
	m, err := Load(context.Background(), f.s, f.options()...)
	require.NoError(t, err)
	return m
}

// newSeeded loads a manager over empty storage, which installs the seed.
func newSeeded(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{s: testutil.NewTestStore(t), now: base}
	f.m = f.reload(t)
	return f
}

// newWith loads a manager over storage prefilled with snap.
func newWith(t *testing.T, snap model.Snapshot) *fixture {
	t.Helper()
	f := &fixture{s: testutil.NewTestStore(t), now: base}
	slots := make(map[string][]byte)
	for _, key := range store.AllSlots {
		data, err := encodeSlot(&snap, key)
		require.NoError(t, err)
		slots[key] = data
	}
	require.NoError(t, f.s.SaveSlots(context.Background(), slots))
	f.m = f.reload(t)
	return f
}

// fixtureData is a small dataset:
//
//	inbox:   t-inbox
//	today:   t-a, t-b (t-b tagged)
//	Website: heading Design holds t-design; t-done is completed
func fixtureData() model.Snapshot {
	at := base.Add(-24 * time.Hour)
	area := "a-work"
	proj := "p-web"
	heading := "h-design"
	return model.Snapshot{
		Areas: []model.Area{{ID: area, Name: "Work", CreatedAt: at, UpdatedAt: at}},
		Projects: []model.Project{
			{ID: proj, AreaID: &area, Name: "Website", Status: model.ProjectStatusActive, CreatedAt: at, UpdatedAt: at},
			{ID: "p-other", Name: "Other", Position: 1, Status: model.ProjectStatusActive, CreatedAt: at, UpdatedAt: at},
		},
		Headings: []model.Heading{
			{ID: heading, ProjectID: proj, Name: "Design", CreatedAt: at, UpdatedAt: at},
			{ID: "h-other", ProjectID: "p-other", Name: "Misc", CreatedAt: at, UpdatedAt: at},
		},
		Tasks: []model.Task{
			{ID: "t-inbox", Title: "Inbox item", Status: model.TaskStatusInbox, Position: 0, CreatedAt: at, UpdatedAt: at},
			{ID: "t-a", Title: "A", Status: model.TaskStatusActive, Schedule: model.ScheduleToday, Position: 1, CreatedAt: at, UpdatedAt: at},
			{ID: "t-b", Title: "B", Status: model.TaskStatusActive, Schedule: model.ScheduleToday, Position: 2, CreatedAt: at, UpdatedAt: at},
			{ID: "t-design", ProjectID: &proj, HeadingID: &heading, Title: "Mockups", Status: model.TaskStatusActive, Schedule: model.ScheduleAnytime, Position: 3, CreatedAt: at, UpdatedAt: at},
			{ID: "t-done", ProjectID: &proj, Title: "Domain", Status: model.TaskStatusCompleted, Position: 4, CompletedAt: &at, CreatedAt: at, UpdatedAt: at},
		},
		Tags:     []model.Tag{{ID: "g-errand", Name: "Errand", CreatedAt: at}},
		TaskTags: []model.TaskTag{{TaskID: "t-b", TagID: "g-errand", CreatedAt: at}},
		Preferences: model.Preferences{
			ActiveView:  model.ProjectView(proj).Key(),
			ManualOrder: map[string][]string{"today": {"t-b", "t-a"}},
		},
	}
}

func task(t *testing.T, m *Manager, id string) model.Task {
	t.Helper()
	snap := m.Snapshot()
	i := findTask(&snap, id)
	require.GreaterOrEqual(t, i, 0, "task %s missing", id)
	return snap.Tasks[i]
}

// failingStore accepts reads and rejects every write.
type failingStore struct {
	store.Store
}

func (failingStore) SaveSlots(context.Context, map[string][]byte) error {
	return errors.New("disk full")
}
