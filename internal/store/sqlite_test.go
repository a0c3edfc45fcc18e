package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/store"
	"github.com/nhle/gtd/internal/testutil"
)

func TestLoadSlotsOmitsUnwrittenKeys(t *testing.T) {
	s := testutil.NewTestStore(t)

	got, err := s.LoadSlots(context.Background(), store.AllSlots...)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveSlotsOverwritesWholeValue(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSlots(ctx, map[string][]byte{
		store.SlotTasks: []byte(`[{"id":"a"},{"id":"b"}]`),
		store.SlotAreas: []byte(`[]`),
	}))
	require.NoError(t, s.SaveSlots(ctx, map[string][]byte{
		store.SlotTasks: []byte(`[{"id":"c"}]`),
	}))

	got, err := s.LoadSlots(ctx, store.SlotTasks, store.SlotAreas, store.SlotProjects)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c"}]`, string(got[store.SlotTasks]))
	assert.Equal(t, `[]`, string(got[store.SlotAreas]))
	_, ok := got[store.SlotProjects]
	assert.False(t, ok)
}

func TestReopenKeepsDataAndSkipsAppliedMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gtd.db")
	ctx := context.Background()

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveSlots(ctx, map[string][]byte{store.SlotAreas: []byte(`[{"id":"x"}]`)}))
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.LoadSlots(ctx, store.SlotAreas)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(got[store.SlotAreas]))
}

func TestCollectionRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	project := "p1"
	heading := "h1"
	tasks := []model.Task{
		{
			ID:        "t1",
			ProjectID: &project,
			HeadingID: &heading,
			Title:     "Write report",
			Emoji:     "📝",
			Notes:     "two pages",
			Status:    model.TaskStatusActive,
			Schedule:  model.ScheduleThisWeek,
			Deadline:  &deadline,
			Position:  3,
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:          "t2",
			Title:       "Call mom",
			Status:      model.TaskStatusCompleted,
			CompletedAt: &created,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}

	data, err := store.EncodeCollection(tasks)
	require.NoError(t, err)
	require.NoError(t, s.SaveSlots(ctx, map[string][]byte{store.SlotTasks: data}))

	slots, err := s.LoadSlots(ctx, store.SlotTasks)
	require.NoError(t, err)
	got, err := store.DecodeCollection[model.Task](slots[store.SlotTasks])
	require.NoError(t, err)

	require.Len(t, got, len(tasks))
	for i := range tasks {
		assert.Equal(t, tasks[i].ID, got[i].ID)
		assert.Equal(t, tasks[i].Title, got[i].Title)
		assert.Equal(t, tasks[i].Status, got[i].Status)
		assert.Equal(t, tasks[i].Schedule, got[i].Schedule)
		assert.Equal(t, tasks[i].ProjectID, got[i].ProjectID)
		assert.Equal(t, tasks[i].HeadingID, got[i].HeadingID)
		assert.True(t, tasks[i].CreatedAt.Equal(got[i].CreatedAt))
	}
	require.NotNil(t, got[0].Deadline)
	assert.True(t, deadline.Equal(*got[0].Deadline))
	require.NotNil(t, got[1].CompletedAt)
	assert.True(t, created.Equal(*got[1].CompletedAt))
}

func TestEncodeNilCollectionIsEmptyArray(t *testing.T) {
	data, err := store.EncodeCollection[model.Area](nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeCollectionRejectsMalformedJSON(t *testing.T) {
	_, err := store.DecodeCollection[model.Area]([]byte(`{not json`))
	assert.Error(t, err)
}
