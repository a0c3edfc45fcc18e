package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/model"
)

func TestDeleteProjectCascades(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())
	require.NoError(t, f.m.SetProjectSort(ctx, "p-web", model.SortTitle))

	require.NoError(t, f.m.DeleteProject(ctx, "p-web"))

	for _, snap := range []model.Snapshot{f.m.Snapshot(), f.reload(t).Snapshot()} {
		assert.Less(t, findProject(&snap, "p-web"), 0)
		for _, task := range snap.Tasks {
			assert.False(t, task.InProject("p-web"), "task %s survived", task.ID)
		}
		for _, h := range snap.Headings {
			assert.NotEqual(t, "p-web", h.ProjectID)
		}
		assert.Len(t, snap.Tasks, 3)
		assert.Len(t, snap.Headings, 1)
		assert.NotContains(t, snap.Preferences.ProjectSort, "p-web")
	}
}

func TestDeleteActiveProjectFallsBackToDefaultView(t *testing.T) {
	f := newWith(t, fixtureData())
	require.Equal(t, model.ProjectView("p-web"), f.m.ActiveView())

	require.NoError(t, f.m.DeleteProject(context.Background(), "p-web"))
	assert.Equal(t, model.TodayView, f.m.ActiveView())
	assert.Equal(t, model.TodayView, f.reload(t).ActiveView())
}

func TestDeleteOtherProjectKeepsActiveView(t *testing.T) {
	f := newWith(t, fixtureData())

	require.NoError(t, f.m.DeleteProject(context.Background(), "p-other"))
	assert.Equal(t, model.ProjectView("p-web"), f.m.ActiveView())
	assert.ErrorIs(t, f.m.DeleteProject(context.Background(), "p-other"), ErrNotFound)
}

func TestCreateAndUpdateProject(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())

	p, err := f.m.CreateProject(ctx, ProjectInput{Name: "Garden", Emoji: "🌱"})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Position)
	assert.Equal(t, model.ProjectStatusActive, p.Status)
	assert.Nil(t, p.AreaID)

	f.advance(time.Minute)
	require.NoError(t, f.m.UpdateProject(ctx, p.ID, ProjectInput{Name: "Garden beds", AreaID: "a-work"}))
	snap := f.m.Snapshot()
	got := snap.Projects[findProject(&snap, p.ID)]
	assert.Equal(t, "Garden beds", got.Name)
	assert.Equal(t, "a-work", *got.AreaID)
	assert.Empty(t, got.Emoji)
	assert.Equal(t, base.Add(time.Minute), got.UpdatedAt)

	_, err = f.m.CreateProject(ctx, ProjectInput{Name: " "})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, f.m.UpdateProject(ctx, p.ID, ProjectInput{Name: "x", AreaID: "gone"}), ErrNotFound)
}

func TestSetProjectStatus(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())
	project := func() model.Project {
		snap := f.m.Snapshot()
		return snap.Projects[findProject(&snap, "p-web")]
	}

	require.NoError(t, f.m.SetProjectStatus(ctx, "p-web", model.ProjectStatusCompleted))
	assert.Equal(t, model.ProjectStatusCompleted, project().Status)
	assert.Equal(t, base, *project().CompletedAt)

	require.NoError(t, f.m.SetProjectStatus(ctx, "p-web", model.ProjectStatusSomeday))
	assert.Nil(t, project().CompletedAt)

	assert.ErrorIs(t, f.m.SetProjectStatus(ctx, "p-web", "archived"), ErrInvalid)
}

func TestSetProjectSort(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())

	require.NoError(t, f.m.SetProjectSort(ctx, "p-web", model.SortDeadline))
	assert.Equal(t, model.SortDeadline, f.reload(t).Snapshot().Preferences.SortFor("p-web"))

	assert.ErrorIs(t, f.m.SetProjectSort(ctx, "p-web", "random"), ErrInvalid)
	assert.ErrorIs(t, f.m.SetProjectSort(ctx, "nope", model.SortTitle), ErrNotFound)
}
