package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/view"
)

func TestDeleteAreaLeavesProjectsDangling(t *testing.T) {
	f := newWith(t, fixtureData())

	require.NoError(t, f.m.DeleteArea(context.Background(), "a-work"))
	snap := f.m.Snapshot()
	require.Empty(t, snap.Areas)

	web := snap.Projects[findProject(&snap, "p-web")]
	require.NotNil(t, web.AreaID)
	assert.Equal(t, "a-work", *web.AreaID)
	assert.Nil(t, view.AreaOf(web, snap.Areas))

	groups := view.Sidebar(snap.Areas, snap.Projects)
	require.Len(t, groups, 1)
	assert.Nil(t, groups[0].Area)
	assert.Len(t, groups[0].Projects, 2)
}

func TestAreaLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())

	home, err := f.m.CreateArea(ctx, "Home")
	require.NoError(t, err)
	assert.Equal(t, 1, home.Position)

	require.NoError(t, f.m.RenameArea(ctx, home.ID, "Household"))
	snap := f.m.Snapshot()
	assert.Equal(t, "Household", snap.Areas[findArea(&snap, home.ID)].Name)

	require.NoError(t, f.m.ReorderAreas(ctx, home.ID, 0))
	groups := view.Sidebar(f.m.Snapshot().Areas, nil)
	require.Len(t, groups, 2)
	assert.Equal(t, home.ID, groups[0].Area.ID)

	_, err = f.m.CreateArea(ctx, "")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, f.m.RenameArea(ctx, "gone", "x"), ErrNotFound)
}

func TestHeadings(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())

	build, err := f.m.CreateHeading(ctx, "p-web", "Build")
	require.NoError(t, err)
	assert.Equal(t, 1, build.Position)

	require.NoError(t, f.m.RenameHeading(ctx, build.ID, "Ship"))
	require.NoError(t, f.m.ReorderHeadings(ctx, build.ID, 0))

	headings := view.ProjectHeadings(f.m.Snapshot().Headings, "p-web")
	require.Len(t, headings, 2)
	assert.Equal(t, "Ship", headings[0].Name)
	assert.Equal(t, "Design", headings[1].Name)

	_, err = f.m.CreateHeading(ctx, "gone", "x")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.m.ReorderHeadings(ctx, build.ID, 5), ErrInvalid)
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())

	_, err := f.m.CreateTag(ctx, "errand", "")
	assert.ErrorIs(t, err, ErrInvalid, "names are unique ignoring case")

	require.NoError(t, f.m.UpdateTag(ctx, "g-errand", "Errands", "#f80"))
	tags := TagsOf(f.m.Snapshot(), "t-b")
	require.Len(t, tags, 1)
	assert.Equal(t, "Errands", tags[0].Name)
	assert.Equal(t, "#f80", tags[0].Color)

	require.NoError(t, f.m.DeleteTag(ctx, "g-errand"))
	snap := f.reload(t).Snapshot()
	assert.Empty(t, snap.Tags)
	assert.Empty(t, snap.TaskTags)
	assert.Empty(t, TagsOf(snap, "t-b"))
}

func TestTagsOfIgnoresOtherTasks(t *testing.T) {
	snap := model.Snapshot{
		Tags:     []model.Tag{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}},
		TaskTags: []model.TaskTag{{TaskID: "1", TagID: "y"}, {TaskID: "2", TagID: "x"}},
	}
	tags := TagsOf(snap, "1")
	require.Len(t, tags, 1)
	assert.Equal(t, "Y", tags[0].Name)
}
