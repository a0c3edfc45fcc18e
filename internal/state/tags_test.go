package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTag(t *testing.T) {
	f := newWith(t, fixtureData())
	ctx := context.Background()

	tag, err := f.m.CreateTag(ctx, "  Focus ", "#5B9BD5")
	require.NoError(t, err)
	assert.Equal(t, "new-01", tag.ID)
	assert.Equal(t, "Focus", tag.Name)
	assert.Equal(t, base, tag.CreatedAt)

	_, err = f.m.CreateTag(ctx, "errand", "")
	assert.ErrorIs(t, err, ErrInvalid, "names are unique ignoring case")
	_, err = f.m.CreateTag(ctx, " ", "")
	assert.ErrorIs(t, err, ErrInvalid)

	assert.Len(t, f.reload(t).Snapshot().Tags, 2)
}

func TestUpdateTag(t *testing.T) {
	f := newWith(t, fixtureData())
	ctx := context.Background()

	require.NoError(t, f.m.UpdateTag(ctx, "g-errand", "ERRAND", "#FFA94D"), "renaming to itself is allowed")
	tags := TagsOf(f.m.Snapshot(), "t-b")
	require.Len(t, tags, 1)
	assert.Equal(t, "ERRAND", tags[0].Name)
	assert.Equal(t, "#FFA94D", tags[0].Color)

	assert.ErrorIs(t, f.m.UpdateTag(ctx, "g-missing", "x", ""), ErrNotFound)
}

func TestDeleteTagUnlinksTasks(t *testing.T) {
	f := newWith(t, fixtureData())

	require.NoError(t, f.m.DeleteTag(context.Background(), "g-errand"))

	snap := f.reload(t).Snapshot()
	assert.Empty(t, snap.Tags)
	assert.Empty(t, snap.TaskTags)
	assert.Empty(t, TagsOf(snap, "t-b"))
	assert.ErrorIs(t, f.m.DeleteTag(context.Background(), "g-errand"), ErrNotFound)
}

func TestTagsOfKeepsTagOrder(t *testing.T) {
	f := newWith(t, fixtureData())
	ctx := context.Background()
	focus, err := f.m.CreateTag(ctx, "Focus", "")
	require.NoError(t, err)

	require.NoError(t, f.m.SetTaskTags(ctx, "t-b", []string{focus.ID, "g-errand"}))
	tags := TagsOf(f.m.Snapshot(), "t-b")
	require.Len(t, tags, 2)
	assert.Equal(t, "g-errand", tags[0].ID)
	assert.Equal(t, focus.ID, tags[1].ID)

	assert.Empty(t, TagsOf(f.m.Snapshot(), "t-a"))
}
