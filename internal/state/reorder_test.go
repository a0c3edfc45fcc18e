package state

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/view"
)

func listData() model.Snapshot {
	snap := fixtureData()
	snap.Preferences.ManualOrder = nil
	for i := range 4 {
		id := string(rune('w' + i))
		snap.Tasks = append(snap.Tasks, model.Task{
			ID: id, Title: id, Status: model.TaskStatusActive,
			Schedule: model.ScheduleSomeday, Position: 10 + i*10,
			CreatedAt: base, UpdatedAt: base,
		})
	}
	return snap
}

var someday = model.BucketView(model.ScheduleSomeday)

func TestReorderTasksTouchesOnlyTheRange(t *testing.T) {
	f := newWith(t, listData())
	order := []string{"w", "x", "y", "z"}

	require.NoError(t, f.m.ReorderTasks(context.Background(), someday, order, "w", 2))

	positions := map[string]int{}
	for _, id := range order {
		positions[id] = task(t, f.m, id).Position
	}
	assert.Equal(t, map[string]int{"x": 10, "y": 20, "w": 30, "z": 40}, positions)

	snap := f.reload(t).Snapshot()
	assert.Equal(t, []string{"x", "y", "w", "z"}, snap.Preferences.ManualOrder[someday.Key()])
	assert.Equal(t, []string{"x", "y", "w", "z"}, ids(view.Filter(snap.Tasks, someday, snap.Preferences).Tasks))
}

func TestReorderTasksRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, listData())
	order := []string{"w", "x", "y", "z"}

	assert.ErrorIs(t, f.m.ReorderTasks(ctx, someday, order, "t-a", 0), ErrInvalid)
	assert.ErrorIs(t, f.m.ReorderTasks(ctx, someday, order, "w", 4), ErrInvalid)
	assert.ErrorIs(t, f.m.ReorderTasks(ctx, someday, []string{"w", "ghost"}, "w", 1), ErrNotFound)
	require.NoError(t, f.m.ReorderTasks(ctx, someday, order, "w", 0))
	assert.Nil(t, f.m.Snapshot().Preferences.ManualOrder)
}

func TestReorderProjectViewSwitchesToManual(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())
	require.NoError(t, f.m.SetProjectSort(ctx, "p-web", model.SortTitle))
	_, err := f.m.CreateTask(ctx, NewTask{Title: "Another"}, model.ProjectView("p-web"))
	require.NoError(t, err)

	snap := f.m.Snapshot()
	shown := ids(view.Filter(snap.Tasks, model.ProjectView("p-web"), snap.Preferences).Tasks)
	require.Len(t, shown, 2)

	require.NoError(t, f.m.ReorderTasks(ctx, model.ProjectView("p-web"), shown, shown[1], 0))
	snap = f.m.Snapshot()
	assert.Equal(t, model.SortManual, snap.Preferences.SortFor("p-web"))
	assert.Equal(t, []string{shown[1], shown[0]},
		ids(view.Filter(snap.Tasks, model.ProjectView("p-web"), snap.Preferences).Tasks))
}

func TestReorderProjectsWithinSidebarGroup(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())
	_, err := f.m.CreateProject(ctx, ProjectInput{Name: "Third"})
	require.NoError(t, err)

	// p-other and Third share the no-area group.
	require.NoError(t, f.m.ReorderProjects(ctx, "new-01", 0))
	groups := view.Sidebar(f.m.Snapshot().Areas, f.m.Snapshot().Projects)
	require.Len(t, groups, 2)
	assert.Equal(t, "new-01", groups[0].Projects[0].ID)
	assert.Equal(t, "p-other", groups[0].Projects[1].ID)

	assert.ErrorIs(t, f.m.ReorderProjects(ctx, "nope", 0), ErrNotFound)
	assert.ErrorIs(t, f.m.ReorderProjects(ctx, "p-web", 1), ErrInvalid)
}

func TestApplyDropTargets(t *testing.T) {
	ctx := context.Background()
	f := newWith(t, fixtureData())

	require.NoError(t, f.m.ApplyDrop(ctx, dnd.Drop{TaskID: "t-inbox", Target: dnd.HeadingTarget("p-web", "h-design")}))
	got := task(t, f.m, "t-inbox")
	assert.Equal(t, "p-web", *got.ProjectID)
	assert.Equal(t, "h-design", *got.HeadingID)

	require.NoError(t, f.m.ApplyDrop(ctx, dnd.Drop{TaskID: "t-inbox", Target: dnd.BucketTarget(model.ScheduleThisWeek)}))
	got = task(t, f.m, "t-inbox")
	assert.Equal(t, model.ScheduleThisWeek, got.Schedule)
	assert.Nil(t, got.HeadingID)

	require.NoError(t, f.m.ApplyDrop(ctx, dnd.Drop{TaskID: "t-inbox", Target: dnd.ProjectTarget("p-other")}))
	assert.Equal(t, "p-other", *task(t, f.m, "t-inbox").ProjectID)

	require.NoError(t, f.m.ApplyDrop(ctx, dnd.Drop{TaskID: "t-inbox", Target: dnd.InboxTarget()}))
	assert.Equal(t, model.TaskStatusInbox, task(t, f.m, "t-inbox").Status)

	assert.ErrorIs(t, f.m.ApplyDrop(ctx, dnd.Drop{TaskID: "t-inbox"}), ErrInvalid)
}

func TestMouseAndKeyboardDropsConverge(t *testing.T) {
	ctx := context.Background()
	order := []string{"w", "x", "y", "z"}

	mouse := newWith(t, listData())
	var g dnd.Gesture
	require.True(t, g.Begin(dnd.SourceMouse, someday, order, "z"))
	g.HoverIndex(1)
	drop, ok := g.Drop()
	require.True(t, ok)
	require.NoError(t, mouse.m.ApplyDrop(ctx, drop))

	keys := newWith(t, listData())
	require.True(t, g.Begin(dnd.SourceKeyboard, someday, order, "z"))
	g.MoveBy(-1)
	g.MoveBy(-1)
	drop, ok = g.Drop()
	require.True(t, ok)
	require.NoError(t, keys.m.ApplyDrop(ctx, drop))

	assert.Equal(t, mouse.m.Snapshot(), keys.m.Snapshot())
	assert.Equal(t, []string{"w", "z", "x", "y"}, mouse.m.Snapshot().Preferences.ManualOrder[someday.Key()])
}

// sectionData adds a second Website heading holding two tasks and an
// evening task to fixtureData.
func sectionData() model.Snapshot {
	snap := fixtureData()
	proj, build := "p-web", "h-build"
	snap.Headings = append(snap.Headings, model.Heading{
		ID: build, ProjectID: proj, Name: "Build", Position: 1, CreatedAt: base, UpdatedAt: base,
	})
	for i, id := range []string{"t-api", "t-ui"} {
		snap.Tasks = append(snap.Tasks, model.Task{
			ID: id, Title: id, ProjectID: &proj, HeadingID: &build,
			Status: model.TaskStatusActive, Schedule: model.ScheduleAnytime,
			Position: 10 + i, CreatedAt: base, UpdatedAt: base,
		})
	}
	snap.Tasks = append(snap.Tasks, model.Task{
		ID: "t-eve", Title: "Read", Status: model.TaskStatusActive,
		Schedule: model.ScheduleEvening, Position: 12, CreatedAt: base, UpdatedAt: base,
	})
	return snap
}

func projectGroups(snap model.Snapshot) map[string][]string {
	sel := model.ProjectView("p-web")
	out := map[string][]string{}
	for _, g := range view.GroupByHeading(view.Filter(snap.Tasks, sel, snap.Preferences).Tasks, snap.Headings, "p-web") {
		key := ""
		if g.Heading != nil {
			key = g.Heading.ID
		}
		out[key] = ids(g.Tasks)
	}
	return out
}

func TestReorderTasksAcrossHeadings(t *testing.T) {
	ctx := context.Background()
	web := model.ProjectView("p-web")
	shown := []string{
		view.HeadingDivider("h-design"), "t-design",
		view.HeadingDivider("h-build"), "t-api", "t-ui",
	}

	t.Run("to the end of the next heading", func(t *testing.T) {
		f := newWith(t, sectionData())
		require.NoError(t, f.m.ReorderTasks(ctx, web, shown, "t-design", 4))

		assert.Equal(t, "h-build", *task(t, f.m, "t-design").HeadingID)
		assert.Equal(t, map[string][]string{
			"h-design": {},
			"h-build":  {"t-api", "t-ui", "t-design"},
		}, projectGroups(f.reload(t).Snapshot()))
	})

	t.Run("right below the next heading", func(t *testing.T) {
		f := newWith(t, sectionData())
		require.NoError(t, f.m.ReorderTasks(ctx, web, shown, "t-design", 2))

		assert.Equal(t, map[string][]string{
			"h-design": {},
			"h-build":  {"t-design", "t-api", "t-ui"},
		}, projectGroups(f.m.Snapshot()))
	})

	t.Run("above every heading", func(t *testing.T) {
		f := newWith(t, sectionData())
		require.NoError(t, f.m.ReorderTasks(ctx, web, shown, "t-ui", 0))

		assert.Nil(t, task(t, f.m, "t-ui").HeadingID)
		assert.Equal(t, map[string][]string{
			"":         {"t-ui"},
			"h-design": {"t-design"},
			"h-build":  {"t-api"},
		}, projectGroups(f.m.Snapshot()))
	})
}

func TestReorderTasksBetweenDayAndEvening(t *testing.T) {
	ctx := context.Background()
	shown := []string{"t-b", "t-a", view.EveningDivider, "t-eve"}

	f := newWith(t, sectionData())
	require.NoError(t, f.m.ReorderTasks(ctx, model.TodayView, shown, "t-b", 3))

	assert.Equal(t, model.ScheduleEvening, task(t, f.m, "t-b").Schedule)
	snap := f.reload(t).Snapshot()
	assert.Equal(t, []string{"t-a", "t-eve", "t-b"}, ids(view.Filter(snap.Tasks, model.TodayView, snap.Preferences).Tasks))

	f = newWith(t, sectionData())
	require.NoError(t, f.m.ReorderTasks(ctx, model.TodayView, shown, "t-eve", 0))

	assert.Equal(t, model.ScheduleToday, task(t, f.m, "t-eve").Schedule)
	snap = f.m.Snapshot()
	assert.Equal(t, []string{"t-eve", "t-b", "t-a"}, ids(view.Filter(snap.Tasks, model.TodayView, snap.Preferences).Tasks))
}

func TestReorderTasksRejectsForeignSection(t *testing.T) {
	f := newWith(t, listData())
	before := f.m.Snapshot()

	err := f.m.ReorderTasks(context.Background(), someday, []string{"w", view.EveningDivider, "x"}, "w", 1)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, before, f.m.Snapshot())
}

func TestReorderTasksSpreadsTiedPositions(t *testing.T) {
	snap := listData()
	for i := range snap.Tasks {
		switch snap.Tasks[i].ID {
		case "x":
			snap.Tasks[i].Position = 10
		case "t-b":
			snap.Tasks[i].Position = 11
		}
	}
	f := newWith(t, snap)

	require.NoError(t, f.m.ReorderTasks(context.Background(), someday, []string{"w", "x", "y", "z"}, "w", 1))

	tasks := f.m.Snapshot().Tasks
	seen := map[int]string{}
	for _, tk := range tasks {
		other, dup := seen[tk.Position]
		assert.False(t, dup, "%s and %s share position %d", tk.ID, other, tk.Position)
		seen[tk.Position] = tk.ID
	}
	byPosition := slices.Clone(tasks)
	slices.SortFunc(byPosition, func(a, b model.Task) int { return a.Position - b.Position })
	assert.Equal(t,
		[]string{"t-inbox", "t-a", "t-design", "t-done", "x", "w", "t-b", "y", "z"},
		ids(byPosition),
	)
}

func TestReorderSiblingsRenumbersTies(t *testing.T) {
	held := map[string]int{"a": 0, "b": 0, "c": 1}

	got, err := reorderSiblings([]string{"a", "b", "c"}, "c", 0, func(id string) int { return held[id] })
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"c": 0, "a": 1, "b": 2}, got)
}
