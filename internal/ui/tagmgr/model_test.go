package tagmgr

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/keys"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/testutil"
)

func newOverlay(t *testing.T) (Model, *state.Manager) {
	t.Helper()
	mgr, err := state.Load(context.Background(), testutil.NewTestStore(t))
	require.NoError(t, err)

	m := New(mgr, keys.DefaultKeyMap(), 80, 30)
	m.Open()
	return m, mgr
}

func press(m Model, s string) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func names(m Model) []string {
	out := make([]string, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.tag.Name
	}
	return out
}

func TestOpenListsSeedTagsWithUsage(t *testing.T) {
	m, _ := newOverlay(t)

	assert.Equal(t, []string{"Errand", "Focus"}, names(m))
	for _, r := range m.rows {
		assert.Equal(t, 1, r.uses, r.tag.Name)
	}
	assert.Contains(t, m.View(), "1 to-dos")
}

func TestCreateTag(t *testing.T) {
	m, mgr := newOverlay(t)

	m, _ = press(m, "n")
	require.Equal(t, modeForm, m.mode)
	m.fb.name = "Calls"
	m.fb.color = "#FF0000"

	m, cmd := m.Update(m.saveTag()())
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Tag created", m.notice)
	require.NotNil(t, cmd)
	assert.Equal(t, ChangedMsg{}, cmd())

	assert.Equal(t, []string{"Calls", "Errand", "Focus"}, names(m))
	assert.Len(t, mgr.Snapshot().Tags, 3)
}

func TestEditKeepsCursorTag(t *testing.T) {
	m, mgr := newOverlay(t)

	m, _ = press(m, "j")
	m, _ = press(m, "e")
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, "Focus", m.fb.name)

	m.fb.name = "Deep work"
	m, _ = m.Update(m.saveTag()())
	assert.Equal(t, "Tag saved", m.notice)
	assert.Equal(t, []string{"Deep work", "Errand"}, names(m))

	var found bool
	for _, tag := range mgr.Snapshot().Tags {
		found = found || tag.Name == "Deep work"
	}
	assert.True(t, found)
}

func TestDuplicateTagNameIsReported(t *testing.T) {
	m, _ := newOverlay(t)

	m, _ = press(m, "n")
	m.fb.name = "errand"
	m, _ = m.Update(m.saveTag()())

	assert.Equal(t, "A tag with that name already exists", m.notice)
	assert.Len(t, m.rows, 2)
}

func TestDeleteAsksFirst(t *testing.T) {
	m, mgr := newOverlay(t)

	m, _ = press(m, "d")
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), `Delete tag "Errand"?`)

	m, _ = m.Update(m.deleteTag(m.editID)())
	assert.Equal(t, "Tag deleted", m.notice)
	assert.Equal(t, []string{"Focus"}, names(m))
	assert.Len(t, mgr.Snapshot().TaskTags, 1)
}

func TestEscLeavesFormThenCloses(t *testing.T) {
	m, _ := newOverlay(t)

	m, _ = press(m, "e")
	require.Equal(t, modeForm, m.mode)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())
}

func TestValidateColor(t *testing.T) {
	assert.NoError(t, validateColor(""))
	assert.NoError(t, validateColor("#6BCB77"))
	assert.NoError(t, validateColor("#abc"))
	assert.Error(t, validateColor("green"))
	assert.Error(t, validateColor("#12345G"))
}
