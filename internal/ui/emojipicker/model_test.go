package emojipicker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gtd/internal/emoji"
)

func TestOpenListsCatalog(t *testing.T) {
	m := New(80, 30)
	m.Open("t-1")
	assert.Equal(t, "t-1", m.TargetID())
	assert.Len(t, m.Items(), len(emoji.Catalog))
}

func TestFilterAndPick(t *testing.T) {
	m := New(80, 30)
	m.Open("t-1")
	for _, r := range "party" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.NotEmpty(t, m.Items())
	assert.Equal(t, "🥳", m.Items()[0].Char)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, PickedMsg{TargetID: "t-1", Char: "🥳"}, cmd())
}

func TestArrowsMoveThroughGrid(t *testing.T) {
	m := New(80, 30)
	m.Open("t-1")
	cols := m.columns()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.cursor)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1+cols, m.cursor)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.cursor)
}

func TestTabCyclesGroups(t *testing.T) {
	m := New(80, 30)
	m.Open("t-1")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotEmpty(t, m.Items())
	for _, e := range m.Items() {
		assert.Equal(t, emoji.Groups[0], e.Group)
	}
	assert.Contains(t, m.View(), emoji.Groups[0])
}

func TestClearAndCancel(t *testing.T) {
	m := New(80, 30)
	m.Open("p-1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.NotNil(t, cmd)
	assert.Equal(t, PickedMsg{TargetID: "p-1"}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
}
