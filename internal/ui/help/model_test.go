package help

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/nhle/gtd/internal/keys"
)

func TestViewListsAllGroups(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 160, 40)
	out := m.View()

	for _, want := range []string{"Keyboard Shortcuts", "new task", "search", "next week", "grab"} {
		assert.Contains(t, out, want)
	}
}

func TestViewTitlesSectionsAndWraps(t *testing.T) {
	wide := New(keys.DefaultKeyMap(), 200, 40).View()
	narrow := New(keys.DefaultKeyMap(), 60, 60).View()

	for _, title := range sectionTitles {
		assert.Contains(t, wide, title)
		assert.Contains(t, narrow, title)
	}
	assert.LessOrEqual(t, lipgloss.Width(narrow), 60)
}
