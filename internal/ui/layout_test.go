package ui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayoutSidebarWidth(t *testing.T) {
	tests := []struct {
		width   int
		sidebar int
	}{
		{width: 50, sidebar: 0},
		{width: 80, sidebar: 22},
		{width: 120, sidebar: 30},
		{width: 200, sidebar: 34},
	}
	for _, tt := range tests {
		l := NewLayout(tt.width, 40)
		assert.Equal(t, tt.sidebar, l.SidebarWidth, "width %d", tt.width)
		assert.Equal(t, tt.width-tt.sidebar, l.ContentWidth())
		assert.Equal(t, 38, l.ContentHeight())
	}
}

func TestRenderBodyFillsContentArea(t *testing.T) {
	l := NewLayout(100, 12)
	out := l.RenderBody("sidebar", "main")

	assert.Equal(t, l.ContentHeight(), lipgloss.Height(out))
	assert.Equal(t, 100, lipgloss.Width(out))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2026-10-14")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, "2026-10-14", FormatDate(d))

	_, err = ParseDate("14/10/2026")
	assert.Error(t, err)
	assert.Error(t, ValidateDate("tomorrow"))
	assert.Error(t, ValidateRequired("Title")(" "))
}
