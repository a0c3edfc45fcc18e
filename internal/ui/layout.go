package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/theme"
)

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
	SidebarWidth    int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1. The sidebar takes a
// quarter of the width, between 22 and 34 columns, and disappears on
// very narrow terminals.
func NewLayout(width, height int) Layout {
	sidebar := min(max(width/4, 22), 34)
	if width < 60 {
		sidebar = 0
	}
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
		SidebarWidth:    sidebar,
	}
}

// ContentWidth returns the width left for the main panel next to the
// sidebar.
func (l Layout) ContentWidth() int {
	return max(l.Width-l.SidebarWidth, 0)
}

// ContentTop returns the screen row where the body starts.
func (l Layout) ContentTop() int {
	return l.HeaderHeight
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with a title and a right-aligned
// status, such as the active sort mode.
func (l Layout) RenderHeader(title string, status string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(status)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		statusRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	return l.renderBar(theme.StatusBarStyle.Render(hints))
}

// RenderError renders the status bar showing an error message.
func (l Layout) RenderError(msg string) string {
	return l.renderBar(theme.ErrorStyle.Render(msg))
}

func (l Layout) renderBar(rendered string) string {
	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderBody places the sidebar to the left of the main panel.
func (l Layout) RenderBody(sidebar, main string) string {
	height := l.ContentHeight()
	mainPanel := lipgloss.NewStyle().
		Width(l.ContentWidth()).
		Height(height).
		MaxHeight(height).
		Render(main)
	if l.SidebarWidth == 0 {
		return mainPanel
	}
	side := theme.SidebarStyle.
		Width(l.SidebarWidth - theme.SidebarStyle.GetHorizontalBorderSize()).
		Height(height).
		MaxHeight(height).
		Render(sidebar)
	return lipgloss.JoinHorizontal(lipgloss.Top, side, mainPanel)
}

// RenderOverlay centers a modal box over the body area.
func (l Layout) RenderOverlay(box string) string {
	return lipgloss.Place(
		l.Width,
		l.ContentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		theme.OverlayStyle.Render(box),
	)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}

// SidebarInnerWidth returns the text width available inside the sidebar.
func (l Layout) SidebarInnerWidth() int {
	return max(l.SidebarWidth-theme.SidebarStyle.GetHorizontalFrameSize(), 0)
}
