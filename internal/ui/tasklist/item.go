package tasklist

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/view"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task    model.Task
	Tags    []model.Tag
	Project string
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// HeadingItem is a project heading row.
type HeadingItem struct {
	Heading model.Heading
}

// FilterValue returns the heading name.
func (i HeadingItem) FilterValue() string { return i.Heading.Name }

// SectionItem is a non-interactive label row, such as "This Evening".
type SectionItem struct {
	Label string
}

// FilterValue returns the label.
func (i SectionItem) FilterValue() string { return i.Label }

// rowState is shared by reference between the Model and its delegate so
// highlight and grab changes show up without rebuilding the delegate.
type rowState struct {
	now       time.Time
	highlight string
	grabbed   string
	project   bool
}

// ItemDelegate implements list.ItemDelegate for rendering list items.
type ItemDelegate struct {
	state *rowState
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused for now).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single list item line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	isSelected := index == m.Index()
	width := m.Width()

	var line string
	switch it := item.(type) {
	case TaskItem:
		line = d.renderTask(it, isSelected)
	case HeadingItem:
		line = theme.HeadingRowStyle.Render(it.Heading.Name)
		if isSelected {
			line = theme.SelectedItemStyle.Render(it.Heading.Name)
		}
	case SectionItem:
		line = theme.ListItemStyle.Render(theme.DimmedStyle.Render("── " + it.Label))
	default:
		return
	}

	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	fmt.Fprint(w, line)
}

// renderTask draws one task row: checkbox, emoji and title, then the
// context badges.
func (d ItemDelegate) renderTask(it TaskItem, isSelected bool) string {
	t := it.Task

	prefix := "○"
	switch t.Status {
	case model.TaskStatusCompleted:
		prefix = "✓"
	case model.TaskStatusCancelled:
		prefix = "✗"
	}
	if t.ID == d.state.grabbed {
		prefix = "≡"
	}

	title := t.Title
	if t.Emoji != "" {
		title = t.Emoji + " " + title
	}

	var badges []string
	if d.state.project {
		if t.Schedule != model.ScheduleNone && t.Schedule != model.ScheduleAnytime && !t.IsClosed() {
			badges = append(badges, theme.ScheduleStyle(t.Schedule).Render(t.Schedule.Label()))
		}
	} else if it.Project != "" {
		badges = append(badges, theme.DimmedStyle.Render(it.Project))
	}
	if tags := tagBadges(it.Tags); tags != "" {
		badges = append(badges, tags)
	}
	if t.Deadline != nil && !t.IsClosed() {
		label := "⚑ " + view.RelativeDay(*t.Deadline, d.state.now)
		if t.IsOverdue(d.state.now) {
			badges = append(badges, theme.OverdueStyle.Render(label))
		} else {
			badges = append(badges, theme.DeadlineStyle.Render(label))
		}
	}
	if t.Notes != "" {
		badges = append(badges, theme.DimmedStyle.Render("✎"))
	}

	line := prefix + " " + title
	if len(badges) > 0 {
		line += " " + strings.Join(badges, " ")
	}

	switch {
	case t.ID == d.state.grabbed:
		line = theme.GrabbedStyle.Render(line)
	case t.ID == d.state.highlight:
		line = theme.HighlightStyle.Render(line)
	case t.IsClosed():
		line = theme.DimmedStyle.Render(line)
	}

	if isSelected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// tagBadges renders up to two tag chips, with an ellipsis for the rest.
func tagBadges(tags []model.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	shown := tags
	if len(shown) > 2 {
		shown = shown[:2]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, tag := range shown {
		parts = append(parts, theme.TagStyle(tag.Color).Render("#"+tag.Name))
	}
	if len(tags) > len(shown) {
		parts = append(parts, theme.DimmedStyle.Render("…"))
	}
	return strings.Join(parts, "")
}
