package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

var (
	// HeaderStyle is used for the application title bar.
	HeaderStyle lipgloss.Style

	// StatusBarStyle is used for the bottom status bar.
	StatusBarStyle lipgloss.Style

	// ErrorStyle renders failures in the status bar.
	ErrorStyle lipgloss.Style

	// DetailPanelStyle wraps the task inspector.
	DetailPanelStyle lipgloss.Style

	// OverlayStyle frames modal overlays (search, forms, pickers).
	OverlayStyle lipgloss.Style

	// ListItemStyle is the base style for items in a list.
	ListItemStyle lipgloss.Style

	// SelectedItemStyle highlights the currently focused list item.
	SelectedItemStyle lipgloss.Style

	// HelpStyle is used for keyboard shortcut hints and help text.
	HelpStyle lipgloss.Style

	// BorderStyle provides a standard rounded border for panels.
	BorderStyle lipgloss.Style

	// SidebarStyle frames the navigation column.
	SidebarStyle lipgloss.Style

	// SidebarActiveStyle marks the view being shown.
	SidebarActiveStyle lipgloss.Style

	// SidebarGroupStyle renders area names and section labels.
	SidebarGroupStyle lipgloss.Style

	// TitleStyle renders the name of the current view above the list.
	TitleStyle lipgloss.Style

	// HeadingRowStyle renders project headings inside the task list.
	HeadingRowStyle lipgloss.Style

	// DimmedStyle renders closed tasks and secondary text.
	DimmedStyle lipgloss.Style

	// DeadlineStyle renders an upcoming deadline.
	DeadlineStyle lipgloss.Style

	// OverdueStyle renders a deadline that has passed.
	OverdueStyle lipgloss.Style

	// HighlightStyle flashes the row a search result jumped to.
	HighlightStyle lipgloss.Style

	// GrabbedStyle marks the row being dragged.
	GrabbedStyle lipgloss.Style

	// DropTargetStyle marks the sidebar entry under a drag.
	DropTargetStyle lipgloss.Style
)

func init() {
	Apply("default")
}

// Apply rebuilds the styles for the named theme. "mono" drops all colors;
// any other name selects the default palette.
func Apply(name string) {
	accent := lipgloss.TerminalColor(ColorBlue)
	fg := lipgloss.TerminalColor(ColorWhite)
	subtle := lipgloss.TerminalColor(ColorSubtle)
	border := lipgloss.TerminalColor(ColorBorder)
	muted := lipgloss.TerminalColor(ColorGray)
	red := lipgloss.TerminalColor(ColorRed)
	orange := lipgloss.TerminalColor(ColorOrange)
	yellow := lipgloss.TerminalColor(ColorYellow)
	if name == "mono" {
		none := lipgloss.NoColor{}
		accent, fg, subtle, border, muted = none, none, none, none, none
		red, orange, yellow = none, none, none
	}

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(fg).
		Background(accent).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(fg).
		Background(subtle).
		Padding(0, 1)

	ErrorStyle = StatusBarStyle.
		Bold(true).
		Foreground(red)

	DetailPanelStyle = lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)

	OverlayStyle = lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent)

	ListItemStyle = lipgloss.NewStyle().
		PaddingLeft(2)

	SelectedItemStyle = lipgloss.NewStyle().
		PaddingLeft(1).
		Bold(true).
		Foreground(accent).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accent)

	HelpStyle = lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)

	BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)

	SidebarStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border)

	SidebarActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	SidebarGroupStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(muted)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(fg).
		PaddingLeft(2).
		MarginBottom(1)

	HeadingRowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Underline(true).
		PaddingLeft(2)

	DimmedStyle = lipgloss.NewStyle().
		Foreground(muted)

	DeadlineStyle = lipgloss.NewStyle().
		Foreground(orange)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(red)

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(yellow).
		Reverse(name == "mono")

	GrabbedStyle = lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Foreground(yellow)

	DropTargetStyle = lipgloss.NewStyle().
		Bold(true).
		Reverse(true)
}

// ScheduleStyle returns a color-coded style for a schedule bucket label.
func ScheduleStyle(s model.Schedule) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)

	switch s {
	case model.ScheduleToday:
		return base.Foreground(ColorYellow)
	case model.ScheduleEvening:
		return base.Foreground(ColorMagenta)
	case model.ScheduleThisWeek, model.ScheduleNextWeek:
		return base.Foreground(ColorBlue)
	case model.ScheduleAnytime:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// TagStyle returns the style for a tag chip. Tags without a color of their
// own fall back to gray.
func TagStyle(color string) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if color == "" {
		return base.Foreground(ColorGray)
	}
	return base.Foreground(lipgloss.Color(color))
}

// ProjectStatusStyle returns a color-coded style for a project status.
func ProjectStatusStyle(status model.ProjectStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.ProjectStatusCompleted:
		return base.Foreground(ColorGreen)
	case model.ProjectStatusSomeday:
		return base.Foreground(ColorGray)
	default:
		return base.Foreground(ColorBlue)
	}
}
