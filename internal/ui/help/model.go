// Package help renders the keyboard reference overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/keys"
	"github.com/nhle/gtd/internal/theme"
)

// sectionTitles name the groups of keys.KeyMap.FullHelp, in order.
var sectionTitles = []string{
	"Navigate",
	"Views",
	"Create",
	"To-Do",
	"Arrange",
	"When",
	"Project",
}

// Model is the help overlay.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates the help overlay.
func New(k *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.ShowAll = true
	m := Model{keys: k, help: h}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the parent closes the overlay.
func (m Model) Update(tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders one titled block per key group, laid out in columns that
// wrap to the available width.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Keyboard Shortcuts")

	var blocks []string
	for i, group := range m.keys.FullHelp() {
		blocks = append(blocks, m.section(sectionTitle(i), group))
	}

	inner := max(m.width-8, 20)
	var rows []string
	var row []string
	used := 0
	for _, b := range blocks {
		w := lipgloss.Width(b)
		if len(row) > 0 && used+w > inner {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, b)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	hint := theme.HelpStyle.Render("Drag tasks with the mouse, or grab with space and move with J/K.")
	content := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n\n"), "", hint)

	return theme.DetailPanelStyle.
		Width(max(m.width-4, 0)).
		Height(max(m.height-4, 0)).
		Render(content)
}

func sectionTitle(i int) string {
	if i < len(sectionTitles) {
		return sectionTitles[i]
	}
	return ""
}

func (m Model) section(title string, bindings []key.Binding) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).Render(title)
	body := m.help.FullHelpView([][]key.Binding{bindings})
	return lipgloss.NewStyle().PaddingRight(4).Render(heading + "\n" + body)
}

// SetSize updates the overlay dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = max(width-8, 0)
}
