package spotlight

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/search"
	"github.com/nhle/gtd/internal/theme"
)

// maxResults caps the number of rows shown.
const maxResults = 10

// NavigateMsg is emitted when the user picks a result.
type NavigateMsg struct {
	Result search.Result
}

var (
	nextKey = key.NewBinding(key.WithKeys("down", "ctrl+n"))
	prevKey = key.NewBinding(key.WithKeys("up", "ctrl+p"))
	pickKey = key.NewBinding(key.WithKeys("enter"))
)

// Model is the spotlight search overlay.
type Model struct {
	input   textinput.Model
	snap    model.Snapshot
	results []search.Result
	cursor  int
	width   int
	height  int
}

// New creates a new spotlight model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "search tasks and projects..."
	ti.Prompt = "🔍 "
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Open resets the query and searches snap from now on.
func (m *Model) Open(snap model.Snapshot) tea.Cmd {
	m.snap = snap
	m.input.Reset()
	m.results = nil
	m.cursor = 0
	return m.input.Focus()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Results returns the current matches.
func (m Model) Results() []search.Result {
	return m.results
}

// Update handles messages for the spotlight.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, pickKey):
			if m.cursor >= len(m.results) {
				return m, nil
			}
			r := m.results[m.cursor]
			return m, func() tea.Msg {
				return NavigateMsg{Result: r}
			}
		case key.Matches(msg, nextKey):
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
			}
			return m, nil
		case key.Matches(msg, prevKey):
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.results = search.Search(m.snap, m.input.Value(), maxResults)
		m.cursor = 0
	}
	return m, cmd
}

// View renders the spotlight.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	lines := []string{titleStyle.Render("Quick Find"), m.input.View(), ""}

	switch {
	case strings.TrimSpace(m.input.Value()) == "":
		lines = append(lines, theme.HelpStyle.Render("Type to search. ↑/↓ select, enter to jump, esc to close."))
	case len(m.results) == 0:
		lines = append(lines, theme.DimmedStyle.Render("No results."))
	}

	for i, r := range m.results {
		row := r.Emoji
		if row != "" {
			row += " "
		}
		row += highlight(r.Title, r.Matched) + "  " + theme.DimmedStyle.Render(r.Context)
		if r.Closed {
			row = theme.DimmedStyle.Render("✓ ") + row
		}
		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(row))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(row))
		}
	}

	return lipgloss.NewStyle().
		Width(m.boxWidth()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// highlight bolds the matched characters of title.
func highlight(title string, matched []int) string {
	if len(matched) == 0 {
		return title
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}
	hit := lipgloss.NewStyle().Bold(true).Underline(true)
	var b strings.Builder
	for i, r := range title {
		if set[i] {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m Model) boxWidth() int {
	return min(max(m.width-8, 30), 80)
}

// SetSize updates the spotlight dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = m.boxWidth() - 4
}
