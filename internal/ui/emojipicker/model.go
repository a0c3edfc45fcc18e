package emojipicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/emoji"
	"github.com/nhle/gtd/internal/theme"
)

// cellWidth is the rendered width of one grid cell.
const cellWidth = 4

// PickedMsg is emitted when an emoji is chosen. An empty Char clears the
// target's emoji.
type PickedMsg struct {
	TargetID string
	Char     string
}

// CancelMsg is emitted when the picker is dismissed.
type CancelMsg struct{}

var (
	upKey    = key.NewBinding(key.WithKeys("up"))
	downKey  = key.NewBinding(key.WithKeys("down"))
	leftKey  = key.NewBinding(key.WithKeys("left"))
	rightKey = key.NewBinding(key.WithKeys("right"))
	groupKey = key.NewBinding(key.WithKeys("tab"))
	pickKey  = key.NewBinding(key.WithKeys("enter"))
	clearKey = key.NewBinding(key.WithKeys("ctrl+x"))
	closeKey = key.NewBinding(key.WithKeys("esc"))
)

// Model is the emoji catalog overlay.
type Model struct {
	input    textinput.Model
	targetID string
	group    int // -1 shows every group
	items    []emoji.Emoji
	cursor   int
	width    int
	height   int
}

// New creates a new emoji picker.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "filter by name or keyword"
	ti.Prompt = "> "

	m := Model{input: ti, group: -1, width: width, height: height}
	m.refilter()
	return m
}

// Open resets the picker for the record targetID.
func (m *Model) Open(targetID string) tea.Cmd {
	m.targetID = targetID
	m.group = -1
	m.input.Reset()
	m.refilter()
	return m.input.Focus()
}

// TargetID returns the record the picker was opened for.
func (m Model) TargetID() string {
	return m.targetID
}

// Items returns the emoji currently listed.
func (m Model) Items() []emoji.Emoji {
	return m.items
}

// Selected returns the emoji under the cursor.
func (m Model) Selected() (emoji.Emoji, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return emoji.Emoji{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) refilter() {
	q := m.input.Value()
	switch {
	case strings.TrimSpace(q) != "":
		m.items = emoji.Search(q)
	case m.group >= 0:
		m.items = emoji.ByGroup(emoji.Groups[m.group])
	default:
		m.items = emoji.Catalog
	}
	m.cursor = 0
}

func (m Model) columns() int {
	return max((m.boxWidth()-2)/cellWidth, 1)
}

func (m Model) rows() int {
	return max(m.height-12, 3)
}

func (m Model) boxWidth() int {
	return min(max(m.width-8, 24), 64)
}

// Update handles messages for the picker.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cols := m.columns()
		switch {
		case key.Matches(msg, closeKey):
			return m, func() tea.Msg { return CancelMsg{} }
		case key.Matches(msg, pickKey):
			e, ok := m.Selected()
			if !ok {
				return m, nil
			}
			out := PickedMsg{TargetID: m.targetID, Char: e.Char}
			return m, func() tea.Msg { return out }
		case key.Matches(msg, clearKey):
			out := PickedMsg{TargetID: m.targetID}
			return m, func() tea.Msg { return out }
		case key.Matches(msg, groupKey):
			m.group++
			if m.group >= len(emoji.Groups) {
				m.group = -1
			}
			m.input.Reset()
			m.refilter()
			return m, nil
		case key.Matches(msg, leftKey):
			m.move(-1)
			return m, nil
		case key.Matches(msg, rightKey):
			m.move(1)
			return m, nil
		case key.Matches(msg, upKey):
			m.move(-cols)
			return m, nil
		case key.Matches(msg, downKey):
			m.move(cols)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.items)-1)
}

// View renders the picker.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)

	group := "All"
	if m.group >= 0 {
		group = emoji.Groups[m.group]
	}
	lines := []string{
		titleStyle.Render("Choose Emoji") + "  " + theme.DimmedStyle.Render(group),
		m.input.View(),
		"",
	}

	if len(m.items) == 0 {
		lines = append(lines, theme.DimmedStyle.Render("No emoji match."))
	} else {
		cols, rows := m.columns(), m.rows()
		first := (m.cursor / cols / rows) * rows * cols
		cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
		for r := 0; r < rows; r++ {
			start := first + r*cols
			if start >= len(m.items) {
				break
			}
			var row strings.Builder
			for i := start; i < min(start+cols, len(m.items)); i++ {
				if i == m.cursor {
					row.WriteString(cell.Inherit(theme.SelectedItemStyle).Render(m.items[i].Char))
				} else {
					row.WriteString(cell.Render(m.items[i].Char))
				}
			}
			lines = append(lines, row.String())
		}
		if e, ok := m.Selected(); ok {
			lines = append(lines, "", theme.DimmedStyle.Render(e.Name))
		}
	}

	lines = append(lines, "", theme.HelpStyle.Render("arrows move · tab group · enter pick · ctrl+x clear · esc close"))
	return lipgloss.NewStyle().Width(m.boxWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the picker dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = m.boxWidth() - 4
}
