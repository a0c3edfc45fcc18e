// Package tagmgr is the tag overlay: list tags with their usage and
// create, rename, recolor or delete them.
package tagmgr

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gtd/internal/keys"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/theme"
	"github.com/nhle/gtd/internal/ui"
)

// CloseMsg asks the parent to close the overlay.
type CloseMsg struct{}

// ChangedMsg reports that tags were created, edited or deleted.
type ChangedMsg struct{}

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
)

// savedMsg carries the outcome of a tag mutation.
type savedMsg struct {
	done string
	err  error
}

type formBindings struct {
	name    string
	color   string
	confirm bool
}

type row struct {
	tag  model.Tag
	uses int
}

// Model is the tag overlay.
type Model struct {
	state  *state.Manager
	keys   *keys.KeyMap
	mode   mode
	rows   []row
	cursor int
	editID string
	form   *huh.Form
	fb     *formBindings
	notice string
	width  int
	height int
}

// New creates the overlay.
func New(s *state.Manager, k *keys.KeyMap, width, height int) Model {
	return Model{state: s, keys: k, fb: &formBindings{}, width: width, height: height}
}

// Open reloads the tags and shows the list.
func (m *Model) Open() tea.Cmd {
	m.mode = modeList
	m.notice = ""
	m.reload()
	return nil
}

// reload rebuilds the rows from the current state, sorted by name.
func (m *Model) reload() {
	snap := m.state.Snapshot()
	uses := make(map[string]int, len(snap.Tags))
	for _, tt := range snap.TaskTags {
		uses[tt.TagID]++
	}
	rows := make([]row, 0, len(snap.Tags))
	for _, t := range snap.Tags {
		rows = append(rows, row{tag: t, uses: uses[t.ID]})
	}
	slices.SortStableFunc(rows, func(a, b row) int {
		return cmp.Compare(strings.ToLower(a.tag.Name), strings.ToLower(b.tag.Name))
	})
	m.rows = rows
	m.cursor = max(0, min(m.cursor, len(m.rows)-1))
}

func (m Model) selected() (model.Tag, bool) {
	if m.cursor >= len(m.rows) {
		return model.Tag{}, false
	}
	return m.rows[m.cursor].tag, true
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.mode = modeList
		switch {
		case errors.Is(msg.err, state.ErrInvalid):
			m.notice = "A tag with that name already exists"
		case msg.err != nil:
			m.notice = "Error: " + msg.err.Error()
		default:
			m.notice = msg.done
		}
		m.reload()
		return m, func() tea.Msg { return ChangedMsg{} }

	case tea.KeyMsg:
		if m.mode == modeList {
			return m.listKey(msg)
		}
		if key.Matches(msg, m.keys.Back) {
			m.mode = modeList
			return m, nil
		}
	}

	if m.mode == modeList || m.form == nil {
		return m, nil
	}
	return m.updateForm(msg)
}

func (m Model) listKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }
	case key.Matches(msg, m.keys.Down):
		if len(m.rows) > 0 {
			m.cursor = (m.cursor + 1) % len(m.rows)
		}
	case key.Matches(msg, m.keys.Up):
		if len(m.rows) > 0 {
			m.cursor = (m.cursor + len(m.rows) - 1) % len(m.rows)
		}
	case key.Matches(msg, m.keys.NewTask):
		m.editID = ""
		*m.fb = formBindings{}
		return m, m.startForm(m.editForm("New Tag"))
	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editID = t.ID
		*m.fb = formBindings{name: t.Name, color: t.Color}
		return m, m.startForm(m.editForm("Edit Tag"))
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editID = t.ID
		*m.fb = formBindings{}
		m.mode = modeConfirm
		m.form = m.confirmForm(t, m.rows[m.cursor].uses)
		return m, m.form.Init()
	}
	return m, nil
}

func (m *Model) startForm(f *huh.Form) tea.Cmd {
	m.mode = modeForm
	m.form = f
	return f.Init()
}

func (m Model) editForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Tag name").
				Value(&m.fb.name).
				Validate(ui.ValidateRequired("Name")),
			huh.NewInput().
				Title("Color").
				Placeholder("#6BCB77 (optional)").
				Value(&m.fb.color).
				Validate(validateColor),
		).Title(title),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
}

func (m Model) confirmForm(t model.Tag, uses int) *huh.Form {
	desc := "No to-dos carry this tag."
	if uses > 0 {
		desc = fmt.Sprintf("It will be removed from %d to-do(s).", uses)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete tag %q?", t.Name)).
				Description(desc).
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.fb.confirm),
		),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		if m.mode == modeConfirm {
			if !m.fb.confirm {
				m.mode = modeList
				return m, nil
			}
			return m, m.deleteTag(m.editID)
		}
		return m, m.saveTag()
	case huh.StateAborted:
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) saveTag() tea.Cmd {
	s := m.state
	id, name, color := m.editID, m.fb.name, m.fb.color
	return func() tea.Msg {
		ctx := context.Background()
		if id == "" {
			_, err := s.CreateTag(ctx, name, color)
			return savedMsg{done: "Tag created", err: err}
		}
		return savedMsg{done: "Tag saved", err: s.UpdateTag(ctx, id, name, color)}
	}
}

func (m Model) deleteTag(id string) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		return savedMsg{done: "Tag deleted", err: s.DeleteTag(context.Background(), id)}
	}
}

// View renders the list or the open form.
func (m Model) View() string {
	if m.mode != modeList && m.form != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render("Tags"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(theme.DimmedStyle.Italic(true).Render("No tags yet. Press n to create one."))
	}
	nameWidth := 0
	for _, r := range m.rows {
		nameWidth = max(nameWidth, lipgloss.Width(r.tag.Name))
	}
	for i, r := range m.rows {
		swatch := theme.TagStyle(r.tag.Color).Render("●")
		name := lipgloss.NewStyle().Width(nameWidth + 2).Render(r.tag.Name)
		uses := theme.DimmedStyle.Render(fmt.Sprintf("%d to-dos", r.uses))
		line := swatch + " " + name + uses
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorYellow).Italic(true).Render(m.notice))
	}
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func validateColor(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	errColor := errors.New("use a hex color like #6BCB77")
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return errColor
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return errColor
		}
	}
	return nil
}
