package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/emoji"
	"github.com/nhle/gtd/internal/keys"
	"github.com/nhle/gtd/internal/logging"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/ui"
	"github.com/nhle/gtd/internal/ui/detail"
	"github.com/nhle/gtd/internal/ui/emojipicker"
	helpview "github.com/nhle/gtd/internal/ui/help"
	"github.com/nhle/gtd/internal/ui/moveto"
	"github.com/nhle/gtd/internal/ui/projectform"
	"github.com/nhle/gtd/internal/ui/prompt"
	"github.com/nhle/gtd/internal/ui/sidebar"
	"github.com/nhle/gtd/internal/ui/spotlight"
	"github.com/nhle/gtd/internal/ui/tagmgr"
	"github.com/nhle/gtd/internal/ui/taskform"
	"github.com/nhle/gtd/internal/ui/tasklist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewTaskForm
	ViewProjectForm
	ViewPrompt
	ViewTags
	ViewHelp
	ViewSearch
	ViewEmoji
	ViewMoveTo
)

// DefaultHighlight is how long a row found through search stays lit.
const DefaultHighlight = 1500 * time.Millisecond

// Option configures the root model.
type Option func(*Model)

// WithLogger sets the logger used for failed intents.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithNativePicker sets the desktop emoji picker tried before the catalog
// overlay.
func WithNativePicker(p emoji.NativePicker) Option {
	return func(m *Model) { m.picker = p }
}

// WithHighlight sets how long a highlighted row stays lit.
func WithHighlight(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.highlightFor = d
		}
	}
}

// WithShowCompleted sets whether project views list closed tasks.
func WithShowCompleted(show bool) Option {
	return func(m *Model) { m.taskList.SetShowClosed(show) }
}

// WithClock replaces time.Now for rendering relative dates.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the state manager.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	state        *state.Manager
	keys         *keys.KeyMap
	logger       *log.Logger
	picker       emoji.NativePicker
	now          func() time.Time
	highlightFor time.Duration

	sidebar     sidebar.Model
	taskList    tasklist.Model
	detail      detail.Model
	helpView    helpview.Model
	spotlight   spotlight.Model
	taskForm    taskform.Model
	projectForm projectform.Model
	prompt      prompt.Model
	tagView     tagmgr.Model
	emojiView   emojipicker.Model
	moveTo      moveto.Model

	snap         model.Snapshot
	gesture      dnd.Gesture
	dragMoved    bool
	emojiFor     emojiTarget
	highlightSeq int
	errMessage   string
	ready        bool
}

// New creates the root application model around a loaded state manager.
func New(s *state.Manager, opts ...Option) Model {
	k := keys.DefaultKeyMap()
	m := Model{
		currentView:  ViewList,
		state:        s,
		keys:         k,
		logger:       logging.Discard(),
		now:          time.Now,
		highlightFor: DefaultHighlight,
		layout:       ui.NewLayout(80, 24),
		sidebar:      sidebar.New(22, 22),
		taskList:     tasklist.New(k, 58, 22),
		detail:       detail.New(k, 58, 22),
		helpView:     helpview.New(k, 80, 22),
		spotlight:    spotlight.New(80, 22),
		taskForm:     taskform.New(80, 22),
		projectForm:  projectform.New(80, 22),
		prompt:       prompt.New(80, 22),
		tagView:      tagmgr.New(s, k, 80, 22),
		emojiView:    emojipicker.New(80, 22),
		moveTo:       moveto.New(80, 22),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("gtd")
}

// CurrentView returns the active view state.
func (m Model) CurrentView() ViewState {
	return m.currentView
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.ready = true
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case changedMsg:
		return m.handleChanged(msg)

	case clearHighlightMsg:
		if msg.seq == m.highlightSeq {
			m.taskList.SetHighlight("")
		}
		return m, nil

	case nativeEmojiMsg:
		return m.handleNativeEmoji(msg)

	case tasklist.SelectedTaskMsg:
		return m.openDetail(msg.TaskID), nil

	case detail.BackMsg:
		m.currentView = ViewList
		return m, nil

	case detail.ActionMsg:
		return m.taskAction(msg.Action, msg.TaskID)

	case taskform.TaskCreatedMsg:
		m.closeOverlay()
		return m, m.createTask(msg)

	case taskform.TaskUpdatedMsg:
		m.closeOverlay()
		return m, m.updateTask(msg)

	case taskform.TaskFormCancelMsg, projectform.ProjectFormCancelMsg,
		prompt.CancelMsg, emojipicker.CancelMsg, moveto.CancelMsg:
		m.closeOverlay()
		return m, nil

	case projectform.ProjectSubmittedMsg:
		m.closeOverlay()
		return m, m.saveProject(msg)

	case prompt.SubmittedMsg:
		m.closeOverlay()
		return m, m.promptSubmitted(msg)

	case spotlight.NavigateMsg:
		m.currentView = ViewList
		return m, m.navigateTo(msg.Result.View, focusFor(msg.Result))

	case emojipicker.PickedMsg:
		m.closeOverlay()
		return m, m.setEmoji(m.emojiFor, msg.Char)

	case moveto.ChosenMsg:
		m.closeOverlay()
		return m, m.applyDrop(msg.Drop)

	case tagmgr.CloseMsg:
		m.currentView = ViewList
		return m, nil

	case tagmgr.ChangedMsg:
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		if m.currentView == ViewList {
			return m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.gesture.Active() {
			return m.handleGrabKey(msg)
		}
		switch m.currentView {
		case ViewList:
			return m.handleListKey(msg)
		case ViewTaskForm, ViewProjectForm, ViewPrompt, ViewSearch:
			if key.Matches(msg, m.keys.Back) {
				m.closeOverlay()
				return m, nil
			}
		case ViewHelp:
			if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Help) {
				m.closeOverlay()
				return m, nil
			}
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		if m.sidebar.Focused() {
			return m, nil
		}
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewProjectForm:
		m.projectForm, cmd = m.projectForm.Update(msg)
	case ViewPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case ViewTags:
		m.tagView, cmd = m.tagView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewSearch:
		m.spotlight, cmd = m.spotlight.Update(msg)
	case ViewEmoji:
		m.emojiView, cmd = m.emojiView.Update(msg)
	case ViewMoveTo:
		m.moveTo, cmd = m.moveTo.Update(msg)
	}

	return m, cmd
}

// resize lays out every component for a new terminal size.
func (m *Model) resize(width, height int) {
	m.layout = ui.NewLayout(width, height)
	contentWidth := m.layout.ContentWidth()
	contentHeight := m.layout.ContentHeight()

	m.sidebar.SetSize(m.layout.SidebarInnerWidth(), contentHeight)
	m.taskList.SetSize(contentWidth, contentHeight)
	m.detail.SetSize(contentWidth, contentHeight)
	m.helpView.SetSize(width, contentHeight)
	m.spotlight.SetSize(width, contentHeight)
	m.taskForm.SetSize(width, contentHeight)
	m.projectForm.SetSize(width, contentHeight)
	m.prompt.SetSize(width, contentHeight)
	m.tagView.SetSize(width, contentHeight)
	m.emojiView.SetSize(width, contentHeight)
	m.moveTo.SetSize(width, contentHeight)
}

// open switches to an overlay, remembering where to return.
func (m *Model) open(v ViewState) {
	if m.currentView != v {
		m.previousView = m.currentView
	}
	m.currentView = v
}

// closeOverlay returns from an overlay to the list or the inspector.
func (m *Model) closeOverlay() {
	m.currentView = ViewList
	if m.previousView == ViewDetail && m.detail.TaskID() != "" {
		m.currentView = ViewDetail
	}
	m.previousView = ViewList
}

// refresh rebuilds every panel from the state manager.
func (m *Model) refresh() {
	snap := m.state.Snapshot()
	active := m.state.ActiveView()
	m.snap = snap

	m.sidebar.SetData(snap)
	if active != m.taskList.Current() {
		m.sidebar.SetActive(active)
	}
	m.taskList.SetView(active, snap, m.now())
	m.taskForm.SetOptions(snap.Projects, snap.Tags)
	m.projectForm.SetAreas(snap.Areas)

	if m.detail.TaskID() != "" && !m.detail.Refresh(snap, m.now()) && m.currentView == ViewDetail {
		m.currentView = ViewList
	}
}

// openDetail shows the inspector for a task.
func (m Model) openDetail(id string) Model {
	if m.detail.SetTask(id, m.snap, m.now()) {
		m.currentView = ViewDetail
	}
	return m
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("gtd · "+m.taskList.Title(), m.headerStatus())
	content := m.renderContent()

	statusBar := m.layout.RenderStatusBar(m.keyHints())
	if m.errMessage != "" {
		statusBar = m.layout.RenderError(m.errMessage)
	}

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.layout.RenderBody(m.sidebar.View(), m.taskList.View())
	case ViewDetail:
		return m.layout.RenderBody(m.sidebar.View(), m.detail.View())
	case ViewTaskForm:
		return m.layout.RenderOverlay(m.taskForm.View())
	case ViewProjectForm:
		return m.layout.RenderOverlay(m.projectForm.View())
	case ViewPrompt:
		return m.layout.RenderOverlay(m.prompt.View())
	case ViewTags:
		return m.layout.RenderOverlay(m.tagView.View())
	case ViewHelp:
		return m.layout.RenderOverlay(m.helpView.View())
	case ViewSearch:
		return m.layout.RenderOverlay(m.spotlight.View())
	case ViewEmoji:
		return m.layout.RenderOverlay(m.emojiView.View())
	case ViewMoveTo:
		return m.layout.RenderOverlay(m.moveTo.View())
	default:
		return ""
	}
}

// headerStatus shows the sort mode of a project view, otherwise today's
// date.
func (m Model) headerStatus() string {
	v := m.taskList.Current()
	if v.Kind == model.ViewKindProject {
		return "sort: " + m.snap.Preferences.SortFor(v.ProjectID).Label()
	}
	return m.now().Format("Mon Jan 2")
}
