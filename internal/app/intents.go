package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/gtd/internal/dnd"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/search"
	"github.com/nhle/gtd/internal/state"
	"github.com/nhle/gtd/internal/ui/detail"
	"github.com/nhle/gtd/internal/ui/projectform"
	"github.com/nhle/gtd/internal/ui/prompt"
	"github.com/nhle/gtd/internal/ui/taskform"
)

// changedMsg is sent after an intent ran against the state manager.
// focus names a task to select and flash once the list is rebuilt.
type changedMsg struct {
	op    string
	err   error
	focus string
}

// clearHighlightMsg ends a row highlight. Stale ticks carry an old seq.
type clearHighlightMsg struct {
	seq int
}

// emojiTarget is the record an emoji pick applies to.
type emojiTarget struct {
	project bool
	id      string
}

// nativeEmojiMsg carries the result of the desktop picker.
type nativeEmojiMsg struct {
	target emojiTarget
	char   string
	err    error
}

// Prompt actions.
const (
	actionNewArea       = "new-area"
	actionRenameArea    = "rename-area"
	actionDeleteArea    = "delete-area"
	actionNewHeading    = "new-heading"
	actionRenameHeading = "rename-heading"
	actionDeleteProject = "delete-project"
)

// run wraps an intent in a command reporting a changedMsg.
func (m Model) run(op string, fn func(ctx context.Context, s *state.Manager) error) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		return changedMsg{op: op, err: fn(context.Background(), s)}
	}
}

// handleChanged logs failures and re-renders from the new state.
func (m Model) handleChanged(msg changedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.errMessage = ""
	case errors.Is(msg.err, state.ErrInvalid):
		m.logger.Debug("intent rejected", "op", msg.op, "err", msg.err)
	default:
		m.logger.Error("intent failed", "op", msg.op, "err", msg.err)
		m.errMessage = fmt.Sprintf("%s failed: %v", msg.op, msg.err)
	}

	m.refresh()
	if msg.focus == "" || !m.taskList.Select(msg.focus) {
		return m, nil
	}
	m.taskList.SetHighlight(msg.focus)
	m.highlightSeq++
	seq := m.highlightSeq
	return m, tea.Tick(m.highlightFor, func(time.Time) tea.Msg {
		return clearHighlightMsg{seq: seq}
	})
}

// navigate switches the active view.
func (m Model) navigate(v model.ViewSelector) tea.Cmd {
	return m.navigateTo(v, "")
}

// navigateTo switches the active view and then flashes focus.
func (m Model) navigateTo(v model.ViewSelector, focus string) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		err := s.SetActiveView(context.Background(), v)
		return changedMsg{op: "open " + v.Title(), err: err, focus: focus}
	}
}

// focusFor returns the task to flash after jumping to a search result.
func focusFor(r search.Result) string {
	if r.Kind == search.KindTask {
		return r.ID
	}
	return ""
}

func (m Model) createTask(msg taskform.TaskCreatedMsg) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		t, err := s.CreateTask(context.Background(), msg.Task, msg.Where)
		return changedMsg{op: "create task", err: err, focus: t.ID}
	}
}

// updateTask applies an edit form: text and dates first, then the
// bucket, project and tags that changed.
func (m Model) updateTask(msg taskform.TaskUpdatedMsg) tea.Cmd {
	return m.run("update task", func(ctx context.Context, s *state.Manager) error {
		if err := s.UpdateTask(ctx, msg.ID, msg.Edit); err != nil {
			return err
		}
		if msg.Schedule != nil {
			if err := s.SetSchedule(ctx, msg.ID, *msg.Schedule); err != nil {
				return err
			}
		}
		if msg.ProjectID != nil {
			if err := s.MoveTaskToProject(ctx, msg.ID, *msg.ProjectID); err != nil {
				return err
			}
		}
		if msg.TagIDs != nil {
			return s.SetTaskTags(ctx, msg.ID, msg.TagIDs)
		}
		return nil
	})
}

// saveProject creates a project and opens it, or updates an existing one.
func (m Model) saveProject(msg projectform.ProjectSubmittedMsg) tea.Cmd {
	if msg.ID == "" {
		return m.run("create project", func(ctx context.Context, s *state.Manager) error {
			p, err := s.CreateProject(ctx, msg.Input)
			if err != nil {
				return err
			}
			return s.SetActiveView(ctx, model.ProjectView(p.ID))
		})
	}
	return m.run("update project", func(ctx context.Context, s *state.Manager) error {
		if err := s.UpdateProject(ctx, msg.ID, msg.Input); err != nil {
			return err
		}
		if msg.Status != nil {
			return s.SetProjectStatus(ctx, msg.ID, *msg.Status)
		}
		return nil
	})
}

func (m Model) promptSubmitted(msg prompt.SubmittedMsg) tea.Cmd {
	id, value := msg.Purpose.ID, msg.Value
	switch msg.Purpose.Action {
	case actionNewArea:
		return m.run("create area", func(ctx context.Context, s *state.Manager) error {
			_, err := s.CreateArea(ctx, value)
			return err
		})
	case actionRenameArea:
		return m.run("rename area", func(ctx context.Context, s *state.Manager) error {
			return s.RenameArea(ctx, id, value)
		})
	case actionDeleteArea:
		return m.run("delete area", func(ctx context.Context, s *state.Manager) error {
			return s.DeleteArea(ctx, id)
		})
	case actionNewHeading:
		return m.run("create heading", func(ctx context.Context, s *state.Manager) error {
			_, err := s.CreateHeading(ctx, id, value)
			return err
		})
	case actionRenameHeading:
		return m.run("rename heading", func(ctx context.Context, s *state.Manager) error {
			return s.RenameHeading(ctx, id, value)
		})
	case actionDeleteProject:
		return m.run("delete project", func(ctx context.Context, s *state.Manager) error {
			return s.DeleteProject(ctx, id)
		})
	}
	return nil
}

// applyDrop carries out a finished drag or move-to choice.
func (m Model) applyDrop(d dnd.Drop) tea.Cmd {
	return m.run("move task", func(ctx context.Context, s *state.Manager) error {
		return s.ApplyDrop(ctx, d)
	})
}

// taskAction runs a task command from the list or the inspector.
func (m Model) taskAction(a detail.Action, id string) (tea.Model, tea.Cmd) {
	t, ok := m.findTask(id)
	if !ok {
		return m, nil
	}
	switch a {
	case detail.ActionEdit:
		m.open(ViewTaskForm)
		return m, m.taskForm.StartEdit(t, tagIDs(m.snap, id))
	case detail.ActionComplete:
		return m, m.run("complete task", func(ctx context.Context, s *state.Manager) error {
			return s.ToggleComplete(ctx, id)
		})
	case detail.ActionCancel:
		return m, m.run("cancel task", func(ctx context.Context, s *state.Manager) error {
			return s.Cancel(ctx, id)
		})
	case detail.ActionDelete:
		return m, m.run("delete task", func(ctx context.Context, s *state.Manager) error {
			return s.DeleteTask(ctx, id)
		})
	case detail.ActionEmoji:
		return m.pickEmoji(emojiTarget{id: id})
	case detail.ActionMove:
		m.moveTo.Open(t, m.snap)
		m.open(ViewMoveTo)
		return m, nil
	case detail.ActionPromote:
		s := m.state
		return m, func() tea.Msg {
			ctx := context.Background()
			p, err := s.PromoteTaskToProject(ctx, id)
			if err == nil {
				err = s.SetActiveView(ctx, model.ProjectView(p.ID))
			}
			return changedMsg{op: "promote task", err: err}
		}
	}
	return m, nil
}

// pickEmoji asks the desktop picker first and falls back to the catalog.
func (m Model) pickEmoji(target emojiTarget) (tea.Model, tea.Cmd) {
	m.emojiFor = target
	if m.picker == nil {
		return m.openEmojiOverlay(target)
	}
	p := m.picker
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		char, err := p.Open(ctx)
		return nativeEmojiMsg{target: target, char: char, err: err}
	}
}

func (m Model) openEmojiOverlay(target emojiTarget) (tea.Model, tea.Cmd) {
	m.emojiFor = target
	m.open(ViewEmoji)
	return m, m.emojiView.Open(target.id)
}

func (m Model) handleNativeEmoji(msg nativeEmojiMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Debug("native emoji picker failed, using catalog", "err", msg.err)
		return m.openEmojiOverlay(msg.target)
	}
	return m, m.setEmoji(msg.target, msg.char)
}

// setEmoji stores a picked emoji on a task or project.
func (m Model) setEmoji(target emojiTarget, char string) tea.Cmd {
	if !target.project {
		return m.run("set emoji", func(ctx context.Context, s *state.Manager) error {
			return s.SetTaskEmoji(ctx, target.id, char)
		})
	}
	p, ok := m.findProject(target.id)
	if !ok {
		return nil
	}
	in := projectInput(p)
	in.Emoji = char
	return m.run("set emoji", func(ctx context.Context, s *state.Manager) error {
		return s.UpdateProject(ctx, target.id, in)
	})
}

func (m Model) setBucket(id string, bucket model.Schedule) tea.Cmd {
	return m.run("schedule task", func(ctx context.Context, s *state.Manager) error {
		return s.MoveTaskToBucket(ctx, id, bucket)
	})
}

func (m Model) cycleSort(projectID string) tea.Cmd {
	next := m.snap.Preferences.SortFor(projectID).Next()
	return m.run("sort project", func(ctx context.Context, s *state.Manager) error {
		return s.SetProjectSort(ctx, projectID, next)
	})
}
