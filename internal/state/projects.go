package state

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/store"
)

// ProjectInput carries the editable fields of a project.
type ProjectInput struct {
	Name     string
	Emoji    string
	Notes    string
	AreaID   string
	Deadline *time.Time
}

// CreateProject adds an active project after the existing ones.
func (m *Manager) CreateProject(ctx context.Context, in ProjectInput) (model.Project, error) {
	var created model.Project
	err := m.mutate(ctx, "create project", func(d *model.Snapshot) ([]string, error) {
		now := m.clock()
		p := model.Project{
			ID:        m.newID(),
			Position:  len(d.Projects),
			Status:    model.ProjectStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := applyProjectInput(d, &p, in); err != nil {
			return nil, err
		}
		d.Projects = append(d.Projects, p)
		created = p
		return []string{store.SlotProjects}, nil
	})
	return created, err
}

// UpdateProject replaces the editable fields of a project.
func (m *Manager) UpdateProject(ctx context.Context, id string, in ProjectInput) error {
	return m.updateProject(ctx, "update project", id, func(d *model.Snapshot, p *model.Project) error {
		return applyProjectInput(d, p, in)
	})
}

// SetProjectStatus moves a project through its lifecycle. Completing it
// stamps completed_at; any other status clears it.
func (m *Manager) SetProjectStatus(ctx context.Context, id string, status model.ProjectStatus) error {
	return m.updateProject(ctx, "set project status", id, func(d *model.Snapshot, p *model.Project) error {
		switch status {
		case model.ProjectStatusCompleted:
			if p.Status != status {
				p.CompletedAt = ptr(m.clock())
			}
		case model.ProjectStatusActive, model.ProjectStatusSomeday:
			p.CompletedAt = nil
		default:
			return fmt.Errorf("unknown project status %q: %w", status, ErrInvalid)
		}
		p.Status = status
		return nil
	})
}

// DeleteProject removes a project together with its tasks and headings.
// If the project was the active view, the default view takes over.
func (m *Manager) DeleteProject(ctx context.Context, id string) error {
	err := m.mutate(ctx, "delete project", func(d *model.Snapshot) ([]string, error) {
		i := findProject(d, id)
		if i < 0 {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		d.Projects = slices.Delete(d.Projects, i, i+1)

		var removed []string
		d.Tasks = slices.DeleteFunc(d.Tasks, func(t model.Task) bool {
			if t.InProject(id) {
				removed = append(removed, t.ID)
				return true
			}
			return false
		})
		d.Headings = slices.DeleteFunc(d.Headings, func(h model.Heading) bool {
			return h.ProjectID == id
		})

		dirty := []string{store.SlotProjects, store.SlotTasks, store.SlotHeadings, store.SlotPreferences}
		for _, slot := range forgetTasks(d, removed...) {
			if !slices.Contains(dirty, slot) {
				dirty = append(dirty, slot)
			}
		}

		key := model.ProjectView(id).Key()
		delete(d.Preferences.ProjectSort, id)
		delete(d.Preferences.ManualOrder, key)
		if d.Preferences.ActiveView == key {
			d.Preferences.ActiveView = m.defaultView.Key()
		}
		return dirty, nil
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.active.IsProject(id) {
		m.active = m.defaultView
	}
	m.mu.Unlock()
	m.logger.Info("deleted project", "id", id)
	return nil
}

// SetProjectSort remembers the sort mode of a project view.
func (m *Manager) SetProjectSort(ctx context.Context, id string, mode model.SortMode) error {
	return m.mutate(ctx, "set project sort", func(d *model.Snapshot) ([]string, error) {
		if findProject(d, id) < 0 {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		if !slices.Contains(model.SortModes, mode) {
			return nil, fmt.Errorf("unknown sort mode %q: %w", mode, ErrInvalid)
		}
		if d.Preferences.ProjectSort == nil {
			d.Preferences.ProjectSort = make(map[string]model.SortMode)
		}
		d.Preferences.ProjectSort[id] = mode
		return []string{store.SlotPreferences}, nil
	})
}

func (m *Manager) updateProject(ctx context.Context, op, id string, fn func(d *model.Snapshot, p *model.Project) error) error {
	return m.mutate(ctx, op, func(d *model.Snapshot) ([]string, error) {
		i := findProject(d, id)
		if i < 0 {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		p := d.Projects[i]
		if err := fn(d, &p); err != nil {
			return nil, err
		}
		p.UpdatedAt = m.clock()
		d.Projects[i] = p
		return []string{store.SlotProjects}, nil
	})
}

func applyProjectInput(d *model.Snapshot, p *model.Project, in ProjectInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return fmt.Errorf("project name is empty: %w", ErrInvalid)
	}
	p.AreaID = nil
	if in.AreaID != "" {
		if findArea(d, in.AreaID) < 0 {
			return fmt.Errorf("area %s: %w", in.AreaID, ErrNotFound)
		}
		p.AreaID = ptr(in.AreaID)
	}
	p.Name = name
	p.Emoji = strings.TrimSpace(in.Emoji)
	p.Notes = in.Notes
	p.Deadline = day(in.Deadline)
	return nil
}
