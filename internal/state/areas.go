package state

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/store"
	"github.com/nhle/gtd/internal/view"
)

// CreateArea adds an area after the existing ones.
func (m *Manager) CreateArea(ctx context.Context, name string) (model.Area, error) {
	var created model.Area
	err := m.mutate(ctx, "create area", func(d *model.Snapshot) ([]string, error) {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("area name is empty: %w", ErrInvalid)
		}
		now := m.clock()
		a := model.Area{
			ID:        m.newID(),
			Name:      name,
			Position:  len(d.Areas),
			CreatedAt: now,
			UpdatedAt: now,
		}
		d.Areas = append(d.Areas, a)
		created = a
		return []string{store.SlotAreas}, nil
	})
	return created, err
}

// RenameArea changes an area's name.
func (m *Manager) RenameArea(ctx context.Context, id, name string) error {
	return m.mutate(ctx, "rename area", func(d *model.Snapshot) ([]string, error) {
		i := findArea(d, id)
		if i < 0 {
			return nil, fmt.Errorf("area %s: %w", id, ErrNotFound)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("area name is empty: %w", ErrInvalid)
		}
		d.Areas[i].Name = name
		d.Areas[i].UpdatedAt = m.clock()
		return []string{store.SlotAreas}, nil
	})
}

// DeleteArea removes an area. Its projects are left alone and keep the
// stale area_id, which readers treat as "no area".
func (m *Manager) DeleteArea(ctx context.Context, id string) error {
	return m.mutate(ctx, "delete area", func(d *model.Snapshot) ([]string, error) {
		i := findArea(d, id)
		if i < 0 {
			return nil, fmt.Errorf("area %s: %w", id, ErrNotFound)
		}
		d.Areas = slices.Delete(d.Areas, i, i+1)
		return []string{store.SlotAreas}, nil
	})
}

// CreateHeading adds a heading at the end of a project.
func (m *Manager) CreateHeading(ctx context.Context, projectID, name string) (model.Heading, error) {
	var created model.Heading
	err := m.mutate(ctx, "create heading", func(d *model.Snapshot) ([]string, error) {
		if findProject(d, projectID) < 0 {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("heading name is empty: %w", ErrInvalid)
		}

		position := 0
		for _, h := range view.ProjectHeadings(d.Headings, projectID) {
			position = max(position, h.Position+1)
		}
		now := m.clock()
		h := model.Heading{
			ID:        m.newID(),
			ProjectID: projectID,
			Name:      name,
			Position:  position,
			CreatedAt: now,
			UpdatedAt: now,
		}
		d.Headings = append(d.Headings, h)
		created = h
		return []string{store.SlotHeadings}, nil
	})
	return created, err
}

// RenameHeading changes a heading's name.
func (m *Manager) RenameHeading(ctx context.Context, id, name string) error {
	return m.mutate(ctx, "rename heading", func(d *model.Snapshot) ([]string, error) {
		i := findHeading(d, id)
		if i < 0 {
			return nil, fmt.Errorf("heading %s: %w", id, ErrNotFound)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("heading name is empty: %w", ErrInvalid)
		}
		d.Headings[i].Name = name
		d.Headings[i].UpdatedAt = m.clock()
		return []string{store.SlotHeadings}, nil
	})
}
