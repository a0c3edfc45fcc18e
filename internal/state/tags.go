package state

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/store"
)

// CreateTag adds a tag. Names are unique, ignoring case.
func (m *Manager) CreateTag(ctx context.Context, name, color string) (model.Tag, error) {
	var created model.Tag
	err := m.mutate(ctx, "create tag", func(d *model.Snapshot) ([]string, error) {
		name, err := checkTagName(d, "", name)
		if err != nil {
			return nil, err
		}
		t := model.Tag{
			ID:        m.newID(),
			Name:      name,
			Color:     strings.TrimSpace(color),
			CreatedAt: m.clock(),
		}
		d.Tags = append(d.Tags, t)
		created = t
		return []string{store.SlotTags}, nil
	})
	return created, err
}

// UpdateTag renames and recolors a tag.
func (m *Manager) UpdateTag(ctx context.Context, id, name, color string) error {
	return m.mutate(ctx, "update tag", func(d *model.Snapshot) ([]string, error) {
		i := findTag(d, id)
		if i < 0 {
			return nil, fmt.Errorf("tag %s: %w", id, ErrNotFound)
		}
		name, err := checkTagName(d, id, name)
		if err != nil {
			return nil, err
		}
		d.Tags[i].Name = name
		d.Tags[i].Color = strings.TrimSpace(color)
		return []string{store.SlotTags}, nil
	})
}

// DeleteTag removes a tag and unlinks it from every task.
func (m *Manager) DeleteTag(ctx context.Context, id string) error {
	return m.mutate(ctx, "delete tag", func(d *model.Snapshot) ([]string, error) {
		i := findTag(d, id)
		if i < 0 {
			return nil, fmt.Errorf("tag %s: %w", id, ErrNotFound)
		}
		d.Tags = slices.Delete(d.Tags, i, i+1)
		d.TaskTags = slices.DeleteFunc(d.TaskTags, func(tt model.TaskTag) bool { return tt.TagID == id })
		return []string{store.SlotTags, store.SlotTaskTags}, nil
	})
}

// TagsOf returns the tags linked to a task, in tag order.
func TagsOf(d model.Snapshot, taskID string) []model.Tag {
	linked := make(map[string]bool)
	for _, tt := range d.TaskTags {
		if tt.TaskID == taskID {
			linked[tt.TagID] = true
		}
	}
	var out []model.Tag
	for _, t := range d.Tags {
		if linked[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func checkTagName(d *model.Snapshot, selfID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("tag name is empty: %w", ErrInvalid)
	}
	for _, t := range d.Tags {
		if t.ID != selfID && strings.EqualFold(t.Name, name) {
			return "", fmt.Errorf("tag %q already exists: %w", name, ErrInvalid)
		}
	}
	return name, nil
}
