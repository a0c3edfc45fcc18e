// Package state owns the in-memory collections and the intent handlers
// that mutate them. Every successful mutation writes the collections it
// touched back to the store before it becomes visible.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nhle/gtd/internal/logging"
	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/seed"
	"github.com/nhle/gtd/internal/store"
)

// Manager holds the dataset and serializes all mutations.
type Manager struct {
	mu     sync.Mutex
	store  store.Store
	data   model.Snapshot
	active model.ViewSelector

	defaultView model.ViewSelector
	now         func() time.Time
	newID       func() string
	logger      *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithDefaultView sets the view used on first run and whenever the active
// view disappears.
func WithDefaultView(v model.ViewSelector) Option {
	return func(m *Manager) { m.defaultView = v }
}

// Load reads every slot from s. When neither tasks nor projects have ever
// been stored, the seed dataset is installed and persisted first.
func Load(ctx context.Context, s store.Store, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:       s,
		defaultView: model.TodayView,
		now:         time.Now,
		newID:       uuid.NewString,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}

	slots, err := s.LoadSlots(ctx, store.AllSlots...)
	if err != nil {
		return nil, fmt.Errorf("loading slots: %w", err)
	}

	_, hasTasks := slots[store.SlotTasks]
	_, hasProjects := slots[store.SlotProjects]
	if !hasTasks && !hasProjects {
		m.data = seed.Dataset(m.clock(), m.newID)
		m.data.Preferences.ActiveView = m.defaultView.Key()
		if err := m.persist(ctx, &m.data, store.AllSlots...); err != nil {
			return nil, fmt.Errorf("installing seed data: %w", err)
		}
		m.logger.Info("installed seed data",
			"tasks", len(m.data.Tasks), "projects", len(m.data.Projects))
	} else {
		if err := decodeSnapshot(slots, &m.data); err != nil {
			return nil, err
		}
		m.logger.Debug("loaded data",
			"tasks", len(m.data.Tasks), "projects", len(m.data.Projects))
	}

	m.active = m.resolveView(&m.data, m.data.Preferences.ActiveView)
	return m, nil
}

func decodeSnapshot(slots map[string][]byte, d *model.Snapshot) error {
	var err error
	decode := func(key string, fn func([]byte) error) {
		data, ok := slots[key]
		if !ok || err != nil {
			return
		}
		if e := fn(data); e != nil {
			err = fmt.Errorf("reading slot %s: %w", key, e)
		}
	}
	decode(store.SlotTasks, func(b []byte) (e error) { d.Tasks, e = store.DecodeCollection[model.Task](b); return })
	decode(store.SlotProjects, func(b []byte) (e error) { d.Projects, e = store.DecodeCollection[model.Project](b); return })
	decode(store.SlotAreas, func(b []byte) (e error) { d.Areas, e = store.DecodeCollection[model.Area](b); return })
	decode(store.SlotHeadings, func(b []byte) (e error) { d.Headings, e = store.DecodeCollection[model.Heading](b); return })
	decode(store.SlotTags, func(b []byte) (e error) { d.Tags, e = store.DecodeCollection[model.Tag](b); return })
	decode(store.SlotTaskTags, func(b []byte) (e error) { d.TaskTags, e = store.DecodeCollection[model.TaskTag](b); return })
	decode(store.SlotPreferences, func(b []byte) error { return json.Unmarshal(b, &d.Preferences) })
	return err
}

func encodeSlot(d *model.Snapshot, key string) ([]byte, error) {
	switch key {
	case store.SlotTasks:
		return store.EncodeCollection(d.Tasks)
	case store.SlotProjects:
		return store.EncodeCollection(d.Projects)
	case store.SlotAreas:
		return store.EncodeCollection(d.Areas)
	case store.SlotHeadings:
		return store.EncodeCollection(d.Headings)
	case store.SlotTags:
		return store.EncodeCollection(d.Tags)
	case store.SlotTaskTags:
		return store.EncodeCollection(d.TaskTags)
	case store.SlotPreferences:
		data, err := json.Marshal(d.Preferences)
		if err != nil {
			return nil, fmt.Errorf("encoding preferences: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown slot %q", key)
}

// persist writes the named slots of d in one store call.
func (m *Manager) persist(ctx context.Context, d *model.Snapshot, keys ...string) error {
	out := make(map[string][]byte, len(keys))
	for _, key := range keys {
		data, err := encodeSlot(d, key)
		if err != nil {
			return err
		}
		out[key] = data
	}
	return m.store.SaveSlots(ctx, out)
}

// mutate runs fn against a copy of the dataset. If fn succeeds, the slots
// it reports as dirty are saved and the copy replaces the live data. On
// any error the live data is left untouched.
func (m *Manager) mutate(ctx context.Context, op string, fn func(d *model.Snapshot) ([]string, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := cloneSnapshot(m.data)
	dirty, err := fn(&next)
	if err != nil {
		m.logger.Debug("rejected", "op", op, "err", err)
		return err
	}
	if len(dirty) == 0 {
		return nil
	}
	if err := m.persist(ctx, &next, dirty...); err != nil {
		m.logger.Error("persist failed", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	m.data = next
	m.logger.Debug("applied", "op", op, "slots", dirty)
	return nil
}

func (m *Manager) clock() time.Time {
	return m.now().UTC()
}

// Snapshot returns a copy of the current dataset.
func (m *Manager) Snapshot() model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneSnapshot(m.data)
}

// ActiveView returns the selected navigation view.
func (m *Manager) ActiveView() model.ViewSelector {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// DefaultView returns the fallback navigation view.
func (m *Manager) DefaultView() model.ViewSelector {
	return m.defaultView
}

// SetActiveView switches the navigation view and remembers it across
// restarts. Selecting a project that does not exist is rejected.
func (m *Manager) SetActiveView(ctx context.Context, v model.ViewSelector) error {
	err := m.mutate(ctx, "set active view", func(d *model.Snapshot) ([]string, error) {
		if v.Kind == model.ViewKindProject && findProject(d, v.ProjectID) < 0 {
			return nil, fmt.Errorf("project %s: %w", v.ProjectID, ErrNotFound)
		}
		if d.Preferences.ActiveView == v.Key() {
			return nil, nil
		}
		d.Preferences.ActiveView = v.Key()
		return []string{store.SlotPreferences}, nil
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.active = v
	m.mu.Unlock()
	return nil
}

// resolveView parses a stored view key, falling back to the default view
// when it is unknown or names a missing project.
func (m *Manager) resolveView(d *model.Snapshot, key string) model.ViewSelector {
	v, ok := model.ParseView(key)
	if !ok {
		return m.defaultView
	}
	if v.Kind == model.ViewKindProject && findProject(d, v.ProjectID) < 0 {
		return m.defaultView
	}
	return v
}

func cloneSnapshot(s model.Snapshot) model.Snapshot {
	out := model.Snapshot{
		Areas:    slices.Clone(s.Areas),
		Projects: slices.Clone(s.Projects),
		Headings: slices.Clone(s.Headings),
		Tasks:    slices.Clone(s.Tasks),
		Tags:     slices.Clone(s.Tags),
		TaskTags: slices.Clone(s.TaskTags),
		Preferences: model.Preferences{
			ActiveView:  s.Preferences.ActiveView,
			ProjectSort: maps.Clone(s.Preferences.ProjectSort),
		},
	}
	if s.Preferences.ManualOrder != nil {
		out.Preferences.ManualOrder = make(map[string][]string, len(s.Preferences.ManualOrder))
		for k, v := range s.Preferences.ManualOrder {
			out.Preferences.ManualOrder[k] = slices.Clone(v)
		}
	}
	return out
}

func findTask(d *model.Snapshot, id string) int {
	return slices.IndexFunc(d.Tasks, func(t model.Task) bool { return t.ID == id })
}

func findProject(d *model.Snapshot, id string) int {
	return slices.IndexFunc(d.Projects, func(p model.Project) bool { return p.ID == id })
}

func findArea(d *model.Snapshot, id string) int {
	return slices.IndexFunc(d.Areas, func(a model.Area) bool { return a.ID == id })
}

func findHeading(d *model.Snapshot, id string) int {
	return slices.IndexFunc(d.Headings, func(h model.Heading) bool { return h.ID == id })
}

func findTag(d *model.Snapshot, id string) int {
	return slices.IndexFunc(d.Tags, func(t model.Tag) bool { return t.ID == id })
}

func ptr[T any](v T) *T { return &v }

// day normalizes a date field to the start of its calendar day.
func day(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return ptr(model.StartOfDay(*t))
}
