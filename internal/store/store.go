package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Slot keys. Each slot holds one whole collection serialized as a JSON
// array (or, for preferences, a JSON object).
const (
	SlotTasks       = "tasks"
	SlotProjects    = "projects"
	SlotAreas       = "areas"
	SlotHeadings    = "headings"
	SlotTags        = "tags"
	SlotTaskTags    = "task_tags"
	SlotPreferences = "preferences"
)

// AllSlots lists every slot key the application reads on startup.
var AllSlots = []string{
	SlotTasks,
	SlotProjects,
	SlotAreas,
	SlotHeadings,
	SlotTags,
	SlotTaskTags,
	SlotPreferences,
}

// Store is durable key/value storage for serialized collections. There is
// no delta write: a save replaces the stored value of each slot wholesale.
type Store interface {
	// LoadSlots returns the stored value of each requested slot. Slots that
	// have never been written are absent from the result.
	LoadSlots(ctx context.Context, keys ...string) (map[string][]byte, error)

	// SaveSlots overwrites every given slot atomically.
	SaveSlots(ctx context.Context, slots map[string][]byte) error

	Close() error
}

// EncodeCollection serializes a collection for storage in a slot. A nil
// slice is stored as an empty array so that "present but empty" stays
// distinguishable from "never written".
func EncodeCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encoding collection: %w", err)
	}
	return data, nil
}

// DecodeCollection parses a slot value produced by EncodeCollection.
func DecodeCollection[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding collection: %w", err)
	}
	return items, nil
}
