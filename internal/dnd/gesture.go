package dnd

import (
	"slices"

	"github.com/nhle/gtd/internal/model"
)

// Source records which input device started a gesture.
type Source int

const (
	SourceMouse Source = iota
	SourceKeyboard
)

// Gesture tracks one drag from grab to drop. The zero value is idle.
type Gesture struct {
	active bool
	source Source
	taskID string
	list   model.ViewSelector
	order  []string
	from   int
	index  int
	target *Target
}

// Begin grabs taskID from list, whose rows are order. It reports false when
// a gesture is already running or the task is not in the list.
func (g *Gesture) Begin(src Source, list model.ViewSelector, order []string, taskID string) bool {
	if g.active {
		return false
	}
	from := slices.Index(order, taskID)
	if from < 0 {
		return false
	}
	*g = Gesture{
		active: true,
		source: src,
		taskID: taskID,
		list:   list,
		order:  slices.Clone(order),
		from:   from,
		index:  from,
	}
	return true
}

// Active reports whether a gesture is in progress.
func (g *Gesture) Active() bool { return g.active }

// Source returns the device that started the gesture.
func (g *Gesture) Source() Source { return g.source }

// TaskID returns the grabbed task.
func (g *Gesture) TaskID() string { return g.taskID }

// Index returns the row the grabbed task currently hovers over.
func (g *Gesture) Index() int { return g.index }

// Target returns the foreign drop target being hovered, if any.
func (g *Gesture) Target() (Target, bool) {
	if g.target == nil {
		return Target{}, false
	}
	return *g.target, true
}

// MoveBy shifts the insertion point by delta rows, clamped to the list.
// It returns the gesture to the source list if a foreign target was set.
func (g *Gesture) MoveBy(delta int) {
	if !g.active {
		return
	}
	g.HoverIndex(g.index + delta)
}

// HoverIndex places the insertion point at row i of the source list.
func (g *Gesture) HoverIndex(i int) {
	if !g.active {
		return
	}
	g.target = nil
	g.index = max(0, min(i, len(g.order)-1))
}

// HoverTarget points the gesture at a target outside the source list, such
// as a sidebar entry or a destination key.
func (g *Gesture) HoverTarget(t Target) {
	if !g.active {
		return
	}
	g.target = &t
}

// Preview returns the list order as it would look if dropped now.
func (g *Gesture) Preview() []string {
	if !g.active || g.target != nil {
		return slices.Clone(g.order)
	}
	return Move(g.order, g.from, g.index)
}

// Drop ends the gesture. ok is false when there is nothing to apply: no
// gesture, or a reorder that puts the task back where it started.
func (g *Gesture) Drop() (d Drop, ok bool) {
	if !g.active {
		return Drop{}, false
	}
	defer g.Cancel()

	if g.target != nil {
		return Drop{TaskID: g.taskID, Target: *g.target}, true
	}
	if g.index == g.from {
		return Drop{}, false
	}
	return Drop{
		TaskID: g.taskID,
		Target: Target{
			Kind:  TargetReorder,
			List:  g.list,
			Order: slices.Clone(g.order),
			Index: g.index,
		},
	}, true
}

// Cancel abandons the gesture without a drop.
func (g *Gesture) Cancel() {
	*g = Gesture{}
}

// Move returns a copy of ids with the element at from moved to index to.
func Move(ids []string, from, to int) []string {
	out := slices.Clone(ids)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	id := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, id)
}
