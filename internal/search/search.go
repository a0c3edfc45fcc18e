// Package search implements the spotlight overlay's fuzzy lookup across
// tasks and projects.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nhle/gtd/internal/model"
	"github.com/nhle/gtd/internal/view"
)

// Kind is the type of record a result points at.
type Kind string

const (
	KindProject Kind = "project"
	KindTask    Kind = "task"
)

// Result is one spotlight hit.
type Result struct {
	Kind  Kind
	ID    string
	Title string
	Emoji string

	// Context names where the record lives, e.g. its project or bucket.
	Context string

	// View is where selecting the result navigates to.
	View model.ViewSelector

	// Matched holds the byte offsets of Title that matched the query.
	Matched []int

	Closed bool
	score  int
}

type entry struct {
	title  string
	result Result
}

type entries []entry

func (e entries) String(i int) string { return e[i].title }
func (e entries) Len() int            { return len(e) }

// Search returns up to limit records whose titles fuzzily match query,
// best first. Open records rank above closed ones with the same score.
// An empty query matches nothing.
func Search(snap model.Snapshot, query string, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	names := make(map[string]string, len(snap.Projects))
	var all entries
	for _, p := range snap.Projects {
		names[p.ID] = p.Name
		area := "No area"
		if a := view.AreaOf(p, snap.Areas); a != nil {
			area = a.Name
		}
		all = append(all, entry{title: p.Name, result: Result{
			Kind:    KindProject,
			ID:      p.ID,
			Title:   p.Name,
			Emoji:   p.DisplayEmoji(),
			Context: area,
			View:    model.ProjectView(p.ID),
			Closed:  p.Status == model.ProjectStatusCompleted,
		}})
	}
	for _, t := range snap.Tasks {
		all = append(all, entry{title: t.Title, result: Result{
			Kind:    KindTask,
			ID:      t.ID,
			Title:   t.Title,
			Emoji:   t.Emoji,
			Context: taskContext(t, names),
			View:    view.Home(t),
			Closed:  t.IsClosed(),
		}})
	}

	matches := fuzzy.FindFrom(query, all)
	out := make([]Result, 0, len(matches))
	for _, m := range matches {
		r := all[m.Index].result
		r.Matched = m.MatchedIndexes
		r.score = m.Score
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.Closed != b.Closed {
			return !a.Closed
		}
		if a.Kind != b.Kind {
			return a.Kind == KindProject
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func taskContext(t model.Task, projects map[string]string) string {
	if t.ProjectID != nil {
		if name, ok := projects[*t.ProjectID]; ok {
			return name
		}
	}
	switch {
	case t.Status == model.TaskStatusCompleted:
		return "Logbook"
	case t.Status == model.TaskStatusCancelled:
		return "Cancelled"
	case t.Status == model.TaskStatusInbox:
		return "Inbox"
	}
	return t.Schedule.Label()
}
