package view

import (
	"sort"

	"github.com/nhle/gtd/internal/model"
)

// Group is one section of a project view. Heading is nil for the leading
// section of tasks that belong to no heading.
type Group struct {
	Heading *model.Heading
	Tasks   []model.Task
}

// GroupByHeading splits a project's tasks into heading sections. Tasks keep
// their relative input order. Tasks pointing at a heading that does not
// belong to the project fall into the leading section. Every heading of the
// project gets a group, even an empty one.
func GroupByHeading(tasks []model.Task, headings []model.Heading, projectID string) []Group {
	own := ProjectHeadings(headings, projectID)

	index := make(map[string]int, len(own))
	groups := make([]Group, 0, len(own)+1)
	groups = append(groups, Group{})
	for i := range own {
		h := own[i]
		index[h.ID] = len(groups)
		groups = append(groups, Group{Heading: &h})
	}

	for _, t := range tasks {
		slot := 0
		if t.HeadingID != nil {
			if i, ok := index[*t.HeadingID]; ok {
				slot = i
			}
		}
		groups[slot].Tasks = append(groups[slot].Tasks, t)
	}

	if len(groups[0].Tasks) == 0 {
		groups = groups[1:]
	}
	return groups
}

// ProjectHeadings returns the project's headings ordered by position.
func ProjectHeadings(headings []model.Heading, projectID string) []model.Heading {
	var own []model.Heading
	for _, h := range headings {
		if h.ProjectID == projectID {
			own = append(own, h)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		if own[i].Position != own[j].Position {
			return own[i].Position < own[j].Position
		}
		return own[i].ID < own[j].ID
	})
	return own
}

// Rows flattens groups into list rows: each heading followed by its tasks.
func Rows(groups []Group) []model.ListItem {
	var rows []model.ListItem
	for _, g := range groups {
		if g.Heading != nil {
			rows = append(rows, *g.Heading)
		}
		for _, t := range g.Tasks {
			rows = append(rows, t)
		}
	}
	return rows
}
