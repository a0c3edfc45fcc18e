package view

import (
	"sort"

	"github.com/nhle/gtd/internal/model"
)

// AreaGroup is one block of the sidebar project tree. Area is nil for
// projects without an area, including those whose area was deleted.
type AreaGroup struct {
	Area     *model.Area
	Projects []model.Project
}

// Sidebar builds the project tree shown under the fixed views. Completed
// projects are left out; they live in the logbook.
func Sidebar(areas []model.Area, projects []model.Project) []AreaGroup {
	sortedAreas := make([]model.Area, len(areas))
	copy(sortedAreas, areas)
	sort.SliceStable(sortedAreas, func(i, j int) bool {
		if sortedAreas[i].Position != sortedAreas[j].Position {
			return sortedAreas[i].Position < sortedAreas[j].Position
		}
		return sortedAreas[i].ID < sortedAreas[j].ID
	})

	sortedProjects := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status != model.ProjectStatusCompleted {
			sortedProjects = append(sortedProjects, p)
		}
	}
	sort.SliceStable(sortedProjects, func(i, j int) bool {
		if sortedProjects[i].Position != sortedProjects[j].Position {
			return sortedProjects[i].Position < sortedProjects[j].Position
		}
		return sortedProjects[i].ID < sortedProjects[j].ID
	})

	index := make(map[string]int, len(sortedAreas))
	groups := make([]AreaGroup, 0, len(sortedAreas)+1)
	groups = append(groups, AreaGroup{})
	for i := range sortedAreas {
		a := sortedAreas[i]
		index[a.ID] = len(groups)
		groups = append(groups, AreaGroup{Area: &a})
	}

	for _, p := range sortedProjects {
		slot := 0
		if p.AreaID != nil {
			if i, ok := index[*p.AreaID]; ok {
				slot = i
			}
		}
		groups[slot].Projects = append(groups[slot].Projects, p)
	}

	if len(groups[0].Projects) == 0 {
		groups = groups[1:]
	}
	return groups
}

// AreaOf resolves a project's area, returning nil for no area or a
// dangling reference.
func AreaOf(p model.Project, areas []model.Area) *model.Area {
	if p.AreaID == nil {
		return nil
	}
	for i := range areas {
		if areas[i].ID == *p.AreaID {
			return &areas[i]
		}
	}
	return nil
}
