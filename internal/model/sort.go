package model

// SortMode selects how tasks in a project view are ordered.
type SortMode string

const (
	SortManual   SortMode = "manual"
	SortDeadline SortMode = "deadline"
	SortSchedule SortMode = "schedule"
	SortTitle    SortMode = "title"
	SortCreated  SortMode = "created"
)

// SortModes lists the modes in the order the UI cycles through them.
var SortModes = []SortMode{SortManual, SortDeadline, SortSchedule, SortTitle, SortCreated}

// Next returns the mode after m in the cycle.
func (m SortMode) Next() SortMode {
	for i, mode := range SortModes {
		if mode == m {
			return SortModes[(i+1)%len(SortModes)]
		}
	}
	return SortManual
}

// Label returns a short description for the status bar.
func (m SortMode) Label() string {
	switch m {
	case SortDeadline:
		return "by deadline"
	case SortSchedule:
		return "by schedule"
	case SortTitle:
		return "by title"
	case SortCreated:
		return "newest first"
	default:
		return "manual"
	}
}

// Preferences holds per-user UI state that survives restarts.
type Preferences struct {
	// ActiveView is the key of the last selected view.
	ActiveView string `json:"active_view,omitempty" yaml:"active_view,omitempty"`

	// ProjectSort maps project IDs to their chosen sort mode.
	ProjectSort map[string]SortMode `json:"project_sort,omitempty" yaml:"project_sort,omitempty"`

	// ManualOrder maps a list key (see ViewSelector.Key) to task IDs in the
	// order the user arranged them.
	ManualOrder map[string][]string `json:"manual_order,omitempty" yaml:"manual_order,omitempty"`
}

// SortFor returns the sort mode chosen for a project, defaulting to manual.
func (p Preferences) SortFor(projectID string) SortMode {
	if m, ok := p.ProjectSort[projectID]; ok {
		return m
	}
	return SortManual
}
