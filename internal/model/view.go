package model

import "strings"

// ViewKind distinguishes the kinds of navigation views.
type ViewKind string

const (
	ViewKindInbox   ViewKind = "inbox"
	ViewKindBucket  ViewKind = "bucket"
	ViewKindLogbook ViewKind = "logbook"
	ViewKindProject ViewKind = "project"
)

// ViewSelector identifies the active navigation view: the inbox, one of the
// schedule buckets, the logbook, or a single project.
type ViewSelector struct {
	Kind      ViewKind `json:"kind"`
	Bucket    Schedule `json:"bucket,omitempty"`
	ProjectID string   `json:"project_id,omitempty"`
}

// Common selectors.
var (
	InboxView   = ViewSelector{Kind: ViewKindInbox}
	LogbookView = ViewSelector{Kind: ViewKindLogbook}
	TodayView   = BucketView(ScheduleToday)
)

// BucketView returns the selector for a schedule bucket.
func BucketView(s Schedule) ViewSelector {
	return ViewSelector{Kind: ViewKindBucket, Bucket: s}
}

// ProjectView returns the selector for a project.
func ProjectView(id string) ViewSelector {
	return ViewSelector{Kind: ViewKindProject, ProjectID: id}
}

// IsProject reports whether v selects the given project.
func (v ViewSelector) IsProject(id string) bool {
	return v.Kind == ViewKindProject && v.ProjectID == id
}

// Key returns a stable string form, used for preference maps and the
// "--view" CLI flag.
func (v ViewSelector) Key() string {
	switch v.Kind {
	case ViewKindBucket:
		return string(v.Bucket)
	case ViewKindProject:
		return "project:" + v.ProjectID
	default:
		return string(v.Kind)
	}
}

// ParseView parses the output of Key. Unknown values yield ok == false.
func ParseView(s string) (ViewSelector, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case string(ViewKindInbox):
		return InboxView, true
	case string(ViewKindLogbook):
		return LogbookView, true
	}
	if id, ok := strings.CutPrefix(s, "project:"); ok && id != "" {
		return ProjectView(id), true
	}
	for _, b := range Buckets {
		if s == string(b) {
			return BucketView(b), true
		}
	}
	return ViewSelector{}, false
}

// Title returns the heading shown above the view.
func (v ViewSelector) Title() string {
	switch v.Kind {
	case ViewKindInbox:
		return "Inbox"
	case ViewKindLogbook:
		return "Logbook"
	case ViewKindBucket:
		return v.Bucket.Label()
	default:
		return "Project"
	}
}
