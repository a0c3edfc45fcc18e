// Package dnd models the drag gesture shared by mouse dragging and the
// keyboard grab mode. Both inputs drive the same Gesture and end in a Drop
// value, which the state manager applies.
package dnd

import "github.com/nhle/gtd/internal/model"

// TargetKind says what a drop lands on.
type TargetKind string

const (
	// TargetReorder moves the task to a new index of the list it came from.
	TargetReorder TargetKind = "reorder"
	// TargetBucket reschedules the task into a bucket.
	TargetBucket TargetKind = "bucket"
	// TargetProject moves the task into a project.
	TargetProject TargetKind = "project"
	// TargetHeading moves the task under a heading of a project.
	TargetHeading TargetKind = "heading"
	// TargetInbox sends the task back to the inbox.
	TargetInbox TargetKind = "inbox"
)

// Target is a place a task can be dropped.
type Target struct {
	Kind      TargetKind
	Bucket    model.Schedule
	ProjectID string
	HeadingID string

	// List, Order and Index describe a TargetReorder drop: the source list,
	// its arrangement as displayed when the gesture began (task IDs and
	// section dividers), and the index the task should end up at.
	List  model.ViewSelector
	Order []string
	Index int
}

// BucketTarget returns the target for a schedule bucket.
func BucketTarget(s model.Schedule) Target {
	return Target{Kind: TargetBucket, Bucket: s}
}

// ProjectTarget returns the target for a project.
func ProjectTarget(id string) Target {
	return Target{Kind: TargetProject, ProjectID: id}
}

// HeadingTarget returns the target for a heading of a project.
func HeadingTarget(projectID, headingID string) Target {
	return Target{Kind: TargetHeading, ProjectID: projectID, HeadingID: headingID}
}

// InboxTarget returns the target for the inbox.
func InboxTarget() Target {
	return Target{Kind: TargetInbox}
}

// TargetForView maps a navigation view to the drop target it represents in
// the sidebar. The logbook accepts no drops.
func TargetForView(v model.ViewSelector) (Target, bool) {
	switch v.Kind {
	case model.ViewKindInbox:
		return InboxTarget(), true
	case model.ViewKindBucket:
		return BucketTarget(v.Bucket), true
	case model.ViewKindProject:
		return ProjectTarget(v.ProjectID), true
	}
	return Target{}, false
}

// Drop is a completed gesture.
type Drop struct {
	TaskID string
	Target Target
}
