package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusSomeday   ProjectStatus = "someday"
)

// Project groups tasks and headings. AreaID may point at an area that no
// longer exists; readers treat that as "no area".
type Project struct {
	ID          string        `json:"id" yaml:"id"`
	AreaID      *string       `json:"area_id,omitempty" yaml:"area_id,omitempty"`
	Name        string        `json:"name" yaml:"name"`
	Emoji       string        `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Notes       string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	Position    int           `json:"position" yaml:"position"`
	Status      ProjectStatus `json:"status" yaml:"status"`
	Deadline    *time.Time    `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" yaml:"updated_at"`
}

// DisplayEmoji returns the project's emoji or the default folder glyph.
func (p Project) DisplayEmoji() string {
	if p.Emoji == "" {
		return "📁"
	}
	return p.Emoji
}
