package model

import "time"

// Tag is a cross-cutting label for categorizing tasks.
type Tag struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Color     string    `json:"color,omitempty" yaml:"color,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// TaskTag joins a task to a tag.
type TaskTag struct {
	TaskID    string    `json:"task_id" yaml:"task_id"`
	TagID     string    `json:"tag_id" yaml:"tag_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
