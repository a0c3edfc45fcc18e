package model

import "time"

// Area is a long-lived sphere of responsibility that collects projects.
type Area struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Position  int       `json:"position" yaml:"position"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Heading splits a project's task list into named sections.
type Heading struct {
	ID        string    `json:"id" yaml:"id"`
	ProjectID string    `json:"project_id" yaml:"project_id"`
	Name      string    `json:"name" yaml:"name"`
	Position  int       `json:"position" yaml:"position"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
