package model

// Snapshot is the complete persisted dataset.
type Snapshot struct {
	Areas       []Area      `json:"areas" yaml:"areas"`
	Projects    []Project   `json:"projects" yaml:"projects"`
	Headings    []Heading   `json:"headings" yaml:"headings"`
	Tasks       []Task      `json:"tasks" yaml:"tasks"`
	Tags        []Tag       `json:"tags" yaml:"tags"`
	TaskTags    []TaskTag   `json:"task_tags" yaml:"task_tags"`
	Preferences Preferences `json:"preferences" yaml:"preferences"`
}
