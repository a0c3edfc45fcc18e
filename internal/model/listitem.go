package model

import "time"

// ListItem is the common interface for rows displayed in a task list.
// Tasks and the headings that separate them both implement it.
type ListItem interface {
	GetID() string
	GetTitle() string
	GetEmoji() string
	IsHeading() bool
	IsCompleted() bool
	GetPosition() int
	GetDeadline() *time.Time
}

// Task implements ListItem.

func (t Task) GetID() string           { return t.ID }
func (t Task) GetTitle() string        { return t.Title }
func (t Task) GetEmoji() string        { return t.Emoji }
func (t Task) IsHeading() bool         { return false }
func (t Task) IsCompleted() bool       { return t.IsClosed() }
func (t Task) GetPosition() int        { return t.Position }
func (t Task) GetDeadline() *time.Time { return t.Deadline }

// Heading implements ListItem.

func (h Heading) GetID() string           { return h.ID }
func (h Heading) GetTitle() string        { return h.Name }
func (h Heading) GetEmoji() string        { return "" }
func (h Heading) IsHeading() bool         { return true }
func (h Heading) IsCompleted() bool       { return false }
func (h Heading) GetPosition() int        { return h.Position }
func (h Heading) GetDeadline() *time.Time { return nil }
