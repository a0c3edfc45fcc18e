package view

import (
	"time"

	"github.com/nhle/gtd/internal/model"
)

var base = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC) // a Wednesday

func ptr[T any](v T) *T { return &v }

func day(offset int) *time.Time {
	d := model.StartOfDay(base).AddDate(0, 0, offset)
	return &d
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
