package view

import (
	"sort"
	"strings"
	"time"

	"github.com/nhle/gtd/internal/model"
)

// scheduleRank orders buckets for SortSchedule. Unscheduled tasks rank last.
var scheduleRank = map[model.Schedule]int{
	model.ScheduleToday:    0,
	model.ScheduleEvening:  1,
	model.ScheduleThisWeek: 2,
	model.ScheduleNextWeek: 3,
	model.ScheduleAnytime:  4,
	model.ScheduleSomeday:  5,
}

func rankOf(s model.Schedule) int {
	if r, ok := scheduleRank[s]; ok {
		return r
	}
	return len(scheduleRank)
}

// Sort returns a copy of tasks ordered by mode. For SortManual, order lists
// task IDs in the user's arrangement; tasks missing from it follow in
// position order. Every mode breaks ties by position and then ID.
func Sort(tasks []model.Task, mode model.SortMode, order []string) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	var less func(a, b model.Task) (bool, bool)
	switch mode {
	case model.SortDeadline:
		less = byDeadline
	case model.SortSchedule:
		less = func(a, b model.Task) (bool, bool) {
			ra, rb := rankOf(a.Schedule), rankOf(b.Schedule)
			return ra < rb, ra != rb
		}
	case model.SortTitle:
		less = func(a, b model.Task) (bool, bool) {
			ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
			return ta < tb, ta != tb
		}
	case model.SortCreated:
		less = func(a, b model.Task) (bool, bool) {
			return a.CreatedAt.After(b.CreatedAt), !a.CreatedAt.Equal(b.CreatedAt)
		}
	default:
		less = byManualOrder(order)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if l, decided := less(out[i], out[j]); decided {
			return l
		}
		return byPosition(out[i], out[j])
	})
	return out
}

func byPosition(a, b model.Task) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.ID < b.ID
}

func byDeadline(a, b model.Task) (bool, bool) {
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		return false, false
	case a.Deadline == nil:
		return false, true
	case b.Deadline == nil:
		return true, true
	case a.Deadline.Equal(*b.Deadline):
		return false, false
	default:
		return a.Deadline.Before(*b.Deadline), true
	}
}

func byManualOrder(order []string) func(a, b model.Task) (bool, bool) {
	index := make(map[string]int, len(order))
	for i, id := range order {
		if _, seen := index[id]; !seen {
			index[id] = i
		}
	}
	return func(a, b model.Task) (bool, bool) {
		ia, okA := index[a.ID]
		ib, okB := index[b.ID]
		switch {
		case okA && okB:
			return ia < ib, ia != ib
		case okA:
			return true, true
		case okB:
			return false, true
		default:
			return false, false
		}
	}
}

// SortByCompletion orders closed tasks most recent first, using UpdatedAt
// when CompletedAt is missing.
func SortByCompletion(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := completionTime(out[i]), completionTime(out[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func completionTime(t model.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.UpdatedAt
}
