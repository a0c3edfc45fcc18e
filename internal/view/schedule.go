package view

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nhle/gtd/internal/model"
)

// ScheduleForDate returns the bucket a concrete scheduled date falls into,
// relative to now: on or before today is Today, later in the current ISO
// week is This Week, in the following ISO week is Next Week, anything later
// is Anytime.
func ScheduleForDate(date, now time.Time) model.Schedule {
	day := model.StartOfDay(date.In(now.Location()))
	today := model.StartOfDay(now)
	if !day.After(today) {
		return model.ScheduleToday
	}

	dy, dw := day.ISOWeek()
	ty, tw := today.ISOWeek()
	if dy == ty && dw == tw {
		return model.ScheduleThisWeek
	}

	ny, nw := today.AddDate(0, 0, 7).ISOWeek()
	if dy == ny && dw == nw {
		return model.ScheduleNextWeek
	}
	return model.ScheduleAnytime
}

// RelativeDay describes a calendar date relative to now, e.g. "today",
// "tomorrow" or "3 days from now".
func RelativeDay(date, now time.Time) string {
	day := model.StartOfDay(date.In(now.Location()))
	today := model.StartOfDay(now)
	switch days := int(math.Round(day.Sub(today).Hours() / 24)); days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	}
	return humanize.RelTime(day, today, "ago", "from now")
}
