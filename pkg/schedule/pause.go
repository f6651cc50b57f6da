// Package schedule evaluates pause windows against delivery schedules.
// All comparisons are calendar-date granular.
package schedule

import (
	"strings"
	"time"
)

// PauseState classifies a pause window relative to a reference date.
type PauseState string

const (
	PauseNone     PauseState = "NONE"
	PauseUpcoming PauseState = "UPCOMING"
	PauseActive   PauseState = "ACTIVE"
	PausePast     PauseState = "PAST"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClassifyPause reports where today falls relative to the pause window.
// A half-set window counts as no window.
func ClassifyPause(pauseStart, pauseEnd *time.Time, today time.Time) PauseState {
	if pauseStart == nil || pauseEnd == nil {
		return PauseNone
	}
	day := DateOnly(today)
	start := DateOnly(*pauseStart)
	end := DateOnly(*pauseEnd)

	switch {
	case day.Before(start):
		return PauseUpcoming
	case day.After(end):
		return PausePast
	default:
		return PauseActive
	}
}

// SkippedDeliveries counts the delivery occurrences inside the inclusive
// window [pauseStart, pauseEnd]. Used only for user-facing previews; the
// subscription end date is never extended to compensate for paused days.
func SkippedDeliveries(pauseStart, pauseEnd time.Time, deliveryDays []string) int {
	start := DateOnly(pauseStart)
	end := DateOnly(pauseEnd)
	if end.Before(start) {
		return 0
	}

	selected := make(map[time.Weekday]bool, len(deliveryDays))
	for _, name := range deliveryDays {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			selected[wd] = true
		}
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if selected[d.Weekday()] {
			count++
		}
	}
	return count
}
