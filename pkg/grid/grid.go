// Package grid generates the calendar cell structure for month and week
// views and handles period navigation.
package grid

import (
	"strings"
	"time"
)

// ViewMode selects the calendar layout.
type ViewMode string

const (
	ModeMonth ViewMode = "month"
	ModeWeek  ViewMode = "week"
)

// ParseMode converts a string to a ViewMode, defaulting to month.
func ParseMode(raw string) ViewMode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeWeek)) {
		return ModeWeek
	}
	return ModeMonth
}

// HoursPerDay is the number of hour slots a week-view day subdivides into.
const HoursPerDay = 24

// Cell is one grid unit: a day in month view, or a day column in week
// view. InCurrentMonth is false for the leading and trailing padding days
// a month grid carries so it always spans whole weeks.
type Cell struct {
	Date           time.Time
	InCurrentMonth bool
}

// Generate returns the ordered day cells visible for the anchor date in
// the given mode. The output is deterministic for a given (anchor, mode)
// pair and contains no gaps or duplicate dates.
//
// Month mode spans whole Sunday-started weeks, from the Sunday on or
// before the first of the anchor's month through the Saturday on or after
// its last day. Week mode is exactly the 7 days starting from the Sunday
// on or before the anchor.
func Generate(anchor time.Time, mode ViewMode) []Cell {
	switch mode {
	case ModeWeek:
		return generateWeek(anchor)
	default:
		return generateMonth(anchor)
	}
}

func generateMonth(anchor time.Time) []Cell {
	first := StartOfMonth(anchor)
	last := first.AddDate(0, 1, -1)
	start := StartOfWeek(first)
	end := StartOfWeek(last).AddDate(0, 0, 6)

	var cells []Cell
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:           day,
			InCurrentMonth: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
		})
	}
	return cells
}

func generateWeek(anchor time.Time) []Cell {
	start := StartOfWeek(anchor)
	cells := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		cells = append(cells, Cell{
			Date:           start.AddDate(0, 0, i),
			InCurrentMonth: true,
		})
	}
	return cells
}

// StartOfWeek returns the Sunday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfMonth returns midnight on the first of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Next advances the anchor by one period: a calendar month in month mode,
// 7 days in week mode.
func Next(anchor time.Time, mode ViewMode) time.Time {
	if mode == ModeWeek {
		return anchor.AddDate(0, 0, 7)
	}
	return StartOfMonth(anchor).AddDate(0, 1, 0)
}

// Prev moves the anchor back by one period.
func Prev(anchor time.Time, mode ViewMode) time.Time {
	if mode == ModeWeek {
		return anchor.AddDate(0, 0, -7)
	}
	return StartOfMonth(anchor).AddDate(0, -1, 0)
}
