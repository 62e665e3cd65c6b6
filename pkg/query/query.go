// Package query derives the visible task subset from search and filter
// state.
package query

import (
	"strings"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// Filters are independent allow-lists for status and priority. An empty
// list means "no constraint", not "match nothing".
type Filters struct {
	Status   []task.Status
	Priority []task.Priority
}

// Empty reports whether no filter constraint is set.
func (f Filters) Empty() bool {
	return len(f.Status) == 0 && len(f.Priority) == 0
}

// Visible applies the search term and filters to the task collection. A
// task passes when its title or description contains the term
// (case-insensitive, empty term matches everything) AND its status and
// priority each pass their allow-list. Input order is preserved; the
// engine never sorts.
func Visible(all []task.Task, term string, f Filters) []task.Task {
	term = strings.ToLower(strings.TrimSpace(term))

	visible := make([]task.Task, 0, len(all))
	for _, t := range all {
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			continue
		}
		if len(f.Status) > 0 && !containsStatus(f.Status, t.Status) {
			continue
		}
		if len(f.Priority) > 0 && !containsPriority(f.Priority, t.Priority) {
			continue
		}
		visible = append(visible, t)
	}
	return visible
}

// ForDate slices tasks scheduled on the given calendar day, preserving
// order. Grid cells bind to these slices.
func ForDate(all []task.Task, day time.Time) []task.Task {
	matched := make([]task.Task, 0)
	for _, t := range all {
		if t.TaskDate.SameDay(day) {
			matched = append(matched, t)
		}
	}
	return matched
}

func containsStatus(allow []task.Status, s task.Status) bool {
	for _, a := range allow {
		if a == s {
			return true
		}
	}
	return false
}

func containsPriority(allow []task.Priority, p task.Priority) bool {
	for _, a := range allow {
		if a == p {
			return true
		}
	}
	return false
}
