package task

import (
	"fmt"
	"strings"
	"time"
)

// Status is the derived temporal classification of a task. It is always a
// pure function of the completed flag, the due date, and "now" -- it is
// recomputed on every construction, mutation, and load, and is never
// trusted when read back from storage.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusDueSoon   Status = "due-soon"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

// AllStatuses returns the supported statuses.
func AllStatuses() []Status {
	return []Status{StatusUpcoming, StatusDueSoon, StatusOverdue, StatusCompleted}
}

// ParseStatus converts a string to a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("task: unknown status %q", raw)
}

// ResolveStatus derives the status of a task as of now. First match wins:
// completed, then due today, then due in the past, otherwise upcoming.
// A task without a due date can never be due-soon or overdue.
func ResolveStatus(t Task, now time.Time) Status {
	switch {
	case t.Completed:
		return StatusCompleted
	case t.DueDate != nil && t.DueDate.SameDay(now):
		return StatusDueSoon
	case t.DueDate != nil && t.DueDate.BeforeDay(now):
		return StatusOverdue
	}
	return StatusUpcoming
}

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AllPriorities returns the supported priorities.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority converts a string to a Priority. An empty string maps to
// the default, medium.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range AllPriorities() {
		if candidate == p {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("task: unknown priority %q", raw)
}
