// Package task defines the task model and its derived status.
package task

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyTitle is returned when a draft's title is empty after trimming.
	ErrEmptyTitle = errors.New("task: title required")
	// ErrMissingDate is returned when a draft has no task date.
	ErrMissingDate = errors.New("task: task date required")
)

// Task is a dated unit of work. The canonical collection of tasks is owned
// by the app service; everything else works on copies.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TaskDate    Date      `json:"taskDate"`
	Time        *Clock    `json:"time,omitempty"`
	DueDate     *Date     `json:"dueDate,omitempty"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// Hour returns the hour bucket the task belongs to in a week view. Tasks
// without a clock time land in hour 0.
func (t *Task) Hour() int {
	if t.Time == nil {
		return 0
	}
	return t.Time.Hour
}

// Draft is user-submitted new-task input prior to service-assigned
// identity and timestamps.
type Draft struct {
	Title       string
	Description string
	TaskDate    Date
	Time        *Clock
	DueDate     *Date
	Priority    Priority
}

// Validate checks that a draft can become a task. A due date before the
// task date is not an error here; the service clamps it on construction.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if d.TaskDate.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// New builds a task from a draft, assigning identity and timestamps and
// deriving the initial status as of now. The draft must already be valid.
func New(id string, d Draft, now time.Time) Task {
	priority := d.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	t := Task{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		TaskDate:    d.TaskDate,
		Time:        d.Time,
		DueDate:     ClampDue(d.TaskDate, d.DueDate),
		Priority:    priority,
		CreatedAt:   Timestamp{Time: now},
		UpdatedAt:   Timestamp{Time: now},
	}
	t.Status = ResolveStatus(t, now)
	return t
}

// ClampDue keeps the due date at or after the task date. A nil due date is
// a meaningful state (never due-soon or overdue) and stays nil, never
// silently defaulted to the task date.
func ClampDue(taskDate Date, due *Date) *Date {
	if due == nil || due.IsZero() {
		return nil
	}
	if due.BeforeDay(taskDate.Time) {
		clamped := taskDate
		return &clamped
	}
	d := *due
	return &d
}
