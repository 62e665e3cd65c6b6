// Package app owns the canonical task collection and the planner's
// application state. All mutations flow through the Service, which
// re-derives statuses and persists after every change.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// ErrNotFound is returned when a mutation targets an id that is not in
// the collection. Delete is exempt: it is idempotent by design.
var ErrNotFound = errors.New("app: task not found")

// SaveError reports a failed persist. The in-memory mutation has already
// been applied and is not rolled back; the next successful save will
// include it.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("app: save failed, change kept in memory: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Service is the task store: it exclusively owns the canonical task
// collection. Other components receive copies and propose mutations
// through its operations; nothing else persists.
type Service struct {
	Persistence store.Persistence

	// Now supplies the current time for status derivation and
	// timestamps. Defaults to time.Now; tests pin it.
	Now func() time.Time

	tasks []task.Task
}

// NewService loads the persisted collection and re-derives every status,
// since stored statuses may have gone stale while the planner was not
// running. Load failures surface as an empty collection, never a crash.
func NewService(ctx context.Context, p store.Persistence) *Service {
	s := &Service{Persistence: p, Now: time.Now}
	if p != nil {
		s.tasks = p.Load(ctx)
	}
	now := s.Now()
	for i := range s.tasks {
		s.tasks[i].Status = task.ResolveStatus(s.tasks[i], now)
	}
	return s
}

// Reload replaces the in-memory collection with the persisted one. Used
// when the database changes beneath a running UI.
func (s *Service) Reload(ctx context.Context) {
	if s.Persistence == nil {
		return
	}
	s.tasks = s.Persistence.Load(ctx)
	now := s.Now()
	for i := range s.tasks {
		s.tasks[i].Status = task.ResolveStatus(s.tasks[i], now)
	}
}

// Tasks returns a read-only snapshot of the collection with statuses
// refreshed as of now, in insertion order.
func (s *Service) Tasks() []task.Task {
	now := s.Now()
	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		t.Status = task.ResolveStatus(t, now)
		out[i] = t
	}
	return out
}

// Get returns the task with the given id.
func (s *Service) Get(id string) (task.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			t.Status = task.ResolveStatus(t, s.Now())
			return t, nil
		}
	}
	return task.Task{}, ErrNotFound
}

// Add validates the draft and appends a new task with assigned id,
// timestamps, and derived status. An invalid draft is a no-op.
func (s *Service) Add(d task.Draft) (task.Task, error) {
	if err := d.Validate(); err != nil {
		return task.Task{}, err
	}
	t := task.New(uuid.NewString(), d, s.Now())
	s.tasks = append(s.tasks, t)
	return t, s.persist()
}

// Changes describes a partial update. Nil fields are left untouched;
// ClearTime and ClearDueDate remove the optional fields.
type Changes struct {
	Title        *string
	Description  *string
	TaskDate     *task.Date
	Time         *task.Clock
	ClearTime    bool
	DueDate      *task.Date
	ClearDueDate bool
	Priority     *task.Priority
	Completed    *bool
}

// Update merges changes into the task with the given id. A due date that
// would land before the task date is clamped up to it, never dropped and
// never stored inverted. Status and updatedAt are re-derived.
func (s *Service) Update(id string, ch Changes) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, ErrNotFound
	}

	t := &s.tasks[i]
	if ch.Title != nil {
		title := strings.TrimSpace(*ch.Title)
		if title == "" {
			return task.Task{}, task.ErrEmptyTitle
		}
		t.Title = title
	}
	if ch.Description != nil {
		t.Description = *ch.Description
	}
	if ch.TaskDate != nil && !ch.TaskDate.IsZero() {
		t.TaskDate = *ch.TaskDate
	}
	if ch.ClearTime {
		t.Time = nil
	} else if ch.Time != nil {
		clock := *ch.Time
		t.Time = &clock
	}
	if ch.ClearDueDate {
		t.DueDate = nil
	} else if ch.DueDate != nil {
		t.DueDate = ch.DueDate
	}
	if ch.Priority != nil {
		t.Priority = *ch.Priority
	}
	if ch.Completed != nil {
		t.Completed = *ch.Completed
	}

	s.touch(i)
	return s.tasks[i], s.persist()
}

// Delete removes the task with the given id. Deleting an absent id is a
// silent no-op, so delete is idempotent.
func (s *Service) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.persist()
}

// ToggleComplete flips the completed flag and re-derives status, so
// un-completing a task past its due date immediately classifies it as
// overdue again.
func (s *Service) ToggleComplete(id string) error {
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.touch(i)
	return s.persist()
}

// Reschedule moves the task to a new date, and a new clock time when one
// is provided. Drag-and-drop resolves to this operation.
func (s *Service) Reschedule(id string, date task.Date, clock *task.Clock) error {
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks[i].TaskDate = date
	if clock != nil {
		c := *clock
		s.tasks[i].Time = &c
	}
	s.touch(i)
	return s.persist()
}

// touch re-applies the model invariants after a mutation: due date at or
// after task date, fresh status, fresh updatedAt.
func (s *Service) touch(i int) {
	now := s.Now()
	t := &s.tasks[i]
	t.DueDate = task.ClampDue(t.TaskDate, t.DueDate)
	t.Status = task.ResolveStatus(*t, now)
	t.UpdatedAt = task.Timestamp{Time: now}
}

// persist writes the entire post-mutation collection. On failure the
// in-memory state stays applied (optimistic, favoring responsiveness
// over strict durability) and the caller gets a SaveError.
func (s *Service) persist() error {
	if s.Persistence == nil {
		return nil
	}
	if err := s.Persistence.Save(s.tasks); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

func (s *Service) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
