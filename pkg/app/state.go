package app

import (
	"time"

	"tableflip.dev/planner/pkg/grid"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/task"
)

// Direction is a period navigation intent.
type Direction int

const (
	PeriodNext Direction = iota
	PeriodPrev
	PeriodToday
)

// State is the planner's application state: the active view, search and
// filter inputs, theme, and the drag source. It is mutated only through
// its intent methods; the grid, layout, and query components stay pure
// and are fed from here.
type State struct {
	Service *Service

	Anchor   time.Time
	Mode     grid.ViewMode
	Search   string
	Filters  query.Filters
	DarkMode bool

	dragged string
}

// NewState builds the initial application state: month view anchored on
// today, theme restored from the persisted preference.
func NewState(svc *Service) *State {
	st := &State{
		Service: svc,
		Anchor:  svc.Now(),
		Mode:    grid.ModeMonth,
	}
	if svc.Persistence != nil {
		st.DarkMode = svc.Persistence.LoadTheme()
	}
	return st
}

// Visible returns the task subset matching the current search and
// filters, statuses fresh as of now.
func (st *State) Visible() []task.Task {
	return query.Visible(st.Service.Tasks(), st.Search, st.Filters)
}

// Cells returns the calendar cells for the active period and view.
func (st *State) Cells() []grid.Cell {
	return grid.Generate(st.Anchor, st.Mode)
}

// SetSearch updates the search term.
func (st *State) SetSearch(term string) {
	st.Search = term
}

// SetFilters replaces the filter set.
func (st *State) SetFilters(f query.Filters) {
	st.Filters = f
}

// ChangeView switches between month and week mode without moving the
// anchor.
func (st *State) ChangeView(mode grid.ViewMode) {
	st.Mode = mode
}

// ChangePeriod moves the anchor by one period, or resets it to today.
func (st *State) ChangePeriod(d Direction) {
	switch d {
	case PeriodNext:
		st.Anchor = grid.Next(st.Anchor, st.Mode)
	case PeriodPrev:
		st.Anchor = grid.Prev(st.Anchor, st.Mode)
	case PeriodToday:
		st.Anchor = st.Service.Now()
	}
}

// DragStart records the task being dragged.
func (st *State) DragStart(id string) {
	st.dragged = id
}

// Dragging returns the id of the task being dragged, if any.
func (st *State) Dragging() string {
	return st.dragged
}

// Drop reschedules the dragged task onto the given date (and hour slot,
// when one is provided). Dropping with no drag in progress is a no-op.
func (st *State) Drop(date task.Date, clock *task.Clock) error {
	if st.dragged == "" {
		return nil
	}
	id := st.dragged
	st.dragged = ""
	return st.Service.Reschedule(id, date, clock)
}

// CancelDrag clears the drag source without rescheduling.
func (st *State) CancelDrag() {
	st.dragged = ""
}

// ToggleTheme flips dark mode and persists the preference.
func (st *State) ToggleTheme() error {
	st.DarkMode = !st.DarkMode
	if st.Service.Persistence == nil {
		return nil
	}
	if err := st.Service.Persistence.SaveTheme(st.DarkMode); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}
