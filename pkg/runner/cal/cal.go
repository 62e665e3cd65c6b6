package cal

import (
	"context"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/grid"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Cal prints the month or week calendar with the visible tasks.
type Cal struct {
	On      *time.Time
	Mode    grid.ViewMode
	Search  string
	Filters query.Filters

	Persistence store.Persistence
}

func (n *Cal) Do(ctx context.Context) error {
	svc := app.NewService(ctx, n.Persistence)

	anchor := svc.Now()
	if n.On != nil {
		anchor = *n.On
	}

	visible := query.Visible(svc.Tasks(), n.Search, n.Filters)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	switch n.Mode {
	case grid.ModeWeek:
		pp.Week(anchor, visible)
	default:
		pp.Month(anchor, visible)
		pp.NewLine()
		monthTasks := tasksInMonth(visible, anchor)
		pp.TitleWithCount(anchor.Format("January 2006"), len(monthTasks))
		pp.Tasks(monthTasks...)
	}
	return nil
}

func tasksInMonth(tasks []task.Task, anchor time.Time) []task.Task {
	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.TaskDate.Year() == anchor.Year() && t.TaskDate.Month() == anchor.Month() {
			matched = append(matched, t)
		}
	}
	return matched
}
