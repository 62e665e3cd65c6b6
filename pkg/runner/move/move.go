package move

import (
	"context"
	"errors"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Move reschedules a task onto a new date and, optionally, a new clock
// time. This is the command-line twin of dropping a dragged task on a
// calendar cell.
type Move struct {
	ID   string
	Date task.Date
	Time *task.Clock

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("move: task id required")
	}
	if n.Date.IsZero() {
		return errors.New("move: target date required")
	}

	svc := app.NewService(ctx, n.Persistence)
	if err := svc.Reschedule(n.ID, n.Date, n.Time); err != nil {
		return err
	}

	t, err := svc.Get(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(t.TaskDate.Format("January 2, 2006"))
	pp.Tasks(t)
	return nil
}
