package add

import (
	"context"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

type Add struct {
	Draft task.Draft

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	svc := app.NewService(ctx, n.Persistence)

	if n.Draft.TaskDate.IsZero() {
		n.Draft.TaskDate = task.DateOf(svc.Now())
	}

	added, err := svc.Add(n.Draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(added.TaskDate.Format("January 2, 2006"))
	day := make([]task.Task, 0)
	for _, t := range svc.Tasks() {
		if t.TaskDate.SameDay(added.TaskDate.Time) {
			day = append(day, t)
		}
	}
	pp.Tasks(day...)

	return nil
}
