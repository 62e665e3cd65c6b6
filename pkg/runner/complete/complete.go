package complete

import (
	"context"
	"errors"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Toggle flips the completed flag on a task.
type Toggle struct {
	ID string

	Persistence store.Persistence
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("complete: task id required")
	}

	svc := app.NewService(ctx, n.Persistence)
	if err := svc.ToggleComplete(n.ID); err != nil {
		return err
	}

	t, err := svc.Get(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Tasks(t)
	return nil
}
