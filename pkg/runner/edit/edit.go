package edit

import (
	"context"
	"errors"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Edit applies a partial update to a task.
type Edit struct {
	ID      string
	Changes app.Changes

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("edit: task id required")
	}

	svc := app.NewService(ctx, n.Persistence)
	updated, err := svc.Update(n.ID, n.Changes)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Tasks(updated)
	return nil
}
