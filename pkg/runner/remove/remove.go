package remove

import (
	"context"
	"errors"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/store"
)

// Remove deletes a task. Removing an id that does not exist is a no-op.
type Remove struct {
	ID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("remove: task id required")
	}

	svc := app.NewService(ctx, n.Persistence)
	return svc.Delete(n.ID)
}
