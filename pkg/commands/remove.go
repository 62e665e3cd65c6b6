package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/remove"
	"tableflip.dev/planner/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove <task id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a task",
		Example: `
planner remove 171dff69
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:          io.ID,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
