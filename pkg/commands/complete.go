package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/complete"
	"tableflip.dev/planner/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <task id>",
		Aliases: []string{"done", "toggle"},
		Short:   "Toggle a task's completed flag",
		Example: `
planner complete 171dff69
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
			t := complete.Toggle{
				ID:          io.ID,
				Persistence: p,
			}
			return t.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
