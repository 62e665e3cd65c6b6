package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/move"
	"tableflip.dev/planner/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:     "move <task id>",
		Aliases: []string{"mv", "reschedule"},
		Short:   "Reschedule a task onto a new date",
		Example: `
planner move 171dff69 --on="2024-03-08"
planner move 171dff69 --on="2024-03-08" --at="14:00"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			date, err := to.GetDate()
			if err != nil {
				return err
			}
			clock, err := to.GetTime()
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			mv := move.Move{
				ID:          io.ID,
				Date:        date,
				Time:        clock,
				Persistence: p,
			}
			return mv.Do(context.Background())
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
