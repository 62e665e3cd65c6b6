package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/add"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
planner add "Pay rent" --on="2024-03-01" --due="2024-03-01" --priority=high
planner add "Standup" --at="09:00"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
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
			due, err := to.GetDue()
			if err != nil {
				return err
			}
			priority, err := to.GetPriority()
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				Draft: task.Draft{
					Title:       title,
					Description: to.Description,
					TaskDate:    date,
					Time:        clock,
					DueDate:     due,
					Priority:    priority,
				},
				Persistence: p,
			}
			return a.Do(context.Background())
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
