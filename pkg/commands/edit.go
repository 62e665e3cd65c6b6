package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/edit"
	"tableflip.dev/planner/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TaskOptions{}
	title := ""
	clearTime := false
	clearDue := false

	cmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Edit a task",
		Example: `
planner edit 171dff69 --title="Pay rent (March)" --due="2024-03-01"
planner edit 171dff69 --clear-time
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch := app.Changes{
				ClearTime:    clearTime,
				ClearDueDate: clearDue,
			}

			if cmd.Flags().Changed("title") {
				ch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				ch.Description = &to.Description
			}
			if cmd.Flags().Changed("on") {
				date, err := to.GetDate()
				if err != nil {
					return err
				}
				ch.TaskDate = &date
			}
			if cmd.Flags().Changed("at") {
				clock, err := to.GetTime()
				if err != nil {
					return err
				}
				ch.Time = clock
			}
			if cmd.Flags().Changed("due") {
				due, err := to.GetDue()
				if err != nil {
					return err
				}
				ch.DueDate = due
			}
			if cmd.Flags().Changed("priority") {
				priority, err := to.GetPriority()
				if err != nil {
					return err
				}
				ch.Priority = &priority
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			e := edit.Edit{
				ID:          io.ID,
				Changes:     ch,
				Persistence: p,
			}
			return e.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().BoolVar(&clearTime, "clear-time", false, "Remove the clock time, making the task all-day.")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date.")
	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
