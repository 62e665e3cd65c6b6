package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/grid"
	"tableflip.dev/planner/pkg/runner/cal"
	"tableflip.dev/planner/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	week := false

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar", "month"},
		Short:   "Print the calendar",
		Example: `
planner cal
planner cal --week
planner cal --on="2024-03-01" --status=overdue
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			filters, err := fo.GetFilters()
			if err != nil {
				return err
			}
			on, err := fo.GetOn()
			if err != nil {
				return err
			}

			mode := grid.ModeMonth
			if week {
				mode = grid.ModeWeek
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := cal.Cal{
				On:          on,
				Mode:        mode,
				Search:      fo.Search,
				Filters:     filters,
				Persistence: p,
			}
			return c.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&week, "week", "w", false, "Print the week view instead of the month grid.")
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
