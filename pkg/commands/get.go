package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/get"
	"tableflip.dev/planner/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"ls", "list"},
		Short:   "List tasks",
		Example: `
planner get
planner get --search=rent
planner get --status=overdue,due-soon --priority=high
planner get --on="2024-03-01" --json
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

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID:      oo.ShowID,
				JSON:        oo.JSON,
				Search:      fo.Search,
				Filters:     filters,
				On:          on,
				Persistence: p,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOutputArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
