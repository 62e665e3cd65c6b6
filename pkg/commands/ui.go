package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar",
		Example: `
planner ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc := app.NewService(ctx, p)
			return tui.Run(ctx, app.NewState(svc))
		},
	}

	topLevel.AddCommand(cmd)
}
