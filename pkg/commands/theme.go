package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/store"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark mode",
		Example: `
planner theme
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			dark := !p.LoadTheme()
			if err := p.SaveTheme(dark); err != nil {
				return err
			}
			if dark {
				fmt.Println("dark mode on")
			} else {
				fmt.Println("dark mode off")
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
