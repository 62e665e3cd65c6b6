package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/printers"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the status and priority legend",
		Example: `
planner key
`,
		Run: func(_ *cobra.Command, _ []string) {
			pp := printers.PrettyPrint{}
			pp.Key()
		},
	}

	topLevel.AddCommand(cmd)
}
