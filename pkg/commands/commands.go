// Package commands wires the planner CLI.
package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planner",
		Short: "A personal task-planning calendar on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addMove(topLevel)
	addCal(topLevel)
	addKey(topLevel)
	addTheme(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
