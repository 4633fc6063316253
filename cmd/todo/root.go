package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "todo",
		Short:         "A small prioritized task list",
		Long:          `Keep a task list with priorities and coloured categories. Storage is chosen with TODO_STORAGE (sqlite, file or memory).`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newToggleCmd(a),
		newEditCmd(a),
		newRemoveCmd(a),
		newPriorityCmd(a),
		newAssignCmd(a),
		newClearCmd(a),
		newCategoryCmd(a),
		newResetCmd(a),
		newReportCmd(a),
		newWatchCmd(a),
	)
	return root
}
