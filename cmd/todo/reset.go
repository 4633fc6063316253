package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("reset deletes everything; rerun with --force")
			}
			a.store.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "✓ All tasks and categories deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Confirm deleting everything")
	return cmd
}
