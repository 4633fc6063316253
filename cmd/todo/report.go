package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daily-tasks/internal/service"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a summary of open tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := service.NewSummaryService(a.store).Summary(time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}
