package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daily-tasks/internal/service"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		every time.Duration
		at    string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the summary on a schedule until interrupted",
		Long:  `Print the summary every --every interval and/or daily at --at (HH:MM). Defaults come from TODO_REPORT_INTERVAL and TODO_REPORT_AT.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("every") {
				every = a.cfg.ReportInterval
			}
			if !cmd.Flags().Changed("at") {
				at = a.cfg.ReportAt
			}
			if every <= 0 && at == "" {
				return errors.New("nothing to schedule: set --every or --at")
			}

			ctx := cmd.Context()
			summaries := service.NewSummaryService(a.store)
			job := func() {
				jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
				defer cancel()
				a.store.Reload(jobCtx)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", summaries.Summary(time.Now()))
			}

			scheduler := service.NewSchedulerService(time.Local, a.log)
			if every > 0 {
				if _, err := scheduler.ScheduleInterval(every, job); err != nil {
					return fmt.Errorf("schedule interval: %w", err)
				}
			}
			if at != "" {
				if _, err := scheduler.ScheduleDaily(at, job); err != nil {
					return fmt.Errorf("schedule daily: %w", err)
				}
			}

			scheduler.Start()
			defer scheduler.Stop()

			a.log.Info().
				Dur("every", every).
				Str("at", at).
				Msg("watching tasks")
			<-ctx.Done()
			a.log.Info().Msg("shutdown complete")
			return nil
		},
	}
	cmd.Flags().DurationVarP(&every, "every", "e", 0, "Print the summary at this interval")
	cmd.Flags().StringVar(&at, "at", "", "Print the summary daily at HH:MM")
	return cmd
}
