package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-tasks/internal/render"
	"daily-tasks/internal/service"
)

func newAddCmd(a *app) *cobra.Command {
	var priority, category string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task",
		Long:  `Add a new task with an optional priority and category (by name or id).`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePriority(priority)
			if err != nil {
				return err
			}
			catID, err := a.categoryRef(category)
			if err != nil {
				return err
			}

			before := len(a.store.Tasks())
			a.store.AddTask(service.TaskInput{
				Text:       strings.Join(args, " "),
				Priority:   p,
				CategoryID: catID,
			})

			tasks := a.store.Tasks()
			if len(tasks) == before {
				return errors.New("nothing added: task text is empty")
			}
			task := tasks[len(tasks)-1]

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Task created: %s\n", render.ShortID(task.ID))
			fmt.Fprintf(out, "  Text: %s\n", task.Text)
			if task.Priority != nil {
				fmt.Fprintf(out, "  Priority: %s\n", *task.Priority)
			}
			if task.CategoryID != nil {
				if c, ok := a.store.Category(*task.CategoryID); ok {
					fmt.Fprintf(out, "  Category: %s\n", c.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority: high, medium or low")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name or id")
	return cmd
}
