package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-tasks/internal/render"
)

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Mark a task done, or open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.store.ResolveTaskID(args[0])
			if err != nil {
				return err
			}
			a.store.ToggleTask(id)

			task, _ := a.store.Task(id)
			state := "reopened"
			if task.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %s: %s\n", state, render.ShortID(id))
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", task.Text)
			return nil
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <task-id> [text]",
		Short: "Change the text of a task",
		Long:  `Change the text of a task. Editing a task to empty text deletes it.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.store.ResolveTaskID(args[0])
			if err != nil {
				return err
			}
			a.store.EditTask(id, strings.Join(args[1:], " "))

			if task, ok := a.store.Task(id); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Task updated: %s\n  %s\n", render.ShortID(id), task.Text)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Task deleted: %s\n", render.ShortID(id))
			}
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.store.ResolveTaskID(args[0])
			if err != nil {
				return err
			}
			a.store.RemoveTask(id)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Task deleted: %s\n", render.ShortID(id))
			return nil
		},
	}
}

func newPriorityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <task-id> <high|medium|low|none>",
		Short: "Set or clear the priority of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.store.ResolveTaskID(args[0])
			if err != nil {
				return err
			}
			p, err := parsePriority(args[1])
			if err != nil {
				return err
			}
			a.store.SetPriority(id, p)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Priority of %s set to %s\n", render.ShortID(id), priorityLabel(p))
			return nil
		},
	}
}

func newAssignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <task-id> <category|none>",
		Short: "Put a task into a category, or take it out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.store.ResolveTaskID(args[0])
			if err != nil {
				return err
			}
			catID, err := a.categoryRef(args[1])
			if err != nil {
				return err
			}
			a.store.SetTaskCategory(id, catID)

			if catID == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %s is now uncategorized\n", render.ShortID(id))
				return nil
			}
			c, _ := a.store.Category(*catID)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %s moved to %s\n", render.ShortID(id), c.Name)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.HasCompleted() {
				fmt.Fprintln(cmd.OutOrStdout(), "No completed tasks.")
				return nil
			}
			before := len(a.store.Tasks())
			a.store.ClearCompleted()
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %d completed task(s)\n", before-len(a.store.Tasks()))
			return nil
		},
	}
}
