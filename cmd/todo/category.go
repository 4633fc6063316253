package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daily-tasks/internal/render"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !a.store.AddCategory(args[0]) {
					return fmt.Errorf("category %q is empty or already exists", args[0])
				}
				c, err := a.store.ResolveCategory(args[0])
				if err != nil {
					return err
				}
				r := render.New(cmd.OutOrStdout(), nil)
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Category created: %s %s\n", render.ShortID(c.ID), r.Category(c))
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm <name|id>",
			Aliases: []string{"remove", "delete"},
			Short:   "Delete a category; its tasks become uncategorized",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.store.ResolveCategory(args[0])
				if err != nil {
					return err
				}
				a.store.RemoveCategory(c.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Category deleted: %s\n", c.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List categories",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cats := a.store.Categories()
				if len(cats) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
					return nil
				}

				counts := make(map[string]int)
				for _, t := range a.store.Tasks() {
					if t.CategoryID != nil {
						counts[*t.CategoryID]++
					}
				}
				r := render.New(cmd.OutOrStdout(), cats)
				for _, c := range cats {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d)\n", render.ShortID(c.ID), r.Category(c), counts[c.ID])
				}
				return nil
			},
		},
	)
	return cmd
}
