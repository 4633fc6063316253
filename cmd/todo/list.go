package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-tasks/internal/model"
	"daily-tasks/internal/render"
)

func newListCmd(a *app) *cobra.Command {
	var status, priority, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  `List tasks sorted by priority, then by creation time. Filters combine.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.SetFilter(model.StatusFilter(strings.ToLower(status)))
			a.store.SetPriorityFilter(model.PriorityFilter(strings.ToLower(priority)))

			cf, err := a.categoryFilter(category)
			if err != nil {
				return err
			}
			a.store.SetCategoryFilter(cf)

			snap := a.store.Snapshot()
			r := render.New(cmd.OutOrStdout(), snap.Categories)
			fmt.Fprint(cmd.OutOrStdout(), r.List(snap))
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", string(model.StatusAll), "Status filter: all, active or completed")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(model.PriorityFilterAll), "Priority filter: all, none, high, medium or low")
	cmd.Flags().StringVarP(&category, "category", "c", string(model.CategoryFilterAll), "Category filter: all, uncategorized, or a category name or id")
	return cmd
}

func (a *app) categoryFilter(raw string) (model.CategoryFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(model.CategoryFilterAll):
		return model.CategoryFilterAll, nil
	case string(model.CategoryFilterUncategorized):
		return model.CategoryFilterUncategorized, nil
	}
	c, err := a.store.ResolveCategory(raw)
	if err != nil {
		return "", err
	}
	return model.CategoryFilter(c.ID), nil
}
