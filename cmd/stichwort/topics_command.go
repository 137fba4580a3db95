package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stichwort/internal/registry"
	"stichwort/internal/tags"
)

func newTopicsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "topics <topic> [topic...]",
		Short: "Group semantically equivalent topic labels",
		Long:  "Clusters the given topic strings without touching any registry: variants of the same concept land in one group with a shared display label.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				groups := engine.GroupTopics(args)
				if asJSON {
					return writeJSON(cmd, groups)
				}
				rows := make([][]string, 0, len(groups))
				for _, group := range groups {
					members := make([]string, 0, len(group.Indexes))
					for _, idx := range group.Indexes {
						members = append(members, args[idx])
					}
					rows = append(rows, []string{
						group.Label,
						group.Key,
						strconv.Itoa(len(members)),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Label", "Key", "Members"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit groups as JSON")
	return cmd
}
