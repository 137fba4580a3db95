package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stichwort/internal/registry"
	"stichwort/internal/tags"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "normalize <module> <tag> [tag...]",
		Short: "Normalize raw tags against a module's registry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID := strings.TrimSpace(args[0])
			if moduleID == "" {
				return fmt.Errorf("module id is required")
			}
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				result, err := engine.NormalizeTags(cmd.Context(), moduleID, args[1:])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, result)
				}
				out := cmd.OutOrStdout()
				for _, tag := range result.Tags {
					fmt.Fprintln(out, tag)
				}
				for _, mapping := range result.MappedSynonyms {
					fmt.Fprintf(out, "mapped: %s -> %s\n", mapping.Original, mapping.MappedTo)
				}
				for _, label := range result.NewEntries {
					fmt.Fprintf(out, "new entry: %s\n", label)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the result as JSON")
	return cmd
}
