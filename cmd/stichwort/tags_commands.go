package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stichwort/internal/registry"
	"stichwort/internal/tags"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect and curate module tag registries",
	}

	tagsCmd.AddCommand(newTagsListCommand(ctx))
	tagsCmd.AddCommand(newTagsModulesCommand(ctx))
	tagsCmd.AddCommand(newTagsMergeCommand(ctx))
	tagsCmd.AddCommand(newTagsRenameCommand(ctx))
	tagsCmd.AddCommand(newTagsPromptCommand(ctx))
	tagsCmd.AddCommand(newTagsExportCommand(ctx))
	tagsCmd.AddCommand(newTagsClearCommand(ctx))

	return tagsCmd
}

func newTagsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <module>",
		Short: "List registered tags for a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				reg, err := engine.Registry(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(reg.Entries) == 0 {
					fmt.Fprintf(out, "No tags registered for module %s\n", args[0])
					return nil
				}
				fmt.Fprintln(out, renderTitle(out, fmt.Sprintf("Tags for %s (version %d)", reg.ModuleID, reg.Version)))
				rows := make([][]string, 0, len(reg.Entries))
				for _, entry := range reg.Entries {
					rows = append(rows, []string{
						entry.Label,
						entry.CanonicalKey,
						strconv.Itoa(entry.UsageCount),
						strings.Join(entry.Synonyms, ", "),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Label", "Key", "Uses", "Synonyms"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newTagsModulesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List modules with stored registries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(_ *tags.Engine, store *registry.Store) error {
				regs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(regs) == 0 {
					fmt.Fprintln(out, "No registries stored")
					return nil
				}
				rows := make([][]string, 0, len(regs))
				for _, reg := range regs {
					rows = append(rows, []string{
						reg.ModuleID,
						strconv.Itoa(len(reg.Entries)),
						strconv.FormatInt(reg.Version, 10),
						reg.UpdatedAt.Format("2006-01-02 15:04:05"),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Module", "Entries", "Version", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newTagsMergeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <module> <keep-key> <merge-key>",
		Short: "Merge one registry entry into another",
		Long:  "Folds the entry under merge-key into the entry under keep-key: usage counts are summed and the merged entry's label and synonyms become synonyms of the surviving entry.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				entry, err := engine.MergeEntries(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Merged %s into %s (%d uses)\n", args[2], entry.CanonicalKey, entry.UsageCount)
				return nil
			})
		},
	}
}

func newTagsRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <module> <key> <new-label>",
		Short: "Change the display label of a registry entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				entry, err := engine.RenameLabel(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Entry %s now labeled %q\n", entry.CanonicalKey, entry.Label)
				return nil
			})
		},
	}
}

func newTagsPromptCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <module>",
		Short: "Print the allowed-tags prompt snippet for a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				allowed, err := engine.AllowedTags(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				snippet := tags.FormatAllowedTagsForPrompt(allowed)
				if snippet == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No tags registered for module %s\n", args[0])
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), snippet)
				return nil
			})
		},
	}
}

func newTagsExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <module>",
		Short: "Dump a module's registry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				reg, err := engine.Registry(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, reg)
			})
		},
	}
}

func newTagsClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear <module>",
		Short: "Delete a module's registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete registry for %s without --force", args[0])
			}
			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				removed, err := engine.DeleteRegistry(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if removed {
					fmt.Fprintf(out, "Deleted registry for module %s\n", args[0])
				} else {
					fmt.Fprintf(out, "No registry stored for module %s\n", args[0])
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")
	return cmd
}
