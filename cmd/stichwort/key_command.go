package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stichwort/internal/tagkey"
)

func newKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "key <tag> [tag...]",
		Short:       "Print the canonical key for one or more tags",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				fmt.Fprintln(out, tagkey.Canonical(arg))
			}
			return nil
		},
	}
}
