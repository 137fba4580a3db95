package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"stichwort/internal/config"
	"stichwort/internal/migrate"
	"stichwort/internal/registry"
	"stichwort/internal/tags"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "migrate <tasks.json>",
		Short: "Re-normalize tags on exported task records",
		Long:  "Reads a JSON array of task records ({id, module_id, tags}), pushes each tag set through the registry, and writes the updated records back. Failures are reported per task; the batch keeps going.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			tasksPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			items, err := loadTasks(tasksPath)
			if err != nil {
				return err
			}

			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "migrate.lock"))
			acquired, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire migration lock: %w", err)
			}
			if !acquired {
				return fmt.Errorf("another migration is already running (lock %s)", lock.Path())
			}
			defer lock.Unlock()

			runID := uuid.NewString()
			logger := ctx.logger().With("component", "migrate", "run_id", runID)
			logger.Info("migration started", "tasks", len(items), "dry_run", dryRun)

			return ctx.withEngine(func(engine *tags.Engine, _ *registry.Store) error {
				byID := make(map[string]int, len(items))
				for i, item := range items {
					byID[item.ID] = i
				}

				var update migrate.UpdateFunc
				if !dryRun {
					update = func(_ context.Context, taskID string, tagSet []string) error {
						idx, ok := byID[taskID]
						if !ok {
							return fmt.Errorf("unknown task id %s", taskID)
						}
						items[idx].Tags = tagSet
						return nil
					}
				}

				report, err := migrate.Run(cmd.Context(), engine, items, update)
				if err != nil {
					return err
				}

				if !dryRun && report.Updated > 0 {
					target := strings.TrimSpace(outPath)
					if target == "" {
						target = tasksPath
					} else if target, err = config.ExpandPath(target); err != nil {
						return err
					}
					if err := writeTasks(target, items); err != nil {
						return err
					}
				}

				logger.Info("migration finished",
					"processed", report.Processed,
					"updated", report.Updated,
					"errors", len(report.Errors))

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Processed %d tasks, updated %d\n", report.Processed, report.Updated)
				if dryRun {
					fmt.Fprintln(out, "Dry run: no records were written")
				}
				for _, msg := range report.Errors {
					fmt.Fprintf(out, "error: %s\n", msg)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing them")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write updated records to this file instead of overwriting the input")
	return cmd
}

func loadTasks(path string) ([]migrate.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}
	var items []migrate.Task
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse tasks file %s: %w", path, err)
	}
	return items, nil
}

func writeTasks(path string, items []migrate.Task) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}
