package migrate

import (
	"context"
	"fmt"

	"stichwort/internal/tags"
)

// Task is the slice of an external task record the migration needs.
type Task struct {
	ID       string   `json:"id"`
	ModuleID string   `json:"module_id"`
	Tags     []string `json:"tags"`
}

// UpdateFunc persists the re-normalized tag set for one task. A nil
// UpdateFunc turns Run into a dry run: changes are counted but not written.
type UpdateFunc func(ctx context.Context, taskID string, tagSet []string) error

// Report summarizes one migration batch.
type Report struct {
	Processed int      `json:"processed"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"errors"`
}

// Run re-normalizes the tags of every task through the engine and calls
// update for each task whose tag set changed. A failing task is recorded in
// the report and skipped; Run itself only fails on invalid arguments or a
// canceled context.
func Run(ctx context.Context, engine *tags.Engine, items []Task, update UpdateFunc) (*Report, error) {
	if engine == nil {
		return nil, fmt.Errorf("migrate: engine is required")
	}
	report := &Report{Errors: []string{}}
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("migrate: %w", err)
		}
		report.Processed++
		if item.ID == "" {
			report.Errors = append(report.Errors, "task without id skipped")
			continue
		}
		if item.ModuleID == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("task %s: missing module id", item.ID))
			continue
		}
		if len(item.Tags) == 0 {
			continue
		}
		result, err := engine.NormalizeTags(ctx, item.ModuleID, item.Tags)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("task %s: %v", item.ID, err))
			continue
		}
		if equalTagSets(item.Tags, result.Tags) {
			continue
		}
		if update != nil {
			if err := update(ctx, item.ID, result.Tags); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("task %s: %v", item.ID, err))
				continue
			}
		}
		report.Updated++
	}
	return report, nil
}

func equalTagSets(before, after []string) bool {
	if len(before) != len(after) {
		return false
	}
	for i := range before {
		if before[i] != after[i] {
			return false
		}
	}
	return true
}
