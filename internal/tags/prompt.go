package tags

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// AllowedTags returns the module's registered labels ranked by usage (most
// used first, recency breaking ties), capped by the configured prompt limit.
// A module without a registry yields an empty list.
func (e *Engine) AllowedTags(ctx context.Context, moduleID string) ([]string, error) {
	reg, err := e.store.Get(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	ranked := make([]int, len(reg.Entries))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		ea, eb := reg.Entries[ranked[a]], reg.Entries[ranked[b]]
		if ea.UsageCount != eb.UsageCount {
			return ea.UsageCount > eb.UsageCount
		}
		return ea.LastUsedAt.After(eb.LastUsedAt)
	})

	limit := e.promptTagLimit
	if limit > len(ranked) {
		limit = len(ranked)
	}
	allowed := make([]string, 0, limit)
	for _, idx := range ranked[:limit] {
		allowed = append(allowed, reg.Entries[idx].Label)
	}
	return allowed, nil
}

// FormatAllowedTagsForPrompt renders a prompt fragment that biases generation
// toward already-registered labels. Advisory only: whatever comes back still
// runs through NormalizeTags. Returns "" for an empty list.
func FormatAllowedTagsForPrompt(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Bevorzuge diese bereits vorhandenen Tags und erfinde nur dann neue, wenn keiner passt:\n")
	for _, tag := range tags {
		b.WriteString("- ")
		b.WriteString(tag)
		b.WriteString("\n")
	}
	return b.String()
}
