package tags

import (
	"context"
	"errors"
	"fmt"

	"stichwort/internal/labels"
	"stichwort/internal/registry"
)

// ErrEntryNotFound indicates an administrative operation referenced a
// canonical key absent from the module's registry.
var ErrEntryNotFound = errors.New("tag entry not found")

// MergeEntries folds the mergeKey entry into the keepKey entry: usage counts
// sum, the merged label and synonyms join the kept entry's synonym list, and
// the merged entry is removed. Both entries must exist.
func (e *Engine) MergeEntries(ctx context.Context, moduleID, keepKey, mergeKey string) (*registry.Entry, error) {
	if keepKey == mergeKey {
		return nil, fmt.Errorf("merge %q into itself", keepKey)
	}

	lock := e.locks.get(moduleID)
	lock.Lock()
	defer lock.Unlock()

	reg, err := e.store.Get(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	keep := reg.Lookup(keepKey)
	if keep == nil {
		return nil, fmt.Errorf("keep key %q: %w", keepKey, ErrEntryNotFound)
	}
	merged := reg.Lookup(mergeKey)
	if merged == nil {
		return nil, fmt.Errorf("merge key %q: %w", mergeKey, ErrEntryNotFound)
	}

	keep.UsageCount += merged.UsageCount
	if merged.LastUsedAt.After(keep.LastUsedAt) {
		keep.LastUsedAt = merged.LastUsedAt
	}
	// Merges preserve history regardless of the synonym cap; the cap only
	// bounds pipeline churn.
	keep.AddSynonym(merged.Label)
	for _, synonym := range merged.Synonyms {
		keep.AddSynonym(synonym)
	}
	reg.Remove(mergeKey)

	if err := e.store.Save(ctx, reg); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}

	e.logger.Info("merged tag entries",
		"module_id", moduleID,
		"keep_key", keepKey,
		"merge_key", mergeKey,
		"usage_count", keep.UsageCount,
	)
	return keep, nil
}

// RenameLabel sets a new preferred label on the entry, keeping the previous
// label as a synonym so old spellings still resolve. The canonical key is
// unchanged. The entry must exist.
func (e *Engine) RenameLabel(ctx context.Context, moduleID, canonicalKey, newLabel string) (*registry.Entry, error) {
	cleaned := labels.Clean(newLabel)
	if cleaned == "" {
		return nil, errors.New("new label is empty")
	}

	lock := e.locks.get(moduleID)
	lock.Lock()
	defer lock.Unlock()

	reg, err := e.store.Get(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	entry := reg.Lookup(canonicalKey)
	if entry == nil {
		return nil, fmt.Errorf("key %q: %w", canonicalKey, ErrEntryNotFound)
	}
	if entry.Label == cleaned {
		return entry, nil
	}

	previous := entry.Label
	entry.Label = cleaned
	entry.Synonyms = removeString(entry.Synonyms, cleaned)
	entry.AddSynonym(previous)

	if err := e.store.Save(ctx, reg); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}

	e.logger.Info("renamed tag label",
		"module_id", moduleID,
		"canonical_key", canonicalKey,
		"label", cleaned,
	)
	return entry, nil
}
