// Package tags runs the tag normalization pipeline against per-module
// registries and exposes the administrative operations built on top of it.
//
// NormalizeTags is the write path: every incoming raw tag is cleaned, keyed,
// and resolved against the module's registry (exact key, stored synonym keys,
// then the fuzzy resolver); matches reuse the registered label, misses create
// new entries, and the registry is saved once per batch. Callers persist only
// the returned canonical labels on their entities.
//
// MergeEntries and RenameLabel back user-facing cleanup UIs and fail loudly on
// missing entries, unlike the pipeline which degrades per tag. AllowedTags and
// FormatAllowedTagsForPrompt bias LLM prompt construction toward labels that
// already exist, and GroupTopics groups equivalent topic labels without
// mutating anything.
//
// Writers are serialized per module in-process; cross-process races surface as
// registry.ErrVersionConflict from the store.
package tags
