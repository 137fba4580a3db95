package tags

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stichwort/internal/config"
	"stichwort/internal/labels"
	"stichwort/internal/logging"
	"stichwort/internal/registry"
	"stichwort/internal/synonyms"
	"stichwort/internal/tagkey"
)

// Store is the persistence collaborator the engine writes registries through.
// *registry.Store satisfies it.
type Store interface {
	Get(ctx context.Context, moduleID string) (*registry.Registry, error)
	Save(ctx context.Context, reg *registry.Registry) error
	Delete(ctx context.Context, moduleID string) (bool, error)
}

// Options configures engine construction. Zero values fall back to defaults.
type Options struct {
	Resolver       *synonyms.Resolver
	Logger         *slog.Logger
	MaxSynonyms    int
	PromptTagLimit int
}

// Engine resolves raw tags against per-module registries.
type Engine struct {
	store          Store
	resolver       *synonyms.Resolver
	logger         *slog.Logger
	maxSynonyms    int
	promptTagLimit int
	locks          *moduleLocks
}

// New constructs an engine over the given store.
func New(store Store, opts Options) *Engine {
	if opts.Resolver == nil {
		opts.Resolver = synonyms.NewDefaultResolver()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.PromptTagLimit < 1 {
		opts.PromptTagLimit = 30
	}
	return &Engine{
		store:          store,
		resolver:       opts.Resolver,
		logger:         opts.Logger,
		maxSynonyms:    opts.MaxSynonyms,
		promptTagLimit: opts.PromptTagLimit,
		locks:          newModuleLocks(),
	}
}

// NewFromConfig builds an engine with the synonym table and limits from the
// application config.
func NewFromConfig(cfg *config.Config, store Store, logger *slog.Logger) (*Engine, error) {
	groups := synonyms.DefaultTable()
	if strings.TrimSpace(cfg.Tags.SynonymsPath) != "" {
		loaded, err := synonyms.LoadTable(cfg.Tags.SynonymsPath)
		if err != nil {
			return nil, err
		}
		groups = loaded
	}
	return New(store, Options{
		Resolver:       synonyms.NewResolver(groups, cfg.Tags.OverlapThreshold),
		Logger:         logger,
		MaxSynonyms:    cfg.Tags.MaxSynonyms,
		PromptTagLimit: cfg.Tags.PromptTagLimit,
	}), nil
}

// Mapping records one raw tag that resolved to an already-registered concept
// under a different canonical key.
type Mapping struct {
	Original string `json:"original"`
	MappedTo string `json:"mapped_to"`
}

// Result reports the outcome of one NormalizeTags call.
type Result struct {
	Tags           []string  `json:"tags"`
	MappedSynonyms []Mapping `json:"mapped_synonyms"`
	NewEntries     []string  `json:"new_entries"`
}

func emptyResult() *Result {
	return &Result{Tags: []string{}, MappedSynonyms: []Mapping{}, NewEntries: []string{}}
}

type candidate struct {
	cleaned string
	key     string
}

// NormalizeTags resolves a batch of raw tags against the module's registry and
// returns the canonical labels in first-occurrence order of distinct keys.
// Matched tags emit the entry's registered label; labels only change through
// RenameLabel, so spelling variants accumulate as synonyms instead of
// flip-flopping the display form. The registry is loaded once and saved once;
// an empty or unusable batch returns an empty result without touching storage.
func (e *Engine) NormalizeTags(ctx context.Context, moduleID string, raw []string) (*Result, error) {
	candidates := make([]candidate, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		cleaned := labels.Clean(tag)
		key := tagkey.Canonical(cleaned)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, candidate{cleaned: cleaned, key: key})
	}
	if len(candidates) == 0 {
		return emptyResult(), nil
	}

	lock := e.locks.get(moduleID)
	lock.Lock()
	defer lock.Unlock()

	reg, err := e.store.Get(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	result := emptyResult()
	now := time.Now().UTC()
	for _, c := range candidates {
		entry := e.match(reg, c.key)
		if entry == nil {
			entry = &registry.Entry{
				CanonicalKey: c.key,
				Label:        c.cleaned,
				UsageCount:   1,
				LastUsedAt:   now,
			}
			reg.Add(entry)
			result.Tags = append(result.Tags, c.cleaned)
			result.NewEntries = append(result.NewEntries, c.cleaned)
			continue
		}

		entry.Touch(now)
		e.addSynonym(entry, c.cleaned)
		result.Tags = append(result.Tags, entry.Label)
		if c.key != entry.CanonicalKey {
			result.MappedSynonyms = append(result.MappedSynonyms, Mapping{
				Original: c.cleaned,
				MappedTo: entry.Label,
			})
		}
	}

	if err := e.store.Save(ctx, reg); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}

	e.logger.Debug("normalized tags",
		"module_id", moduleID,
		"processed", len(candidates),
		"new_entries", len(result.NewEntries),
		"mapped_synonyms", len(result.MappedSynonyms),
	)
	return result, nil
}

// match finds the registry entry a canonical key belongs to: exact key first,
// then any stored synonym whose own key matches, then fuzzy equivalence
// against every entry's key.
func (e *Engine) match(reg *registry.Registry, key string) *registry.Entry {
	if entry := reg.Lookup(key); entry != nil {
		return entry
	}
	for _, entry := range reg.Entries {
		for _, synonym := range entry.Synonyms {
			if tagkey.Canonical(synonym) == key {
				return entry
			}
		}
	}
	for _, entry := range reg.Entries {
		if e.resolver.Same(key, entry.CanonicalKey) {
			return entry
		}
	}
	return nil
}

// addSynonym appends within the configured cap (0 means unlimited).
func (e *Engine) addSynonym(entry *registry.Entry, raw string) {
	if e.maxSynonyms > 0 && len(entry.Synonyms) >= e.maxSynonyms && !entry.HasSynonym(raw) {
		return
	}
	entry.AddSynonym(raw)
}

// Registry loads the module's registry for read-only callers.
func (e *Engine) Registry(ctx context.Context, moduleID string) (*registry.Registry, error) {
	return e.store.Get(ctx, moduleID)
}

// DeleteRegistry drops the module's registry, typically when the owning
// module is deleted. Reports whether a registry existed.
func (e *Engine) DeleteRegistry(ctx context.Context, moduleID string) (bool, error) {
	lock := e.locks.get(moduleID)
	lock.Lock()
	defer lock.Unlock()
	return e.store.Delete(ctx, moduleID)
}

func removeString(values []string, target string) []string {
	out := values[:0]
	for _, value := range values {
		if value != target {
			out = append(out, value)
		}
	}
	return out
}
