package registry

import "time"

// Entry records one canonical concept within a module's registry.
type Entry struct {
	CanonicalKey string    `json:"canonical_key"`
	Label        string    `json:"label"`
	Synonyms     []string  `json:"synonyms,omitempty"`
	UsageCount   int       `json:"usage_count"`
	LastUsedAt   time.Time `json:"last_used_at"`
}

// HasSynonym reports whether raw is already recorded on the entry.
func (e *Entry) HasSynonym(raw string) bool {
	for _, synonym := range e.Synonyms {
		if synonym == raw {
			return true
		}
	}
	return false
}

// AddSynonym appends an observed spelling. The label itself, duplicates, and
// empty strings are skipped; synonyms are append-only outside of merges.
func (e *Entry) AddSynonym(raw string) {
	if raw == "" || raw == e.Label || e.HasSynonym(raw) {
		return
	}
	e.Synonyms = append(e.Synonyms, raw)
}

// Touch bumps the usage count and refreshes the last-used timestamp.
func (e *Entry) Touch(now time.Time) {
	e.UsageCount++
	e.LastUsedAt = now
}

// Registry is the set of entries for one module, unique by canonical key.
type Registry struct {
	ModuleID  string    `json:"module_id"`
	Entries   []*Entry  `json:"entries"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRegistry returns an empty, unpersisted registry for the module.
func NewRegistry(moduleID string) *Registry {
	return &Registry{ModuleID: moduleID}
}

// Lookup returns the entry with the given canonical key, or nil.
func (r *Registry) Lookup(key string) *Entry {
	for _, entry := range r.Entries {
		if entry.CanonicalKey == key {
			return entry
		}
	}
	return nil
}

// Add appends a new entry. Existing entries with the same key are replaced so
// the one-entry-per-key invariant holds.
func (r *Registry) Add(entry *Entry) {
	for i, existing := range r.Entries {
		if existing.CanonicalKey == entry.CanonicalKey {
			r.Entries[i] = entry
			return
		}
	}
	r.Entries = append(r.Entries, entry)
}

// Remove deletes the entry with the given key and reports whether it existed.
func (r *Registry) Remove(key string) bool {
	for i, entry := range r.Entries {
		if entry.CanonicalKey == key {
			r.Entries = append(r.Entries[:i], r.Entries[i+1:]...)
			return true
		}
	}
	return false
}
