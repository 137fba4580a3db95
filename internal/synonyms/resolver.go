package synonyms

import "strings"

// DefaultOverlapThreshold is the minimum token-overlap ratio for two keys to
// be considered the same concept when neither exact nor table matching hits.
const DefaultOverlapThreshold = 0.5

// Resolver answers whether two canonical keys denote the same concept.
type Resolver struct {
	groups    []Group
	threshold float64
}

// NewResolver builds a resolver over the given groups. A threshold outside
// (0, 1] falls back to DefaultOverlapThreshold.
func NewResolver(groups []Group, threshold float64) *Resolver {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultOverlapThreshold
	}
	return &Resolver{groups: groups, threshold: threshold}
}

// NewDefaultResolver builds a resolver over the embedded group table.
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultTable(), DefaultOverlapThreshold)
}

// Threshold reports the configured overlap threshold.
func (r *Resolver) Threshold() float64 {
	return r.threshold
}

// Same reports whether two canonical keys denote the same concept. First
// match wins: exact equality, shared synonym group, token overlap.
func (r *Resolver) Same(key1, key2 string) bool {
	key1 = strings.TrimSpace(key1)
	key2 = strings.TrimSpace(key2)
	if key1 == key2 {
		return true
	}
	if key1 == "" || key2 == "" {
		return false
	}

	for _, group := range r.groups {
		if keyInGroup(key1, group) && keyInGroup(key2, group) {
			return true
		}
	}

	return tokenOverlap(key1, key2) >= r.threshold
}

// keyInGroup reports whether the key contains any of the group's forms.
// Multi-word forms match as substrings, single-word forms must equal a token
// so short forms like "qmc" cannot fire inside unrelated words.
func keyInGroup(key string, group Group) bool {
	for _, form := range group.Forms {
		if strings.ContainsRune(form, ' ') {
			if strings.Contains(key, form) {
				return true
			}
			continue
		}
		for _, token := range strings.Fields(key) {
			if token == form {
				return true
			}
		}
	}
	return false
}

// tokenOverlap returns the shared-token count divided by the smaller key's
// distinct token count.
func tokenOverlap(key1, key2 string) float64 {
	tokens1 := strings.Fields(key1)
	tokens2 := strings.Fields(key2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(tokens1))
	for _, token := range tokens1 {
		set[token] = struct{}{}
	}
	shared := 0
	seen := make(map[string]struct{}, len(tokens2))
	for _, token := range tokens2 {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, ok := set[token]; ok {
			shared++
		}
	}

	smaller := len(set)
	if len(seen) < smaller {
		smaller = len(seen)
	}
	return float64(shared) / float64(smaller)
}
