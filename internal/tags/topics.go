package tags

import (
	"stichwort/internal/labels"
	"stichwort/internal/tagkey"
)

// TopicKey returns the canonical grouping key for a topic label. It is the
// same derivation tags use, exposed so callers can group tasks by topic
// without rewriting the stored topic strings.
func TopicKey(topic string) string {
	return tagkey.Canonical(topic)
}

// TopicGroup collects the positions of input topics that denote one concept.
type TopicGroup struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Indexes []int  `json:"indexes"`
}

// GroupTopics clusters semantically equivalent topic labels. The result is
// ordered by first appearance; each group's Label is the best display form
// among its members. Blank topics are skipped entirely. Nothing is read from
// or written to the registry.
func (e *Engine) GroupTopics(topics []string) []TopicGroup {
	groups := []TopicGroup{}
	var members [][]string

	for i, topic := range topics {
		cleaned := labels.Clean(topic)
		key := TopicKey(cleaned)
		if key == "" {
			continue
		}

		matched := -1
		for g := range groups {
			if key == groups[g].Key || e.resolver.Same(key, groups[g].Key) {
				matched = g
				break
			}
		}
		if matched == -1 {
			groups = append(groups, TopicGroup{Key: key})
			members = append(members, nil)
			matched = len(groups) - 1
		}
		groups[matched].Indexes = append(groups[matched].Indexes, i)
		members[matched] = append(members[matched], cleaned)
	}

	for g := range groups {
		groups[g].Label = labels.SelectBest(members[g])
	}
	return groups
}
