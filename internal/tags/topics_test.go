package tags_test

import (
	"reflect"
	"testing"

	"stichwort/internal/tags"
)

func TestTopicKeyMatchesTagDerivation(t *testing.T) {
	if got := tags.TopicKey("Minimierung (Quine-McCluskey)"); got != "mccluskey minimierung quine" {
		t.Errorf("TopicKey() = %q", got)
	}
	if tags.TopicKey("  KV-Diagramm ") != tags.TopicKey("kv diagramm") {
		t.Error("TopicKey not normalization-insensitive")
	}
}

func TestGroupTopics(t *testing.T) {
	engine := newTestEngine(newFakeStore())

	topics := []string{
		"Quine-McCluskey",
		"KV-Diagramm",
		"Minimierung (Quine-McCluskey)",
		"",
		"kv diagramm",
	}
	groups := engine.GroupTopics(topics)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(groups), groups)
	}

	if !reflect.DeepEqual(groups[0].Indexes, []int{0, 2}) {
		t.Errorf("group 0 indexes = %v, want [0 2]", groups[0].Indexes)
	}
	if groups[0].Label != "Quine-McCluskey" {
		t.Errorf("group 0 label = %q, want Quine-McCluskey", groups[0].Label)
	}

	if !reflect.DeepEqual(groups[1].Indexes, []int{1, 4}) {
		t.Errorf("group 1 indexes = %v, want [1 4]", groups[1].Indexes)
	}
	if groups[1].Label != "KV-Diagramm" {
		t.Errorf("group 1 label = %q, want KV-Diagramm", groups[1].Label)
	}
}

func TestGroupTopicsEmptyInput(t *testing.T) {
	engine := newTestEngine(newFakeStore())
	if groups := engine.GroupTopics(nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %+v", groups)
	}
}
