package tags_test

import (
	"context"
	"strings"
	"testing"

	"stichwort/internal/tags"
)

func TestAllowedTagsRankedByUsage(t *testing.T) {
	store := newFakeStore()
	engine := newTestEngine(store)
	ctx := context.Background()

	seed := map[string]int{
		"Graphen":   3,
		"Rekursion": 1,
		"Analysis":  2,
	}
	for label, uses := range seed {
		for i := 0; i < uses; i++ {
			if _, err := engine.NormalizeTags(ctx, "M1", []string{label}); err != nil {
				t.Fatalf("seed %s failed: %v", label, err)
			}
		}
	}

	allowed, err := engine.AllowedTags(ctx, "M1")
	if err != nil {
		t.Fatalf("AllowedTags failed: %v", err)
	}
	want := []string{"Graphen", "Analysis", "Rekursion"}
	if len(allowed) != len(want) {
		t.Fatalf("allowed = %v, want %v", allowed, want)
	}
	for i := range want {
		if allowed[i] != want[i] {
			t.Errorf("allowed[%d] = %q, want %q", i, allowed[i], want[i])
		}
	}
}

func TestAllowedTagsCapped(t *testing.T) {
	store := newFakeStore()
	engine := tags.New(store, tags.Options{PromptTagLimit: 2})
	ctx := context.Background()

	if _, err := engine.NormalizeTags(ctx, "M1", []string{"A1 B1", "A2 B2", "A3 B3"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	allowed, err := engine.AllowedTags(ctx, "M1")
	if err != nil {
		t.Fatalf("AllowedTags failed: %v", err)
	}
	if len(allowed) != 2 {
		t.Fatalf("expected cap of 2, got %v", allowed)
	}
}

func TestAllowedTagsEmptyModule(t *testing.T) {
	engine := newTestEngine(newFakeStore())
	allowed, err := engine.AllowedTags(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("AllowedTags failed: %v", err)
	}
	if len(allowed) != 0 {
		t.Fatalf("expected empty list, got %v", allowed)
	}
}

func TestFormatAllowedTagsForPrompt(t *testing.T) {
	if got := tags.FormatAllowedTagsForPrompt(nil); got != "" {
		t.Errorf("empty list should format to empty string, got %q", got)
	}

	fragment := tags.FormatAllowedTagsForPrompt([]string{"Graphen", "KV-Diagramm"})
	for _, want := range []string{"- Graphen\n", "- KV-Diagramm\n"} {
		if !strings.Contains(fragment, want) {
			t.Errorf("fragment missing %q:\n%s", want, fragment)
		}
	}
	if !strings.HasSuffix(fragment, "\n") {
		t.Error("fragment should end with newline")
	}
}
