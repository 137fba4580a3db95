package synonyms

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTableParses(t *testing.T) {
	groups := DefaultTable()
	if len(groups) == 0 {
		t.Fatal("expected embedded table to contain groups")
	}
	for i, group := range groups {
		if len(group.Forms) < 2 {
			t.Errorf("group %d has %d forms, want at least 2", i+1, len(group.Forms))
		}
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.toml")
	content := `
[[groups]]
forms = ["Lineare Algebra", "linalg"]

[[groups]]
forms = ["analysis", "calculus", " "]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	groups, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Forms[0] != "lineare algebra" {
		t.Errorf("expected forms lowercased, got %q", groups[0].Forms[0])
	}
	if len(groups[1].Forms) != 2 {
		t.Errorf("expected blank form dropped, got %v", groups[1].Forms)
	}
}

func TestLoadTableRejectsSingletonGroup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.toml")
	if err := os.WriteFile(path, []byte("[[groups]]\nforms = [\"alone\"]\n"), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if _, err := LoadTable(path); err == nil {
		t.Fatal("expected error for single-form group")
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
