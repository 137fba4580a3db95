package registry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stichwort/internal/registry"
	"stichwort/internal/testsupport"
)

func TestGetMissingModuleReturnsEmptyRegistry(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	reg, err := store.Get(context.Background(), "M1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reg.ModuleID != "M1" || len(reg.Entries) != 0 || reg.Version != 0 {
		t.Fatalf("unexpected empty registry: %+v", reg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	reg := registry.NewRegistry("M1")
	reg.Add(&registry.Entry{
		CanonicalKey: "diagramm kv",
		Label:        "KV-Diagramm",
		Synonyms:     []string{"kv diagramm"},
		UsageCount:   2,
		LastUsedAt:   time.Now().UTC(),
	})

	if err := store.Save(ctx, reg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if reg.Version != 1 {
		t.Fatalf("expected version 1 after first save, got %d", reg.Version)
	}

	loaded, err := store.Get(ctx, "M1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Version != 1 {
		t.Errorf("loaded version = %d, want 1", loaded.Version)
	}
	entry := loaded.Lookup("diagramm kv")
	if entry == nil {
		t.Fatal("expected entry to round-trip")
	}
	if entry.Label != "KV-Diagramm" || entry.UsageCount != 2 || len(entry.Synonyms) != 1 {
		t.Errorf("entry did not round-trip: %+v", entry)
	}
}

func TestSaveDetectsConcurrentWriter(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := registry.NewRegistry("M1")
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}

	snapshotA, err := store.Get(ctx, "M1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	snapshotB, err := store.Get(ctx, "M1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	snapshotA.Add(&registry.Entry{CanonicalKey: "a", Label: "A", UsageCount: 1})
	if err := store.Save(ctx, snapshotA); err != nil {
		t.Fatalf("save of first snapshot failed: %v", err)
	}

	snapshotB.Add(&registry.Entry{CanonicalKey: "b", Label: "B", UsageCount: 1})
	err = store.Save(ctx, snapshotB)
	if !errors.Is(err, registry.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	// The stale writer's entries must not have clobbered the first write.
	current, err := store.Get(ctx, "M1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.Lookup("a") == nil || current.Lookup("b") != nil {
		t.Fatalf("conflict write leaked into storage: %+v", current.Entries)
	}
}

func TestSaveConflictOnDuplicateInsert(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.Save(ctx, registry.NewRegistry("M1")); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	err := store.Save(ctx, registry.NewRegistry("M1"))
	if !errors.Is(err, registry.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict on duplicate insert, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.Save(ctx, registry.NewRegistry("M1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	deleted, err := store.Delete(ctx, "M1")
	if err != nil || !deleted {
		t.Fatalf("Delete = %v, %v; want true, nil", deleted, err)
	}
	deleted, err = store.Delete(ctx, "M1")
	if err != nil || deleted {
		t.Fatalf("second Delete = %v, %v; want false, nil", deleted, err)
	}

	reg, err := store.Get(ctx, "M1")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if reg.Version != 0 || len(reg.Entries) != 0 {
		t.Fatalf("expected fresh registry after delete, got %+v", reg)
	}
}

func TestListOrdersByModule(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, id := range []string{"M2", "M1", "M3"} {
		if err := store.Save(ctx, registry.NewRegistry(id)); err != nil {
			t.Fatalf("save %s failed: %v", id, err)
		}
	}

	registries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(registries) != 3 {
		t.Fatalf("expected 3 registries, got %d", len(registries))
	}
	for i, want := range []string{"M1", "M2", "M3"} {
		if registries[i].ModuleID != want {
			t.Errorf("registries[%d] = %s, want %s", i, registries[i].ModuleID, want)
		}
	}
}

func TestRegistryAddReplacesSameKey(t *testing.T) {
	reg := registry.NewRegistry("M1")
	reg.Add(&registry.Entry{CanonicalKey: "k", Label: "Old"})
	reg.Add(&registry.Entry{CanonicalKey: "k", Label: "New"})
	if len(reg.Entries) != 1 || reg.Lookup("k").Label != "New" {
		t.Fatalf("Add did not enforce key uniqueness: %+v", reg.Entries)
	}
}

func TestEntryAddSynonymRules(t *testing.T) {
	entry := &registry.Entry{CanonicalKey: "k", Label: "Label"}
	entry.AddSynonym("Label")
	entry.AddSynonym("")
	entry.AddSynonym("Variant")
	entry.AddSynonym("Variant")
	if len(entry.Synonyms) != 1 || entry.Synonyms[0] != "Variant" {
		t.Fatalf("unexpected synonyms: %v", entry.Synonyms)
	}
}
