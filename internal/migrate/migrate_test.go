package migrate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stichwort/internal/migrate"
	"stichwort/internal/tags"
	"stichwort/internal/testsupport"
)

func newTestEngine(t *testing.T) *tags.Engine {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	return tags.New(store, tags.Options{})
}

func TestRunUpdatesChangedTasks(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	// Seed the registry so the variant spellings below resolve to it.
	if _, err := engine.NormalizeTags(ctx, "mod-ti", []string{"Quine-McCluskey"}); err != nil {
		t.Fatalf("seed normalize: %v", err)
	}

	items := []migrate.Task{
		{ID: "t1", ModuleID: "mod-ti", Tags: []string{"Minimierung (Quine-McCluskey)"}},
		{ID: "t2", ModuleID: "mod-ti", Tags: []string{"Quine-McCluskey"}},
		{ID: "t3", ModuleID: "mod-ti", Tags: nil},
	}

	updates := map[string][]string{}
	report, err := migrate.Run(ctx, engine, items, func(_ context.Context, taskID string, tagSet []string) error {
		updates[taskID] = tagSet
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Processed != 3 {
		t.Fatalf("processed = %d, want 3", report.Processed)
	}
	if report.Updated != 1 {
		t.Fatalf("updated = %d, want 1", report.Updated)
	}
	if len(report.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	got, ok := updates["t1"]
	if !ok {
		t.Fatal("t1 was not updated")
	}
	if len(got) != 1 || got[0] != "Quine-McCluskey" {
		t.Fatalf("t1 tags = %v, want [Quine-McCluskey]", got)
	}
	if _, ok := updates["t2"]; ok {
		t.Fatal("t2 already matched its normalized form and should not be updated")
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	items := []migrate.Task{
		{ID: "", ModuleID: "mod-a", Tags: []string{"Rekursion"}},
		{ID: "t2", ModuleID: "", Tags: []string{"Rekursion"}},
		{ID: "t3", ModuleID: "mod-a", Tags: []string{"  rekursion  "}},
		{ID: "t4", ModuleID: "mod-a", Tags: []string{"Recursion"}},
	}

	failing := errors.New("backend unavailable")
	report, err := migrate.Run(ctx, engine, items, func(_ context.Context, taskID string, _ []string) error {
		if taskID == "t4" {
			return failing
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Processed != 4 {
		t.Fatalf("processed = %d, want 4", report.Processed)
	}
	if report.Updated != 1 {
		t.Fatalf("updated = %d, want 1", report.Updated)
	}
	if len(report.Errors) != 3 {
		t.Fatalf("errors = %v, want 3 entries", report.Errors)
	}
	for _, fragment := range []string{"without id", "missing module id", "backend unavailable"} {
		found := false
		for _, msg := range report.Errors {
			if strings.Contains(msg, fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no report error mentions %q: %v", fragment, report.Errors)
		}
	}
}

func TestRunDryRunSkipsWrites(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	items := []migrate.Task{
		{ID: "t1", ModuleID: "mod-dry", Tags: []string{"  graphen  "}},
	}
	report, err := migrate.Run(ctx, engine, items, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Updated != 1 {
		t.Fatalf("updated = %d, want 1 (counted even without a writer)", report.Updated)
	}
}

func TestRunCanceledContext(t *testing.T) {
	engine := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := migrate.Run(ctx, engine, []migrate.Task{{ID: "t1", ModuleID: "m", Tags: []string{"x"}}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRunNilEngine(t *testing.T) {
	if _, err := migrate.Run(context.Background(), nil, nil, nil); err == nil {
		t.Fatal("expected error for nil engine")
	}
}
