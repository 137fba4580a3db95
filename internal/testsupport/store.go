package testsupport

import (
	"testing"

	"stichwort/internal/config"
	"stichwort/internal/registry"
)

// MustOpenStore opens a registry store for the test config and closes it with
// the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *registry.Store {
	t.Helper()

	store, err := registry.Open(cfg)
	if err != nil {
		t.Fatalf("open registry store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
