// Package registry persists per-module tag registries in SQLite and defines
// the registry data model.
//
// A registry maps canonical keys to their preferred label, observed synonym
// spellings, and usage metadata, scoped to one course module. Registries are
// stored one row per module with the entry list as a JSON payload, so a save
// is a single atomic row write. Saves carry optimistic versioning: a writer
// that loads version N can only replace version N, concurrent writers get
// ErrVersionConflict instead of silently losing entries.
//
// Schema changes are applied through embedded migrations in migrations/ and
// recorded in schema_migrations.
package registry
