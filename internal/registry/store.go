package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"stichwort/internal/config"
)

// ErrVersionConflict indicates another writer saved the module's registry
// between this writer's load and save.
var ErrVersionConflict = errors.New("registry version conflict")

// Store manages registry persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the registry database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.DatabasePath())
}

// OpenPath connects to the registry database at an explicit path.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get loads the module's registry. A module without a persisted registry
// yields a fresh empty one (version 0); absence is never an error.
func (s *Store) Get(ctx context.Context, moduleID string) (*Registry, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT entries_json, version, updated_at FROM tag_registries WHERE module_id = ?`,
		moduleID,
	)
	reg, err := scanRegistry(row, moduleID)
	if errors.Is(err, sql.ErrNoRows) {
		return NewRegistry(moduleID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get registry %s: %w", moduleID, err)
	}
	return reg, nil
}

// Save upserts the registry in a single row write. The registry's loaded
// version gates the write: version 0 inserts, anything else replaces exactly
// that version. A mismatch returns ErrVersionConflict and leaves the stored
// row untouched. On success the in-memory version and timestamp are advanced.
func (s *Store) Save(ctx context.Context, reg *Registry) error {
	if reg == nil {
		return errors.New("registry is nil")
	}
	if strings.TrimSpace(reg.ModuleID) == "" {
		return errors.New("registry module id is empty")
	}

	payload, err := json.Marshal(reg.Entries)
	if err != nil {
		return fmt.Errorf("marshal registry entries: %w", err)
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	if reg.Version == 0 {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO tag_registries (module_id, entries_json, version, updated_at) VALUES (?, ?, ?, ?)`,
			reg.ModuleID,
			string(payload),
			1,
			timestamp,
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint") {
				return fmt.Errorf("insert registry %s: %w", reg.ModuleID, ErrVersionConflict)
			}
			return fmt.Errorf("insert registry %s: %w", reg.ModuleID, err)
		}
		reg.Version = 1
		reg.UpdatedAt = now
		return nil
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE tag_registries SET entries_json = ?, version = ?, updated_at = ? WHERE module_id = ? AND version = ?`,
		string(payload),
		reg.Version+1,
		timestamp,
		reg.ModuleID,
		reg.Version,
	)
	if err != nil {
		return fmt.Errorf("update registry %s: %w", reg.ModuleID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update registry %s: %w", reg.ModuleID, ErrVersionConflict)
	}
	reg.Version++
	reg.UpdatedAt = now
	return nil
}

// Delete removes the module's registry and reports whether one existed.
func (s *Store) Delete(ctx context.Context, moduleID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tag_registries WHERE module_id = ?`, moduleID)
	if err != nil {
		return false, fmt.Errorf("delete registry %s: %w", moduleID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// List returns every persisted registry ordered by module id.
func (s *Store) List(ctx context.Context) ([]*Registry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT module_id, entries_json, version, updated_at FROM tag_registries ORDER BY module_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list registries: %w", err)
	}
	defer rows.Close()

	var registries []*Registry
	for rows.Next() {
		var moduleID string
		var entriesJSON string
		var version int64
		var updatedRaw string
		if err := rows.Scan(&moduleID, &entriesJSON, &version, &updatedRaw); err != nil {
			return nil, fmt.Errorf("scan registry row: %w", err)
		}
		reg, err := buildRegistry(moduleID, entriesJSON, version, updatedRaw)
		if err != nil {
			return nil, err
		}
		registries = append(registries, reg)
	}
	return registries, rows.Err()
}

func scanRegistry(row *sql.Row, moduleID string) (*Registry, error) {
	var entriesJSON string
	var version int64
	var updatedRaw string
	if err := row.Scan(&entriesJSON, &version, &updatedRaw); err != nil {
		return nil, err
	}
	return buildRegistry(moduleID, entriesJSON, version, updatedRaw)
}

func buildRegistry(moduleID, entriesJSON string, version int64, updatedRaw string) (*Registry, error) {
	reg := &Registry{ModuleID: moduleID, Version: version}
	if err := json.Unmarshal([]byte(entriesJSON), &reg.Entries); err != nil {
		return nil, fmt.Errorf("unmarshal registry %s entries: %w", moduleID, err)
	}
	if updated, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
		reg.UpdatedAt = updated
	}
	return reg, nil
}
