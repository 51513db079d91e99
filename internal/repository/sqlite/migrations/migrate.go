// Package migrations embeds the schema files and applies them in
// version order. Migrations only move forward; there is no rollback
// path, a bad migration is fixed by shipping the next version.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.up.sql
var schemaFS embed.FS

// migration is a single versioned schema file, e.g. 000001_create_core_tables.up.sql.
type migration struct {
	version int
	name    string
	stmts   string
}

// RunMigrations brings the schema up to the latest embedded version.
// Applied versions are recorded in the migrations table, so calling it
// on an up-to-date database is a no-op.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	var current int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM migrations").Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	all, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	for _, m := range all {
		if m.version <= current {
			continue
		}
		if err := apply(db, m); err != nil {
			return fmt.Errorf("apply migration %06d_%s: %w", m.version, m.name, err)
		}
	}

	return nil
}

// loadMigrations parses the embedded schema files into version order.
// File names follow <version>_<name>.up.sql.
func loadMigrations() ([]migration, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var all []migration
	for _, entry := range entries {
		base := strings.TrimSuffix(entry.Name(), ".up.sql")
		prefix, name, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("malformed migration file name %q", entry.Name())
		}

		version, err := strconv.Atoi(prefix)
		if err != nil || version <= 0 {
			return nil, fmt.Errorf("malformed migration version in %q", entry.Name())
		}

		stmts, err := schemaFS.ReadFile(entry.Name())
		if err != nil {
			return nil, err
		}

		all = append(all, migration{version: version, name: name, stmts: string(stmts)})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].version < all[j].version })
	return all, nil
}

// apply runs one migration and records its version in the same transaction.
func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(m.stmts); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", m.version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
