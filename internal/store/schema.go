package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the SQLite snapshot store.
const schemaV1 = `
-- Snapshot registry
CREATE TABLE IF NOT EXISTS graphs (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    drug TEXT NOT NULL DEFAULT '',
    node_count INTEGER NOT NULL,
    link_count INTEGER NOT NULL,
    pathways TEXT NOT NULL,    -- JSON array
    categories TEXT NOT NULL,  -- JSON array
    created_at TEXT NOT NULL
);

-- Nodes (denormalized for single-query retrieval)
CREATE TABLE IF NOT EXISTS nodes (
    graph_id TEXT NOT NULL REFERENCES graphs(id) ON DELETE CASCADE,
    id TEXT NOT NULL,
    name TEXT NOT NULL,
    omics_type TEXT NOT NULL,
    pathway TEXT NOT NULL,
    timepoint TEXT NOT NULL,
    categories TEXT NOT NULL,  -- JSON array
    expression REAL NOT NULL,
    baseline_expression REAL NOT NULL,
    perturbed_expression REAL,
    fold_change REAL NOT NULL DEFAULT 1.0,
    significance REAL NOT NULL,
    confidence REAL NOT NULL,
    is_perturbation_target INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (graph_id, id)
);
CREATE INDEX IF NOT EXISTS idx_nodes_pathway ON nodes(graph_id, pathway);
CREATE INDEX IF NOT EXISTS idx_nodes_timepoint ON nodes(graph_id, timepoint);

-- Links
CREATE TABLE IF NOT EXISTS links (
    graph_id TEXT NOT NULL REFERENCES graphs(id) ON DELETE CASCADE,
    source TEXT NOT NULL,
    target TEXT NOT NULL,
    strength REAL NOT NULL,
    baseline_strength REAL NOT NULL,
    perturbed_strength REAL,
    strength_change REAL NOT NULL DEFAULT 1.0,
    link_type TEXT NOT NULL,
    PRIMARY KEY (graph_id, source, target)
);
CREATE INDEX IF NOT EXISTS idx_links_source ON links(graph_id, source);

-- Schema version
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
);
`

// InitSchema initializes the database schema, creating all tables and
// applying migrations as needed. Runs integrity validation before
// migrations on existing databases.
func InitSchema(ctx context.Context, db *sql.DB) error {
	currentVersion, err := getSchemaVersion(ctx, db)
	if err != nil {
		// Schema version table doesn't exist yet, create fresh schema
		if err := createSchema(ctx, db); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return nil
	}

	if err := ValidateIntegrity(ctx, db); err != nil {
		return fmt.Errorf("database integrity check failed: %w", err)
	}

	if currentVersion < SchemaVersion {
		if err := migrateSchema(ctx, db, currentVersion); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return nil
}

// getSchemaVersion returns the current schema version from the database.
// Returns 0 and an error if the schema_version table doesn't exist.
func getSchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// createSchema creates the initial database schema.
func createSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_version (version, applied_at) VALUES (?, datetime('now'))`,
		SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return tx.Commit()
}

// migrateSchema applies migrations from currentVersion to SchemaVersion.
func migrateSchema(ctx context.Context, db *sql.DB, currentVersion int) error {
	// Currently only one version, no migrations needed
	// When we add v2, migrations go here
	_ = currentVersion
	return nil
}

// ValidateIntegrity runs SQLite integrity checks on the database:
// PRAGMA integrity_check and PRAGMA foreign_key_check.
func ValidateIntegrity(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, `PRAGMA integrity_check`)
	if err != nil {
		return fmt.Errorf("failed to run integrity_check: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var result string
		if err := rows.Scan(&result); err != nil {
			return fmt.Errorf("failed to scan integrity_check result: %w", err)
		}
		if result != "ok" {
			return fmt.Errorf("integrity_check failed: %s", result)
		}
	}

	fkRows, err := db.QueryContext(ctx, `PRAGMA foreign_key_check`)
	if err != nil {
		return fmt.Errorf("failed to run foreign_key_check: %w", err)
	}
	defer fkRows.Close()

	var fkErrors []string
	for fkRows.Next() {
		var table, rowid, parent, fkid string
		if err := fkRows.Scan(&table, &rowid, &parent, &fkid); err != nil {
			return fmt.Errorf("failed to scan foreign_key_check result: %w", err)
		}
		fkErrors = append(fkErrors, fmt.Sprintf("table=%s rowid=%s parent=%s fkid=%s", table, rowid, parent, fkid))
	}

	if len(fkErrors) > 0 {
		return fmt.Errorf("foreign_key_check failed: %v", fkErrors)
	}

	return nil
}
