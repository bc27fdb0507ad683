package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"
)

//go:embed migrations/001_memos.sql
var migration001 string

//go:embed migrations/002_sessions.sql
var migration002 string

// migrations is an ordered list of migration SQL statements.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
	{2, migration002},
}

// LatestVersion is the schema version after all migrations.
var LatestVersion = migrations[len(migrations)-1].version

func schemaVersion(q interface {
	QueryRow(query string, args ...any) *sql.Row
}) (int, error) {
	var count int
	err := q.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to check schema version table: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	var version int
	err = q.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// applyMigrations applies all pending migrations, each in its own
// transaction together with its schema_version row.
func applyMigrations(db *DB) error {
	currentVersion, err := schemaVersion(db.DB)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		err := db.Transaction(func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.sql); err != nil {
				return err
			}
			_, err := tx.Exec(
				"INSERT INTO schema_version (version, applied_at) VALUES (?, ?)",
				m.version, time.Now().UTC().Format(time.RFC3339),
			)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
	}

	return nil
}
