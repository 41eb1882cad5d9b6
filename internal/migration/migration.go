package migration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Migration is one numbered schema-change script. Files are named
// V<n>__<description>.sql and are immutable once applied.
type Migration struct {
	Version     int
	Description string
	Path        string
}

var fileNamePattern = regexp.MustCompile(`^V(\d+)__(.+)\.sql$`)

// Load reads the migration directory and returns the scripts in
// ascending version order. Files that do not match the naming scheme
// are ignored; duplicate version numbers are an error.
func Load(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations dir: %w", err)
	}

	seen := map[int]string{}
	migrations := []Migration{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := fileNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		version, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("invalid migration version in %s: %w", entry.Name(), err)
		}
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, entry.Name())
		}
		seen[version] = entry.Name()
		migrations = append(migrations, Migration{
			Version:     version,
			Description: m[2],
			Path:        filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// Apply runs every migration not yet recorded in schema_migrations,
// strictly in ascending order. Each script and its history row commit
// in one transaction, so a failed script leaves no partial record.
// Returns the number of migrations applied.
func Apply(ctx context.Context, db *sql.DB, migrations []Migration) (int, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description VARCHAR NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	applied := map[int]bool{}
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return 0, fmt.Errorf("failed to read migration history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return 0, fmt.Errorf("failed to scan migration history: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read migration history: %w", err)
	}

	count := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyOne(ctx, db, m); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func applyOne(ctx context.Context, db *sql.DB, m Migration) error {
	script, err := os.ReadFile(m.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", m.Path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(script)); err != nil {
		return fmt.Errorf("migration V%d failed: %w", m.Version, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, description) VALUES ($1, $2)`,
		m.Version, m.Description); err != nil {
		return fmt.Errorf("failed to record migration V%d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration V%d: %w", m.Version, err)
	}
	return nil
}
