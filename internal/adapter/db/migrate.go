package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Files follow 0001_name.up.sql / 0001_name.down.sql under migrations/<driver>.
var migrationFileRe = regexp.MustCompile(`^([0-9]{4})_(.+)\.(up|down)\.sql$`)

type migration struct {
	version  int
	name     string
	upFile   string
	downFile string
}

// Migrate applies every pending migration for the connection's driver, each in
// its own transaction.
func Migrate(db *sqlx.DB) error {
	migrations, err := loadMigrations(db.DriverName())
	if err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		if m.upFile == "" {
			return fmt.Errorf("missing up migration for version %04d", m.version)
		}

		script, err := migrationsFS.ReadFile(m.upFile)
		if err != nil {
			return err
		}

		err = withTx(db, func(tx *sqlx.Tx) error {
			if _, err := tx.Exec(string(script)); err != nil {
				return fmt.Errorf("migration %04d_%s failed: %w", m.version, m.name, err)
			}
			_, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.version)
			return err
		})
		if err != nil {
			return err
		}
		zap.L().Info("applied migration", zap.Int("version", m.version), zap.String("name", m.name))
	}

	return nil
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *sqlx.DB) error {
	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	var version int
	err := db.Get(&version, `SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	migrations, err := loadMigrations(db.DriverName())
	if err != nil {
		return err
	}

	var target *migration
	for i := range migrations {
		if migrations[i].version == version {
			target = &migrations[i]
		}
	}
	if target == nil || target.downFile == "" {
		return fmt.Errorf("no down migration found for version %04d", version)
	}

	script, err := migrationsFS.ReadFile(target.downFile)
	if err != nil {
		return err
	}

	return withTx(db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(string(script)); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = ?`, version)
		return err
	})
}

func loadMigrations(driver string) ([]migration, error) {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}

	byVersion := map[int]migration{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := migrationFileRe.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		var version int
		if _, err := fmt.Sscanf(match[1], "%04d", &version); err != nil {
			continue
		}

		item := byVersion[version]
		item.version = version
		item.name = match[2]
		if match[3] == "up" {
			item.upFile = path.Join(dir, entry.Name())
		} else {
			item.downFile = path.Join(dir, entry.Name())
		}
		byVersion[version] = item
	}

	migrations := make([]migration, 0, len(byVersion))
	for _, m := range byVersion {
		migrations = append(migrations, m)
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].version < migrations[j].version })

	return migrations, nil
}

func ensureMigrationsTable(db *sqlx.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER NOT NULL PRIMARY KEY,
  applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`)
	return err
}

func appliedVersions(db *sqlx.DB) (map[int]bool, error) {
	if err := ensureMigrationsTable(db); err != nil {
		return nil, err
	}

	var versions []int
	if err := db.Select(&versions, `SELECT version FROM schema_migrations`); err != nil {
		return nil, err
	}

	applied := make(map[int]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}
