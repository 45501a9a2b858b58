// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"embed"
	"sort"
	"strconv"
	"strings"

	"recruit/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	// Register the pgx/v5 database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateRunner is the subset of *migrate.Migrate the Migrator drives.
type migrateRunner interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (version uint, dirty bool, err error)
	Force(version int) error
	Close() (source error, database error)
}

// Migrator wraps golang-migrate for schema management.
type Migrator struct {
	m migrateRunner
}

// NewMigrator opens a migrator against databaseURL. postgres:// and
// postgresql:// URLs are rewritten to the pgx5:// scheme the driver expects.
func NewMigrator(databaseURL string) (*Migrator, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, toMigrateURL(databaseURL))
	if err != nil {
		_ = source.Close()

		return nil, errors.Wrap(err, "failed to initialize migrator")
	}

	return &Migrator{m: m}, nil
}

func toMigrateURL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(databaseURL, prefix); found {
			return "pgx5://" + rest
		}
	}

	return databaseURL
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration up failed")
	}

	return nil
}

// Down rolls every migration back, dropping all tables.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration down failed")
	}

	return nil
}

// Steps migrates n steps up (n > 0) or down (n < 0).
func (m *Migrator) Steps(n int) error {
	if err := m.m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migration steps %d failed", n)
	}

	return nil
}

// Version returns the applied version and whether the last run left the
// schema dirty. A fresh database reports version 0.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read migration version")
	}

	return version, dirty, nil
}

// Force records version as applied without running anything. Used to clear a
// dirty state after a manual fix.
func (m *Migrator) Force(version int) error {
	if version < 0 {
		return errors.Errorf("version must be non-negative, got %d", version)
	}
	if err := m.m.Force(version); err != nil {
		return errors.Wrapf(err, "failed to force version %d", version)
	}

	return nil
}

// Close releases the source and database handles.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		srcErr = errors.Wrap(srcErr, "failed to close migration source")
	}
	if dbErr != nil {
		dbErr = errors.Wrap(dbErr, "failed to close migration database")
	}

	return errors.Join(srcErr, dbErr)
}

// PendingVersions lists embedded versions above the applied one, ascending.
func (m *Migrator) PendingVersions() ([]uint, error) {
	current, _, err := m.Version()
	if err != nil {
		return nil, err
	}

	all, err := AvailableVersions()
	if err != nil {
		return nil, err
	}

	pending := make([]uint, 0, len(all))
	for _, v := range all {
		if v > current {
			pending = append(pending, v)
		}
	}

	return pending, nil
}

// AvailableVersions lists the versions embedded in the binary, ascending.
func AvailableVersions() ([]uint, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations")
	}

	versions := make([]uint, 0, len(entries)/2)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			continue
		}
		versions = append(versions, uint(v))
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })

	return versions, nil
}
