// Package database opens the backing store and brings its schema up to date.
//
// Two backends are supported: PostgreSQL (postgres:// DSNs, driven by
// golang-migrate) and SQLite (anything else, including :memory:), which keeps
// local runs and tests free of external services.
package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open connects to the database named by dsn and verifies the connection.
func Open(dsn string) (*sqlx.DB, error) {
	driver, path := driverFor(dsn)

	db, err := sqlx.Connect(driver, path)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// A pooled :memory: connection would open a fresh empty database
		// per connection, and file databases lock on concurrent writers.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	return db, nil
}

// Migrate applies all pending schema migrations for the connected backend.
func Migrate(db *sqlx.DB) error {
	if db.DriverName() == "postgres" {
		return migratePostgres(db)
	}
	return migrateSQLite(db)
}

// Flavor reports the sqlbuilder flavor matching the connected backend, so
// generated statements use the right placeholder style.
func Flavor(db *sqlx.DB) sqlbuilder.Flavor {
	if db.DriverName() == "postgres" {
		return sqlbuilder.PostgreSQL
	}
	return sqlbuilder.SQLite
}

func driverFor(dsn string) (driver, path string) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", strings.TrimPrefix(dsn, "sqlite://")
	default:
		return "sqlite", dsn
	}
}

func migratePostgres(db *sqlx.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	drv, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", drv)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// migrateSQLite replays the canonical PostgreSQL DDL with the handful of
// type spellings SQLite does not accept rewritten.
func migrateSQLite(db *sqlx.DB) error {
	raw, err := migrationsFS.ReadFile("migrations/0001_init.up.sql")
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	// IF NOT EXISTS makes reruns against a file database a no-op; the
	// PostgreSQL side gets the same idempotence from migrate's version table.
	ddl := strings.NewReplacer(
		"CREATE TABLE ", "CREATE TABLE IF NOT EXISTS ",
		"CREATE INDEX ", "CREATE INDEX IF NOT EXISTS ",
		"BIGSERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"BIGINT", "INTEGER",
		"TIMESTAMPTZ", "TIMESTAMP",
		"JSONB", "TEXT",
		"now()", "CURRENT_TIMESTAMP",
		// NUMERIC affinity would coerce decimal strings to floats; TEXT
		// keeps the literal digits intact.
		"NUMERIC(10,4)", "TEXT",
		"NUMERIC(10,6)", "TEXT",
		"NUMERIC(18,2)", "TEXT",
		"NUMERIC(20,2)", "TEXT",
		"NUMERIC(20,6)", "TEXT",
	).Replace(string(raw))

	for _, stmt := range strings.Split(ddl, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
