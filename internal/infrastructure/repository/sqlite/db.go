package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/cricket-league/db"
)

// Open opens the database file at path, creating its directory when needed,
// and applies the embedded migrations. SQLite allows one writer at a time, so
// the pool is limited to a single connection.
func Open(ctx context.Context, path string, opts ...otelsql.Option) (*sqlx.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, crerr.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, crerr.Wrapf(err, "create database directory %s", dir)
		}
	}

	opts = append([]otelsql.Option{otelsql.WithDBSystem("sqlite")}, opts...)
	conn, err := otelsqlx.Open("sqlite3", ensureForeignKeysEnabledDSN(path), opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "open sqlite")
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, crerr.Wrap(err, "ping sqlite")
	}
	if err := Migrate(conn.DB); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

// Migrate applies every pending embedded migration.
func Migrate(conn *sql.DB) error {
	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return crerr.Wrap(err, "create migrate driver")
	}

	source, err := iofs.New(db.Migrations, db.MigrationsDir)
	if err != nil {
		return crerr.Wrap(err, "create migration source")
	}

	// Closing the migrator would close conn, so it is left to the caller.
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return crerr.Wrap(err, "create migrator")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return crerr.Wrap(err, "apply migrations")
	}

	return nil
}

func ensureForeignKeysEnabledDSN(dsn string) string {
	if strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_fk=1"
	}
	return dsn + "?_fk=1"
}
