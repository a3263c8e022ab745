// Package sqldb persists discovery snapshots in SQLite or PostgreSQL.
package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/device-management-toolkit/redfish-inventory/pkg/inventoryerrors"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

var ErrDatabase = inventoryerrors.DatabaseError{Inventory: inventoryerrors.CreateInventoryError("sqldb")}

type dialect struct {
	name        string
	driver      string
	placeholder sq.PlaceholderFormat
	migrator    func(*sql.DB) (database.Driver, error)
	// sharesDB is set when closing the migration driver would close the pool.
	sharesDB bool
}

var (
	sqliteDialect = dialect{
		name:        "sqlite",
		driver:      "sqlite",
		placeholder: sq.Question,
		migrator: func(db *sql.DB) (database.Driver, error) {
			return migratesqlite.WithInstance(db, &migratesqlite.Config{})
		},
		sharesDB: true,
	}
	postgresDialect = dialect{
		name:        "postgres",
		driver:      "pgx",
		placeholder: sq.Dollar,
		migrator: func(db *sql.DB) (database.Driver, error) {
			return migratepgx.WithInstance(db, &migratepgx.Config{})
		},
	}
)

// dialectFor picks the backend from the URL scheme. Anything that is not a
// postgres URL is treated as a SQLite file path.
func dialectFor(url string) (dialect, string) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgresDialect, url
	case strings.HasPrefix(url, "sqlite://"):
		return sqliteDialect, strings.TrimPrefix(url, "sqlite://")
	default:
		return sqliteDialect, url
	}
}

// Store -.
type Store struct {
	db      *sql.DB
	dialect dialect
	builder sq.StatementBuilderType
	log     logger.Interface
}

// New opens the database at url, applies pending migrations and returns a
// ready Store.
func New(ctx context.Context, url string, poolMax int, log logger.Interface) (*Store, error) {
	d, dsn := dialectFor(url)

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, ErrDatabase.Wrap("New", "sql.Open", err)
	}

	if d.sharesDB {
		// one writer keeps SQLite from returning SQLITE_BUSY under concurrent saves
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(max(poolMax, 1))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, ErrDatabase.Wrap("New", "db.Ping", err)
	}

	if d.sharesDB {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()

			return nil, ErrDatabase.Wrap("New", "PRAGMA journal_mode", err)
		}

		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
			_ = db.Close()

			return nil, ErrDatabase.Wrap("New", "PRAGMA foreign_keys", err)
		}
	}

	if err := migrateUp(db, d); err != nil {
		_ = db.Close()

		return nil, ErrDatabase.Wrap("New", "migrate.Up", err)
	}

	log.Info("snapshot store ready", "backend", d.name)

	return &Store{
		db:      db,
		dialect: d,
		builder: sq.StatementBuilder.PlaceholderFormat(d.placeholder),
		log:     log,
	}, nil
}

func migrateUp(db *sql.DB, d dialect) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := d.migrator(db)
	if err != nil {
		_ = src.Close()

		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, d.name, driver)
	if err != nil {
		_ = src.Close()

		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	if d.sharesDB {
		return src.Close()
	}

	srcErr, dbErr := m.Close()

	return errors.Join(srcErr, dbErr)
}

// Ping -.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close -.
func (s *Store) Close() error {
	return s.db.Close()
}
