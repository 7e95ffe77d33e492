package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/Pjt727/classwatch/migrations"
)

var ErrMissingConnString = errors.New("no database connection string (DB_CONN)")

func NewPool(ctx context.Context, connString string) (*sqlx.DB, error) {
	if connString == "" {
		return nil, ErrMissingConnString
	}
	db, err := sqlx.ConnectContext(ctx, "pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("Unable to connect to database: %w", err)
	}
	return db, nil
}

func newMigrate(connString string) (*migrate.Migrate, error) {
	if connString == "" {
		return nil, ErrMissingConnString
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", source, connString)
}

// applies any pending up migrations, having none pending is not an error
func MigrateUp(connString string) error {
	m, err := newMigrate(connString)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// runs every down migration then every up migration
func ResetDb(connString string) error {
	m, err := newMigrate(connString)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
