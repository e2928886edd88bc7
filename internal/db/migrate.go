package db

import (
	"errors"
	"fmt"
	"log"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/diewo77/indh-market/internal/config"
	"github.com/diewo77/indh-market/internal/gateway/gormgw"
)

// MigrationsDir is where the versioned SQL files live, relative to the working directory.
var MigrationsDir = "migrations"

// Migrate brings the schema up to date. With migrations enabled on postgres
// the versioned SQL files are applied; otherwise gorm AutoMigrate is used.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if cfg.App.Migrations && cfg.Database.Driver == "postgres" {
		log.Println("Running SQL migrations...")
		if err := runSQLMigrations(ToURLDSN(NormalizeDSN(cfg.Database.MigrateURL()))); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range gormgw.Models() {
			if err := db.AutoMigrate(m); err != nil {
				log.Printf("[DB] AutoMigrate detailed error model=%T: %v", m, err)
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}
	// sanity check: ensure required core tables exist
	for _, table := range append([]string{"users"}, gormgw.EntityTables...) {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// runSQLMigrations executes migrations using golang-migrate's file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://"+MigrationsDir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
