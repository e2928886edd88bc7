// Package db opens the database behind the gateway, migrates its schema and
// seeds demo data.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/indh-market/internal/config"
)

const connectAttempts = 10

// Open connects with the configured driver, retrying postgres while the
// server comes up, and pings once.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel), TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		log.Printf("[DB] Using sqlite file %s", cfg.Path)
		db, err = gorm.Open(sqlite.Open(cfg.Path), gcfg)
	case "postgres", "":
		dsn := NormalizeDSN(cfg.DSN())
		if dsn == "" {
			return nil, fmt.Errorf("empty database DSN, check DATABASE_DSN or DB_* variables")
		}
		log.Printf("[DB] Using DSN: %s", MaskDSN(dsn))
		for i := 0; i < connectAttempts; i++ {
			db, err = gorm.Open(postgres.Open(dsn), gcfg)
			if err == nil {
				break
			}
			log.Printf("Retrying DB connection... %v", err)
			time.Sleep(2 * time.Second)
		}
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	return db, nil
}
