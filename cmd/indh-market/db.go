package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/diewo77/indh-market/auth"
	"github.com/diewo77/indh-market/internal/config"
	"github.com/diewo77/indh-market/internal/db"
	"github.com/diewo77/indh-market/internal/gateway/gormgw"
)

// openDB loads configuration and connects.
func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	auth.SetSecret(cfg.Auth.Secret)
	conn, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, conn, nil
}

func newBackend(cfg *config.Config, conn *gorm.DB) *gormgw.Backend {
	var opts []gormgw.Option
	if ttl := cfg.Auth.TokenTTL(); ttl > 0 {
		opts = append(opts, gormgw.WithTokenTTL(ttl))
	}
	return gormgw.New(conn, opts...)
}

func migrateCmd() *cobra.Command {
	var sqlFiles bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run DB migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, conn, err := openDB()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sql") {
				cfg.App.Migrations = sqlFiles
			}
			if err := db.Migrate(conn, cfg); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Println("Migrations completed successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&sqlFiles, "sql", false, "Apply versioned SQL files instead of AutoMigrate (postgres only)")
	cmd.Flags().StringVar(&db.MigrationsDir, "dir", db.MigrationsDir, "Directory holding the SQL migrations")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the demo account and its sample data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, conn, err := openDB()
			if err != nil {
				return err
			}
			if err := db.Migrate(conn, cfg); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if err := db.Seed(cmd.Context(), newBackend(cfg, conn)); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			log.Println("Seeding completed successfully")
			return nil
		},
	}
}
