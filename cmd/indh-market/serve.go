package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diewo77/indh-market/auth"
	"github.com/diewo77/indh-market/internal/app"
	"github.com/diewo77/indh-market/internal/config"
	"github.com/diewo77/indh-market/internal/db"
	"github.com/diewo77/indh-market/internal/gateway"
	"github.com/diewo77/indh-market/internal/metrics"
	"github.com/diewo77/indh-market/internal/server"
	"github.com/diewo77/indh-market/internal/settings"
	"github.com/diewo77/indh-market/internal/store"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, port string) error {
	cfg, conn, err := openDB()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Server.Port = port
	}
	if err := db.Migrate(conn, cfg); err != nil {
		return err
	}
	backend := newBackend(cfg, conn)
	if cfg.App.Seed {
		if err := db.Seed(ctx, backend); err != nil {
			return err
		}
	}

	// Configure auth verifier to check if user exists in DB
	auth.SetUserVerifier(backend.UserExists)

	kv, err := settingsKV(ctx, cfg.Settings)
	if err != nil {
		return err
	}
	m := metrics.New()
	reg := app.NewRegistry(func() gateway.Client { return backend.NewClient() }, kv, store.WithObserver(m))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.New(backend, reg, m),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s (dev=%v, db=%s)", cfg.Server.Port, cfg.App.Dev, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
	return nil
}

// settingsKV picks Redis when configured, one JSON file per key otherwise.
func settingsKV(ctx context.Context, cfg config.SettingsConfig) (settings.KV, error) {
	if cfg.RedisURL != "" {
		client, err := settings.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		log.Println("Settings stored in Redis")
		return settings.NewRedisKV(client, "indh-market:"), nil
	}
	return settings.NewFileKV(cfg.Dir)
}
