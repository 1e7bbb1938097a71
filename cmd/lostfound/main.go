package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abdullah403/lost-and-found/internal/api"
	"github.com/Abdullah403/lost-and-found/internal/config"
	"github.com/Abdullah403/lost-and-found/internal/db"
	"github.com/Abdullah403/lost-and-found/internal/mongostore"
	"github.com/Abdullah403/lost-and-found/internal/store"
)

// backend is a storage engine the server can run on.
type backend interface {
	api.Backend
	JWTSecret(ctx context.Context) (string, error)
	Close(ctx context.Context) error
}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := b.Close(ctx); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		// Generated and persisted on first run.
		if jwtSecret, err = b.JWTSecret(ctx); err != nil {
			return fmt.Errorf("loading JWT secret: %w", err)
		}
	}

	password, err := ensureAdmin(ctx, b, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if password != "" {
		printAdminCreated(os.Stdout, cfg.AdminEmail, password)
	}

	router := api.NewRouter(b, api.Options{
		JWTSecret:      jwtSecret,
		AdminEmail:     cfg.AdminEmail,
		CORSOrigins:    cfg.CORSOrigins,
		CookieSecure:   cfg.CookieSecure,
		UploadMaxBytes: cfg.UploadMaxBytes,
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.LoggingMiddleware(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr, "store", cfg.Store)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	slog.Info("server stopped, closing store")
	return nil
}

// openBackend connects to the configured store and prepares its schema.
func openBackend(ctx context.Context, cfg *config.Config) (backend, error) {
	switch cfg.Store {
	case config.StoreMongo:
		s, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		slog.Info("mongodb ready", "database", cfg.MongoDatabase)
		return s, nil

	default:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(database); err != nil {
			database.Close()
			return nil, fmt.Errorf("migrating database: %w", err)
		}
		slog.Info("database ready", "path", cfg.DBPath)
		return store.NewSQLite(database), nil
	}
}
