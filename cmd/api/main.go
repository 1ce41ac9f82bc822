// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the product HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the record store selected by STORE_DRIVER (postgres or sqlite).
//  4. Connect to Redis (refresh sessions).
//  5. Load the token signing keys and the asset store.
//  6. Wire repositories, services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/api"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/asset"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/engagement"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/config"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/constants"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/migration"
	pgstore "github.com/Miguelch7/RLGC-producthuntnext/internal/platform/postgres"
	redisstore "github.com/Miguelch7/RLGC-producthuntnext/internal/platform/redis"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sqlite"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/users/auth"
)

// stores bundles the repositories of the selected driver.
type stores struct {
	products product.Repository
	users    auth.UserRepository
	ping     api.Check
	close    func()
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Record Store ───────────────────────────────────────────────────
	store, err := openStores(startupCtx, cfg, log)
	must(log, err, "open record store")
	defer store.close()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, redisstore.Options{
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: 2,
	}, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Keys & Assets ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	assets, err := asset.NewStore(cfg.AssetDir, cfg.PublicBaseURL, cfg.AssetMaxBytes)
	must(log, err, "prepare asset store")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		Database: store.ping,
		Cache: api.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}},
	}, log)

	authService := auth.NewService(store.users, auth.NewSessionRepository(rdb), jwtSvc)
	productService := product.NewService(store.products, assets, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Product:    product.NewHandler(productService),
		Engagement: engagement.NewHandler(store.products),
		Asset:      asset.NewHandler(assets),
		Forms:      api.NewFormsHandler(api.DefaultForms()),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON process logger tagged with the app name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// openStores opens the record store named by cfg.StoreDriver and builds its
// repositories.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return &stores{
			products: product.NewSQLiteRepository(db),
			users:    auth.NewSQLiteUserRepository(db),
			ping: api.Check{Name: "sqlite", Ping: func(ctx context.Context) error {
				return sqlite.Ping(ctx, db)
			}},
			close: func() {
				log.Info("closing sqlite store")
				_ = db.Close()
			},
		}, nil

	default:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, pgstore.Options{
			MaxConns:         cfg.DBMaxConns,
			MinConns:         cfg.DBMinConns,
			StatementTimeout: cfg.StatementTimeout,
		}, log)
		if err != nil {
			return nil, err
		}
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			products: product.NewPostgresRepository(pool),
			users:    auth.NewUserRepository(pool),
			ping: api.Check{Name: "postgres", Ping: func(ctx context.Context) error {
				return pgstore.Ping(ctx, pool)
			}},
			close: func() {
				log.Info("closing postgres pool")
				pool.Close()
			},
		}, nil
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
