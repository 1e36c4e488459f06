package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"casetrack/internal/audit"
	authhandler "casetrack/internal/auth/handler"
	authservice "casetrack/internal/auth/service"
	httpapi "casetrack/internal/http"
	"casetrack/internal/platform/config"
	"casetrack/internal/platform/httpserver"
	"casetrack/internal/platform/metrics"
	"casetrack/internal/records"
	recordshandler "casetrack/internal/records/handler"
	recordsservice "casetrack/internal/records/service"
	"casetrack/internal/token"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
func main() {
	cfg := config.Load()

	logger, err := audit.New(audit.Config{
		Dir:     cfg.LogDir,
		Service: "cases-system",
		Console: !cfg.Production,
	})
	if err != nil {
		log.Fatalf("audit logger init failed: %v", err)
	}
	defer logger.Close()

	// A missing signing secret is a configuration error, fatal at startup.
	tokens, err := token.NewService(cfg.JWTSigningKey, token.DefaultTTL)
	if err != nil {
		log.Fatalf("token service init failed: %v", err)
	}

	store, cleanup, err := openStore(cfg, logger)
	if err != nil {
		log.Fatalf("record store init failed: %v", err)
	}
	defer cleanup()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	recordsSvc := recordsservice.New(store, logger, m)
	authSvc := authservice.New(cfg.AdminPassword, tokens, logger)

	router := httpapi.New(httpapi.Deps{
		Auth:           authhandler.New(authSvc),
		Records:        recordshandler.New(recordsSvc),
		Verifier:       tokens,
		Logger:         logger,
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	srv := httpserver.New(cfg.Addr, router)

	logger.Info("Secure server with audit logging starting", map[string]any{"addr": cfg.Addr})

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	logger.Info("Server stopped", nil)
}

// openStore picks postgres when DATABASE_URL is configured, otherwise an
// in-memory store for development.
func openStore(cfg config.Server, logger *audit.Logger) (records.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory record store", nil)
		return records.NewMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	store := records.NewPostgresStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return store, pool.Close, nil
}
