package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ibankit/internal/identifier/handler"
	idmetrics "ibankit/internal/identifier/metrics"
	"ibankit/internal/identifier/service"
	"ibankit/internal/platform/config"
	"ibankit/internal/platform/health"
	"ibankit/internal/platform/httpserver"
	"ibankit/internal/platform/logger"
	"ibankit/internal/platform/middleware"
	"ibankit/internal/platform/tracer"
	httptransport "ibankit/internal/transport/http"
	"ibankit/pkg/bban"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Identifier logic lives in pkg/ and internal/identifier.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	// Load the built-in layouts before serving so a broken table fails start-up.
	registry := bban.Default()

	log.Info("initializing ibankit",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"reporting", cfg.Reporting.String(),
		"supported_countries", registry.Len(),
	)

	svc := service.New(
		service.WithLogger(log),
		service.WithMetrics(idmetrics.New()),
		service.WithTracer(tracer.NewOTel()),
		service.WithDefaultPolicy(cfg.Reporting),
		service.WithBatchLimits(cfg.MaxBatch, cfg.BatchWorkers),
	)

	router := httptransport.NewRouter(log, httptransport.RouterConfig{
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		Metrics:        middleware.NewMetrics(),
		MetricsHandler: promhttp.Handler(),
	},
		health.New(cfg.Environment, registry),
		handler.New(svc, log),
	)

	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
