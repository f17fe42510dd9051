package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spacesedan/sentiment-api/config"
	"github.com/spacesedan/sentiment-api/internal/api"
	"github.com/spacesedan/sentiment-api/internal/clients"
	"github.com/spacesedan/sentiment-api/internal/logging"
	"github.com/spacesedan/sentiment-api/internal/monitoring"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	cfg := config.Load()

	logging.InitLogger(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var oracle *clients.OpenAIClient
	if cfg.Mode == config.ModeOracle {
		if cfg.OracleConfigured() {
			oracle = clients.NewOpenAIClient(cfg.Oracle.APIKey, cfg.Oracle.BaseURL, cfg.Oracle.Model)
		} else {
			slog.Warn("[Main] GEMINI_API_KEY is not set; every /sentiment request will fail with 500 until it is configured")
		}
	}

	oracleHealthy := &atomic.Bool{}
	oracleHealthy.Store(true)

	classifier, err := newClassifier(cfg, oracle, oracleHealthy)
	if err != nil {
		slog.Error("[Main] Failed to build classifier", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewServer(classifier),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("[Main] Listening",
			slog.String("addr", cfg.Addr),
			slog.String("mode", cfg.Mode),
			slog.String("env", env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("[Main] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if oracle != nil && cfg.HealthMonitorEnabled() {
		g.Go(func() error {
			return monitoring.MonitorOracleHealth(gctx, cfg.Oracle.HealthSchedule, oracle, oracleHealthy)
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("[Main] Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
