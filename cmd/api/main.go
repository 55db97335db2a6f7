package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/internal/config"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/api/server"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/cache"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/yahoo"
)

func main() {
	// Load environment variables
	godotenv.Load()

	configPath := os.Getenv("FINMETRICS_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	log = log.Level(level)

	client := yahoo.NewClientWithOptions(log, yahoo.Options{
		QuoteBase: cfg.QuoteBaseURL,
		ChartBase: cfg.ChartBaseURL,
		Timeout:   time.Duration(cfg.RequestTimeout) * time.Second,
	})
	svc := metrics.NewService(client, client, log)
	svc.SetBenchmark(cfg.Benchmark)
	computer := cache.NewComputer(svc, cache.New(cfg.CacheCapacity))

	srv := server.New(server.Config{
		Log:      log,
		Config:   &cfg,
		Service:  svc,
		Computer: computer,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("Server failed")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
